package enrollmentController

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services/ledger"
	enrollmentValidator "coursehub/validators/enrollment"
)

type Handler struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l}
}

// GetUserEnrollments lists the caller's enrollments with their courses
func (h *Handler) GetUserEnrollments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	enrollments, err := h.ledger.ListByUser(c.UserContext(), user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, enrollments)
}

// EnrollInCourse creates an enrollment after the access check
func (h *Handler) EnrollInCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateRequest)
	user := middleware.CurrentUser(c)

	enrollment, err := h.ledger.Enroll(c.UserContext(), user, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, enrollment)
}

func (h *Handler) UpdateProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	progress := c.Locals("progress").(int)

	enrollment, err := h.ledger.UpdateProgress(c.UserContext(), user.ID, enrollmentID, progress)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, enrollment)
}

// MarkStepComplete raises progress to the completed step's threshold
func (h *Handler) MarkStepComplete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	enrollmentID := c.Locals("enrollmentId").(uint)
	stepID := c.Locals("stepId").(uint)

	enrollment, err := h.ledger.CompleteStep(c.UserContext(), user.ID, enrollmentID, stepID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, enrollment)
}
