package learningController

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
	"coursehub/services/catalog"
	"coursehub/services/ledger"
	"coursehub/services/learning"
)

type Handler struct {
	catalog *catalog.Store
	ledger  *ledger.Ledger
}

func New(store *catalog.Store, l *ledger.Ledger) *Handler {
	return &Handler{catalog: store, ledger: l}
}

type instructorSummary struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type contentResponse struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Instructor   *instructorSummary     `json:"instructor"`
	Progress     int                    `json:"progress"`
	EnrollmentID uint                   `json:"enrollmentId"`
	Sections     []learning.SectionView `json:"sections"`
}

// GetLearningContent returns the curriculum of an enrolled course with per-step
// completion derived from the enrollment's progress
func (h *Handler) GetLearningContent(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	courseID := c.Locals("courseId").(uint)

	course, err := h.catalog.Course(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	enrollment, err := h.ledger.FindByUserCourse(c.UserContext(), user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	resp := contentResponse{
		ID:           course.ID,
		Title:        course.Title,
		Progress:     enrollment.Progress,
		EnrollmentID: enrollment.ID,
		Sections:     learning.Build(learning.ForCourse(course), enrollment.Progress),
	}
	if course.Instructor != nil {
		resp.Instructor = &instructorSummary{Name: course.Instructor.Name, Avatar: course.Instructor.Avatar}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, resp)
}
