package enrollmentValidator

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"coursehub/errs"
	"coursehub/middleware"
	"coursehub/validators"
)

type CreateRequest struct {
	CourseID uint `json:"courseId" validate:"required,gt=0"`
}

// ProgressRequest keeps progress as a float so 55.5 is rejected instead of truncated.
type ProgressRequest struct {
	Progress *float64 `json:"progress" validate:"required"`
}

// CreateEnrollment validator middleware
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// UpdateProgress validates the enrollment id and an integer progress in [0, 100].
// The validated value is stored as an int under "progress".
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := validators.ParamID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid enrollment ID"})
		}

		reqData := new(ProgressRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}

		p := *reqData.Progress
		if p != math.Trunc(p) || p < 0 || p > 100 {
			return middleware.ErrorResponse(c, errs.ErrInvalidProgress)
		}

		c.Locals("enrollmentId", enrollmentID)
		c.Locals("progress", int(p))
		return c.Next()
	}
}

// CompleteStep validates the enrollment and step ids
func CompleteStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		enrollmentID, ok := validators.ParamID(c, "id")
		if !ok {
			errors["id"] = "Invalid enrollment ID"
		}
		stepID, ok := validators.ParamID(c, "stepId")
		if !ok {
			errors["stepId"] = "Invalid step ID"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentId", enrollmentID)
		c.Locals("stepId", stepID)
		return c.Next()
	}
}

// LearningContent validates the courseId route parameter
func LearningContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validators.ParamID(c, "courseId")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"courseId": "Invalid course ID"})
		}
		c.Locals("courseId", courseID)
		return c.Next()
	}
}
