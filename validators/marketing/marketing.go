package marketingValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/validators"
)

type WaitlistRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Interest string `json:"interest" validate:"max=255"`
	CourseID *uint  `json:"courseId" validate:"omitempty,gt=0"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// JoinWaitlist validator middleware
func JoinWaitlist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(WaitlistRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		c.Locals("validatedWaitlist", reqData)
		return c.Next()
	}
}

// Contact validator middleware
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
