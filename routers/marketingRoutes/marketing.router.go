package marketingRoutes

import (
	marketingController "coursehub/controllers/marketing"
	marketingValidator "coursehub/validators/marketing"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketingRoutes(api fiber.Router, h *marketingController.Handler) {
	api.Post("/waitlist", marketingValidator.JoinWaitlist(), h.JoinWaitlist)
	api.Post("/contact", marketingValidator.Contact(), h.SubmitContact)
}
