package catalogRoutes

import (
	catalogController "coursehub/controllers/catalog"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes registers the public catalog
func SetupCatalogRoutes(api fiber.Router, h *catalogController.Handler) {
	api.Get("/categories", h.GetCategories)
	api.Get("/categories/:id", catalogValidator.Detail(), h.GetCategory)

	api.Get("/courses", catalogValidator.CourseList(), h.GetCourses)
	api.Get("/courses/:id", catalogValidator.Detail(), h.GetCourseDetails)

	api.Get("/instructors", h.GetInstructors)
	api.Get("/instructors/:id", catalogValidator.Detail(), h.GetInstructor)

	api.Get("/testimonials", h.GetTestimonials)
}
