package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
	"coursehub/services/catalog"
)

type Handler struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.store.Categories(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, categories)
}

func (h *Handler) GetCategory(c *fiber.Ctx) error {
	category, err := h.store.Category(c.UserContext(), c.Locals("id").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, category)
}

func (h *Handler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.store.Courses(c.UserContext(), c.Locals("categoryId").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

// GetCourseDetails returns the course with its instructor and category embedded
func (h *Handler) GetCourseDetails(c *fiber.Ctx) error {
	course, err := h.store.Course(c.UserContext(), c.Locals("id").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

func (h *Handler) GetInstructors(c *fiber.Ctx) error {
	instructors, err := h.store.Instructors(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, instructors)
}

func (h *Handler) GetInstructor(c *fiber.Ctx) error {
	instructor, err := h.store.Instructor(c.UserContext(), c.Locals("id").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, instructor)
}

func (h *Handler) GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.store.Testimonials(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, testimonials)
}
