package catalogValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
	"coursehub/validators"
)

// Detail validates the :id parameter of a catalog lookup
func Detail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validators.ParamID(c, "id")
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Invalid ID"})
		}
		c.Locals("id", id)
		return c.Next()
	}
}

// CourseList validates the optional categoryId filter
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categoryID uint
		if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"categoryId": "Invalid category ID"})
			}
			categoryID = uint(id)
		}
		c.Locals("categoryId", categoryID)
		return c.Next()
	}
}
