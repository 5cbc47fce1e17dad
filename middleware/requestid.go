package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, reusing the caller's when it sends one
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals("requestId", id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

// RequestIDOf returns the id set by RequestID, or "" outside of it
func RequestIDOf(c *fiber.Ctx) string {
	id, _ := c.Locals("requestId").(string)
	return id
}
