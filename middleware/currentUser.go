package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/errs"
	"coursehub/models"
)

// LoadUser returns a middleware that resolves the authenticated user and stores it in
// c.Locals("user"). It must run after JWTMiddleware. A token for a deleted user is
// treated as unauthenticated.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return ErrorResponse(c, errs.ErrUnauthenticated)
		}

		var user models.User
		err := db.WithContext(c.UserContext()).First(&user, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrorResponse(c, errs.ErrUnauthenticated)
			}
			return ErrorResponse(c, errs.Wrap(errs.KindInternal, "middleware.LoadUser", "failed to load user", err))
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by LoadUser
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
