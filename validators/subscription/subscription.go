package subscriptionValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/validators"
)

type UpdateRequest struct {
	SubscriptionTier   string `json:"subscriptionTier" validate:"required,oneof=free standard premium unlimited"`
	HasUnlimitedAccess *bool  `json:"hasUnlimitedAccess"`
}

type UpgradeRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free standard premium unlimited"`
}

// UpdateSubscription validator middleware
func UpdateSubscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		c.Locals("validatedSubscription", reqData)
		return c.Next()
	}
}

// Upgrade validator middleware
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpgradeRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		c.Locals("validatedUpgrade", reqData)
		return c.Next()
	}
}
