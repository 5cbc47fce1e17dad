package subscriptionController

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"coursehub/middleware"
	"coursehub/services/identity"
	subscriptionValidator "coursehub/validators/subscription"
)

type Handler struct {
	users *identity.Store
}

func New(users *identity.Store) *Handler {
	return &Handler{users: users}
}

// UpdateSubscription stores the tier and unlimited flag exactly as sent
func (h *Handler) UpdateSubscription(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubscription").(*subscriptionValidator.UpdateRequest)
	user := middleware.CurrentUser(c)

	unlimited := reqData.HasUnlimitedAccess != nil && *reqData.HasUnlimitedAccess
	updated, err := h.users.UpdateSubscription(c.UserContext(), user.ID, reqData.SubscriptionTier, unlimited)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	zap.L().Info("subscription updated",
		zap.Uint("userId", user.ID),
		zap.String("tier", updated.SubscriptionTier),
		zap.Bool("unlimited", updated.HasUnlimitedAccess))
	return middleware.JsonResponse(c, fiber.StatusOK, updated)
}

// Upgrade switches tier; the unlimited tier also grants unlimited access
func (h *Handler) Upgrade(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpgrade").(*subscriptionValidator.UpgradeRequest)
	user := middleware.CurrentUser(c)

	updated, err := h.users.Upgrade(c.UserContext(), user.ID, reqData.Tier)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	zap.L().Info("subscription upgraded", zap.Uint("userId", user.ID), zap.String("tier", updated.SubscriptionTier))
	return middleware.JsonResponse(c, fiber.StatusOK, updated)
}
