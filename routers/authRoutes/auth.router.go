package authRoutes

import (
	authController "coursehub/controllers/auth"
	subscriptionController "coursehub/controllers/subscription"
	"coursehub/middleware"
	authValidator "coursehub/validators/auth"
	subscriptionValidator "coursehub/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers session, profile and subscription routes under api
func SetupAuthRoutes(api fiber.Router, auth *authController.Handler, subs *subscriptionController.Handler, loadUser fiber.Handler) {
	api.Post("/register", authValidator.Register(), auth.Register)
	api.Post("/login", authValidator.Login(), auth.Login)
	api.Post("/logout", auth.Logout)

	userGroup := api.Group("/user")
	userGroup.Get("/", middleware.JWTMiddleware, loadUser, auth.CurrentUser)
	userGroup.Patch("/profile", middleware.JWTMiddleware, loadUser, authValidator.UpdateProfile(), auth.UpdateProfile)
	userGroup.Patch("/password", middleware.JWTMiddleware, loadUser, authValidator.ChangePassword(), auth.ChangePassword)
	userGroup.Patch("/subscription", middleware.JWTMiddleware, loadUser, subscriptionValidator.UpdateSubscription(), subs.UpdateSubscription)

	api.Post("/subscriptions/upgrade", middleware.JWTMiddleware, loadUser, subscriptionValidator.Upgrade(), subs.Upgrade)
}
