package dashboardRoutes

import (
	dashboardController "coursehub/controllers/dashboard"
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(api fiber.Router, h *dashboardController.Handler, loadUser fiber.Handler) {
	dashboardGroup := api.Group("/dashboard")

	dashboardGroup.Get("/stats", middleware.JWTMiddleware, loadUser, h.GetStats)
	dashboardGroup.Get("/activity", middleware.JWTMiddleware, loadUser, h.GetActivity)
}
