// Package server assembles the Fiber application from the services.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"coursehub/config"
	authController "coursehub/controllers/auth"
	catalogController "coursehub/controllers/catalog"
	dashboardController "coursehub/controllers/dashboard"
	enrollmentController "coursehub/controllers/enrollment"
	learningController "coursehub/controllers/learning"
	marketingController "coursehub/controllers/marketing"
	subscriptionController "coursehub/controllers/subscription"
	"coursehub/middleware"
	"coursehub/routers/authRoutes"
	"coursehub/routers/catalogRoutes"
	"coursehub/routers/dashboardRoutes"
	"coursehub/routers/enrollmentRoutes"
	"coursehub/routers/marketingRoutes"
	"coursehub/services/catalog"
	"coursehub/services/identity"
	"coursehub/services/ledger"
	"coursehub/utils"
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	DB      *gorm.DB
	Ledger  *ledger.Ledger
	Users   *identity.Store
	Catalog *catalog.Store
	Mailer  *utils.Mailer
}

// New builds the app with every route mounted under /api
func New(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "coursehub",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    1 << 20,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization,X-Request-ID",
		AllowCredentials: cfg.CorsOrigins != "*",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestId} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	loadUser := middleware.LoadUser(deps.DB)
	api := app.Group("/api")

	authRoutes.SetupAuthRoutes(api,
		authController.New(deps.Users, deps.Mailer),
		subscriptionController.New(deps.Users),
		loadUser)
	catalogRoutes.SetupCatalogRoutes(api, catalogController.New(deps.Catalog))
	enrollmentRoutes.SetupEnrollmentRoutes(api,
		enrollmentController.New(deps.Ledger),
		learningController.New(deps.Catalog, deps.Ledger),
		loadUser)
	dashboardRoutes.SetupDashboardRoutes(api, dashboardController.New(deps.Ledger), loadUser)
	marketingRoutes.SetupMarketingRoutes(api, marketingController.New(deps.DB, deps.Mailer))

	return app
}
