package enrollmentRoutes

import (
	enrollmentController "coursehub/controllers/enrollment"
	learningController "coursehub/controllers/learning"
	"coursehub/middleware"
	enrollmentValidator "coursehub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers enrollment, progress and learning-content routes
func SetupEnrollmentRoutes(api fiber.Router, h *enrollmentController.Handler, learning *learningController.Handler, loadUser fiber.Handler) {
	enrollGroup := api.Group("/enrollments")

	enrollGroup.Get("/", middleware.JWTMiddleware, loadUser, h.GetUserEnrollments)
	enrollGroup.Post("/", middleware.JWTMiddleware, loadUser, enrollmentValidator.CreateEnrollment(), h.EnrollInCourse)

	// Progress tracking
	enrollGroup.Patch("/:id/progress", middleware.JWTMiddleware, loadUser, enrollmentValidator.UpdateProgress(), h.UpdateProgress)
	enrollGroup.Post("/:id/steps/:stepId/complete", middleware.JWTMiddleware, loadUser, enrollmentValidator.CompleteStep(), h.MarkStepComplete)

	// Content viewing (for enrolled users)
	api.Get("/courses/:courseId/learning-content", middleware.JWTMiddleware, loadUser, enrollmentValidator.LearningContent(), learning.GetLearningContent)
}
