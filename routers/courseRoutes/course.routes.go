package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and student routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id/reviews", controllers.GetCourseReviews)
	courseGroup.Get("/:slug", controllers.GetCourseBySlug)

	// Student actions
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, controllers.EnrollCourse)
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, validators.SubmitReview(), controllers.SubmitReview)
	courseGroup.Delete("/:id/review", middleware.JWTMiddleware, controllers.RemoveMyReview)

	app.Get("/lecture/:lecture_id/watch", middleware.JWTMiddleware, controllers.WatchLecture)
	app.Get("/my/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
}
