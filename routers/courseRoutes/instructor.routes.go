package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	"elearn/models"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorCourseRoutes sets up all instructor course management routes
func SetupInstructorCourseRoutes(app *fiber.App) {
	manage := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)

	instructorGroup := app.Group("/instructor/course", middleware.JWTMiddleware, manage)

	// Course CRUD
	instructorGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/list", controllers.GetMyCourses)
	instructorGroup.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	instructorGroup.Delete("/:id", controllers.DeleteCourse)
	instructorGroup.Get("/:id", controllers.GetCourseDetails)

	// Section management
	instructorGroup.Post("/:id/section", validators.CreateSection(), controllers.CreateSection)
	instructorGroup.Get("/:id/sections", controllers.ListSections)
	instructorGroup.Put("/:course_id/section/:section_id", validators.UpdateSection(), controllers.UpdateSection)
	instructorGroup.Delete("/:course_id/section/:section_id", controllers.DeleteSection)

	// Lecture management
	instructorGroup.Post("/:course_id/section/:section_id/lecture", validators.CreateLecture(), controllers.CreateLecture)
	instructorGroup.Get("/:course_id/section/:section_id/lectures", controllers.ListLectures)

	lectureGroup := app.Group("/instructor/lecture", middleware.JWTMiddleware, manage)
	lectureGroup.Put("/:lecture_id", validators.UpdateLecture(), controllers.UpdateLecture)
	lectureGroup.Delete("/:lecture_id", controllers.DeleteLecture)

	// Media upload proxy
	app.Post("/instructor/upload", middleware.JWTMiddleware, manage, controllers.UploadMedia)

	// Dashboard
	app.Get("/instructor/dashboard/stats", middleware.JWTMiddleware, manage, controllers.InstructorDashboardStats)

	// Admin catalog: every status, optional status filter
	app.Get("/admin/course/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.AdminGetAllCourses)
}
