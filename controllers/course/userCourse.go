package controllers

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"elearn/services/content"

	"github.com/gofiber/fiber/v2"
)

// filterFromQuery builds a catalog filter from the request query string
func filterFromQuery(c *fiber.Ctx) content.CourseFilter {
	return content.CourseFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Language: c.Query("language"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Status:   c.Query("status"),
		SortBy:   c.Query("sortBy"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", config.AppConfig.PageLimit),
	}
}

// GetAllCourses is the public student catalog: published courses only,
// whatever status the query string claims.
func GetAllCourses(c *fiber.Ctx) error {
	courses, pagination, err := content.ListPublishedCourses(database.Database.Db, filterFromQuery(c))
	if err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    courses,
		"pagination": pagination,
	})
}

// AdminGetAllCourses lists courses of every status, honoring an explicit
// status filter when supplied.
func AdminGetAllCourses(c *fiber.Ctx) error {
	courses, pagination, err := content.ListAllCourses(database.Database.Db, filterFromQuery(c))
	if err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    courses,
		"pagination": pagination,
	})
}

// GetCourseBySlug returns a published course with its sections, lectures and
// reviews for the public course page.
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND status = ? AND is_deleted = ?",
		slug, courseModels.StatusPublished, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	database.Database.Db.Where("id = ?", course.InstructorID).First(&instructor)

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&sections)

	var lectures []courseModels.Lecture
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&lectures)

	var reviews []courseModels.Review
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("created_at desc").Limit(20).Find(&reviews)

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":           course,
		"instructor":       instructor.Public(),
		"sections":         sections,
		"lectures":         lectures,
		"reviews":          reviews,
		"enrollment_count": enrollmentCount,
	})
}
