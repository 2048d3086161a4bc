package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"elearn/services/content"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// courseOwner loads a live course and checks the caller may manage it
func courseOwner(c *fiber.Ctx, courseID int) (*models.User, *courseModels.Course, error) {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID && user.Role != models.RoleAdmin {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Not your course.", nil)
	}

	return user, &course, nil
}

// CreateCourse creates a new course owned by the calling instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*content.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := content.CreateCourse(database.Database.Db, user.ID, *reqData)
	if err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse patches an existing course owned by the caller
func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*content.CourseUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	wasPublished := course.Status == courseModels.StatusPublished

	updated, err := content.UpdateCourse(database.Database.Db, course.ID, *reqData)
	if err != nil {
		return contentError(c, err)
	}

	// Notify the instructor the first time the course goes live
	if !wasPublished && updated.Status == courseModels.StatusPublished {
		go utils.SendCoursePublishedEmail(user.Email, user.Name, updated.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", updated)
}

// DeleteCourse removes a course and all its sections and lectures
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	if err := content.DeleteCourse(database.Database.Db, course.ID); err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCourseDetails returns a course with its sections and lectures
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&sections)

	var lectures []courseModels.Lecture
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&lectures)

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"sections":         sections,
		"lectures":         lectures,
		"enrollment_count": enrollmentCount,
	})
}

// GetMyCourses lists the calling instructor's own courses, all statuses
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("instructor_id = ? AND is_deleted = ?", user.ID, false)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
