package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/services/content"

	"github.com/gofiber/fiber/v2"
)

// lectureOwner loads a live lecture and checks the caller may manage its course
func lectureOwner(c *fiber.Ctx, lectureID int) (*courseModels.Lecture, error) {
	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lectureID, false).
		First(&lecture).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	user, _, respErr := courseOwner(c, int(lecture.CourseID))
	if user == nil {
		return nil, respErr
	}
	return &lecture, nil
}

// CreateLecture creates a new lecture in a section of a course owned by the caller
func CreateLecture(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	sectionID, err := c.ParamsInt("section_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, course.ID, false).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedLecture").(*content.LectureInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lecture, err := content.CreateLecture(database.Database.Db, section.ID, *reqData)
	if err != nil {
		if lecture != nil {
			// Lecture persisted but the duration recompute failed; the
			// nightly sweep or a retry converges the totals
			return middleware.JsonResponse(c, fiber.StatusCreated, true,
				"Lecture created; duration totals pending recompute.", lecture)
		}
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture created successfully!", lecture)
}

// UpdateLecture patches a lecture in a course owned by the caller
func UpdateLecture(c *fiber.Ctx) error {
	lectureID, err := c.ParamsInt("lecture_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture id!", nil)
	}

	lecture, respErr := lectureOwner(c, lectureID)
	if lecture == nil {
		return respErr
	}

	reqData, ok := c.Locals("validatedLectureUpdate").(*content.LectureUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, err := content.UpdateLecture(database.Database.Db, lecture.ID, *reqData)
	if err != nil {
		if updated != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true,
				"Lecture updated; duration totals pending recompute.", updated)
		}
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture updated successfully!", updated)
}

// DeleteLecture removes a lecture and recomputes the owning durations
func DeleteLecture(c *fiber.Ctx) error {
	lectureID, err := c.ParamsInt("lecture_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture id!", nil)
	}

	lecture, respErr := lectureOwner(c, lectureID)
	if lecture == nil {
		return respErr
	}

	if err := content.DeleteLecture(database.Database.Db, lecture.ID); err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted successfully!", nil)
}

// ListLectures lists a section's lectures in order
func ListLectures(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	sectionID, err := c.ParamsInt("section_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	var lectures []courseModels.Lecture
	if err := database.Database.Db.Where("course_id = ? AND section_id = ? AND is_deleted = ?", course.ID, sectionID, false).
		Order("order_index asc").Find(&lectures).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lectures!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lectures fetched successfully!", lectures)
}

// WatchLecture serves a lecture to an enrolled student and counts the view
func WatchLecture(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lectureID, err := c.ParamsInt("lecture_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture id!", nil)
	}

	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lectureID, false).
		First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	// Only enrolled students (on a published course) may watch
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userId, lecture.CourseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course to watch this lecture!", nil)
	}

	if err := content.RecordLectureView(database.Database.Db, lecture.ID); err != nil {
		return contentError(c, err)
	}
	lecture.Views++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture fetched successfully!", lecture)
}
