package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/services/content"

	"github.com/gofiber/fiber/v2"
)

// CreateSection creates a new section in a course owned by the caller
func CreateSection(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	reqData, ok := c.Locals("validatedSection").(*content.SectionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section, err := content.CreateSection(database.Database.Db, course.ID, *reqData)
	if err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// UpdateSection patches a section in a course owned by the caller
func UpdateSection(c *fiber.Ctx) error {
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

	// The section must belong to the course in the path
	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, course.ID, false).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSectionUpdate").(*content.SectionUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, err := content.UpdateSection(database.Database.Db, section.ID, *reqData)
	if err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", updated)
}

// DeleteSection removes a section and all its lectures, updating the course duration
func DeleteSection(c *fiber.Ctx) error {
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
		// Already gone: deleting the deleted succeeds quietly
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
	}

	if err := content.DeleteSection(database.Database.Db, section.ID); err != nil {
		return contentError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// ListSections lists a course's sections in order
func ListSections(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	user, course, respErr := courseOwner(c, courseID)
	if user == nil {
		return respErr
	}

	var sections []courseModels.Section
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", sections)
}
