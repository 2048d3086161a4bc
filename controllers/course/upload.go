package controllers

import (
	"elearn/middleware"
	"elearn/services/content"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia proxies a thumbnail/video/resource file to the media provider
// and returns its hosted URL and public id. An upload failure aborts the
// request; nothing is persisted here.
func UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	localPath, err := utils.SaveUploadedFile(file, "./uploads/tmp")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	result, err := utils.UploadToCloud(localPath)
	if err != nil {
		return contentError(c, content.Upload("media upload failed", err))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", result)
}
