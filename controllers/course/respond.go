package controllers

import (
	"elearn/middleware"
	"elearn/services/content"

	"github.com/gofiber/fiber/v2"
)

// contentError maps a content-pipeline error onto the JSON envelope
func contentError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch content.KindOf(err) {
	case content.KindValidation:
		status = fiber.StatusBadRequest
	case content.KindNotFound:
		status = fiber.StatusNotFound
	case content.KindConflict:
		status = fiber.StatusConflict
	case content.KindUpload:
		status = fiber.StatusBadGateway
	}
	return middleware.JsonResponse(c, status, false, err.Error(), nil)
}
