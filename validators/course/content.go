package courseValidator

import (
	"elearn/middleware"
	"elearn/services/content"

	"github.com/gofiber/fiber/v2"
)

type sectionRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// CreateSection validates the section creation payload
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(sectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSection", &content.SectionInput{
			Title:       reqData.Title,
			Description: reqData.Description,
			OrderIndex:  reqData.OrderIndex,
		})
		return c.Next()
	}
}

type sectionUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,gte=0"`
}

// UpdateSection validates the partial section update payload
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(sectionUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSectionUpdate", &content.SectionUpdate{
			Title:       reqData.Title,
			Description: reqData.Description,
			OrderIndex:  reqData.OrderIndex,
		})
		return c.Next()
	}
}

type lectureRequest struct {
	Title             string   `json:"title" validate:"required,min=3"`
	Description       string   `json:"description"`
	VideoURL          string   `json:"video_url" validate:"required"`
	VideoID           string   `json:"video_id"`
	Duration          int64    `json:"duration" validate:"required,gt=0"`
	DurationFormatted string   `json:"duration_formatted"`
	ThumbnailURL      string   `json:"thumbnail_url"`
	ThumbnailID       string   `json:"thumbnail_id"`
	Resources         []string `json:"resources"`
	OrderIndex        int      `json:"order_index" validate:"gte=0"`
}

// CreateLecture validates the lecture creation payload
func CreateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(lectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLecture", &content.LectureInput{
			Title:             reqData.Title,
			Description:       reqData.Description,
			VideoURL:          reqData.VideoURL,
			VideoID:           reqData.VideoID,
			Duration:          reqData.Duration,
			DurationFormatted: reqData.DurationFormatted,
			ThumbnailURL:      reqData.ThumbnailURL,
			ThumbnailID:       reqData.ThumbnailID,
			Resources:         reqData.Resources,
			OrderIndex:        reqData.OrderIndex,
		})
		return c.Next()
	}
}

type lectureUpdateRequest struct {
	Title             *string  `json:"title" validate:"omitempty,min=3"`
	Description       *string  `json:"description"`
	VideoURL          *string  `json:"video_url"`
	VideoID           *string  `json:"video_id"`
	Duration          *int64   `json:"duration" validate:"omitempty,gt=0"`
	DurationFormatted *string  `json:"duration_formatted"`
	ThumbnailURL      *string  `json:"thumbnail_url"`
	ThumbnailID       *string  `json:"thumbnail_id"`
	Resources         []string `json:"resources"`
	OrderIndex        *int     `json:"order_index" validate:"omitempty,gte=0"`
}

// UpdateLecture validates the partial lecture update payload
func UpdateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(lectureUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLectureUpdate", &content.LectureUpdate{
			Title:             reqData.Title,
			Description:       reqData.Description,
			VideoURL:          reqData.VideoURL,
			VideoID:           reqData.VideoID,
			Duration:          reqData.Duration,
			DurationFormatted: reqData.DurationFormatted,
			ThumbnailURL:      reqData.ThumbnailURL,
			ThumbnailID:       reqData.ThumbnailID,
			Resources:         reqData.Resources,
			OrderIndex:        reqData.OrderIndex,
		})
		return c.Next()
	}
}

// SubmitReview validates the review payload
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Rating
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
