package courseValidator

import (
	"strings"

	"elearn/middleware"
	"elearn/services/content"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.v10 errors into a field → message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errors[field] = field + " is required!"
			case "min":
				errors[field] = field + " is too short!"
			case "oneof":
				errors[field] = field + " must be one of: " + fe.Param()
			case "gte":
				errors[field] = field + " must not be negative!"
			default:
				errors[field] = field + " is invalid!"
			}
		}
	} else {
		errors["request"] = "Invalid request body!"
	}
	return errors
}

type courseRequest struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Description  string   `json:"description" validate:"required,min=5"`
	Category     []string `json:"category" validate:"required,min=1"`
	Level        string   `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language     string   `json:"language" validate:"omitempty,oneof=Hindi English Hinglish"`
	ThumbnailURL string   `json:"thumbnail_url" validate:"required"`
	ThumbnailID  string   `json:"thumbnail_id"`
	Price        float64  `json:"price" validate:"gte=0"`
	IsFree       bool     `json:"is_free"`
	Status       string   `json:"status" validate:"omitempty,oneof=Draft Published Archived"`
	Contributors []uint   `json:"contributors"`
}

// CreateCourse validates the course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", &content.CourseInput{
			Title:        reqData.Title,
			Description:  reqData.Description,
			Category:     reqData.Category,
			Level:        reqData.Level,
			Language:     reqData.Language,
			ThumbnailURL: reqData.ThumbnailURL,
			ThumbnailID:  reqData.ThumbnailID,
			Price:        reqData.Price,
			IsFree:       reqData.IsFree,
			Status:       reqData.Status,
			Contributors: reqData.Contributors,
		})
		return c.Next()
	}
}

type courseUpdateRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=3"`
	Description  *string  `json:"description" validate:"omitempty,min=5"`
	Category     []string `json:"category" validate:"omitempty,min=1"`
	Level        *string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language     *string  `json:"language" validate:"omitempty,oneof=Hindi English Hinglish"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	ThumbnailID  *string  `json:"thumbnail_id"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	IsFree       *bool    `json:"is_free"`
	Status       *string  `json:"status" validate:"omitempty,oneof=Draft Published Archived"`
	Contributors []uint   `json:"contributors"`
}

// UpdateCourse validates the partial course update payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourseUpdate", &content.CourseUpdate{
			Title:        reqData.Title,
			Description:  reqData.Description,
			Category:     reqData.Category,
			Level:        reqData.Level,
			Language:     reqData.Language,
			ThumbnailURL: reqData.ThumbnailURL,
			ThumbnailID:  reqData.ThumbnailID,
			Price:        reqData.Price,
			IsFree:       reqData.IsFree,
			Status:       reqData.Status,
			Contributors: reqData.Contributors,
		})
		return c.Next()
	}
}
