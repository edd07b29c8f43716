package courseValidator

import (
	"edusphere/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validates the admin create-course payload.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Category     string `json:"category"`
			Price        int    `json:"price"`
			Duration     string `json:"duration"`
			StudentCount int    `json:"studentCount"`
			Rating       string `json:"rating"`
			ImageURL     string `json:"imageUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}
