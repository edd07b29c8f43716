package contactValidator

import (
	"edusphere/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CreateMessage validates the public contact form payload.
func CreateMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
			Subject   string `json:"subject"`
			Message   string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["lastName"] = "Last name is required!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}

// Reply validates the admin reply payload.
func Reply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message id!", nil)
		}

		reqData := new(struct {
			Reply string `json:"reply"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Reply) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply is required!", nil)
		}

		c.Locals("messageID", id)
		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
