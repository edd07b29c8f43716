package authValidator

import (
	"edusphere/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// RegisterStudent validates the multipart student registration form.
func RegisterStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if len(strings.TrimSpace(c.FormValue("fullName"))) < 2 {
			errors["fullName"] = "Full name is required!"
		}
		if email := c.FormValue("email"); email == "" || !isValidEmail(email) {
			errors["email"] = "Invalid email!"
		}
		if len(strings.TrimSpace(c.FormValue("password"))) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if _, err := c.FormFile("id_document"); err != nil {
			errors["id_document"] = "ID document is required!"
		}
		if c.FormValue("is_transfer") == "yes" {
			if _, err := c.FormFile("transfer_letter"); err != nil {
				errors["transfer_letter"] = "Transfer letter is required for transfer students!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}

// RegisterTeacher validates the multipart teacher application form.
func RegisterTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if len(strings.TrimSpace(c.FormValue("fullName"))) < 2 {
			errors["fullName"] = "Full name is required!"
		}
		if email := c.FormValue("email"); email == "" || !isValidEmail(email) {
			errors["email"] = "Invalid email!"
		}
		if len(strings.TrimSpace(c.FormValue("password"))) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if _, err := c.FormFile("resume"); err != nil {
			errors["resume"] = "Resume is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// AdminLogin validator middleware
func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
