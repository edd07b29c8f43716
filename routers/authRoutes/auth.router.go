package authRoutes

import (
	authController "edusphere/controllers/auth"
	authValidator "edusphere/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers registration and login endpoints
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register/student", authValidator.RegisterStudent(), authController.RegisterStudent)
	api.Post("/register/teacher", authValidator.RegisterTeacher(), authController.RegisterTeacher)
	api.Post("/login", authValidator.Login(), authController.Login)
	api.Post("/admin/login", authValidator.AdminLogin(), authController.AdminLogin)
}
