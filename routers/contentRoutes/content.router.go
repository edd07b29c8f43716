package contentRoutes

import (
	contentController "edusphere/controllers/content"
	"edusphere/middleware"
	contentValidator "edusphere/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes registers section content endpoints
func SetupContentRoutes(app *fiber.App) {
	content := app.Group("/api/content")

	content.Get("/", contentController.GetAllContent)
	content.Get("/:section", contentController.GetContent)
	content.Put("/:section", middleware.JWTMiddleware, middleware.AdminOnly, contentValidator.UpdateSection(), contentController.UpdateContent)
}
