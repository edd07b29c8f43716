package contactRoutes

import (
	contactController "edusphere/controllers/contact"
	contactValidator "edusphere/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes registers the public contact endpoints
func SetupContactRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/contact", contactValidator.CreateMessage(), contactController.CreateMessage)
	api.Get("/my-messages", contactController.MyMessages)
}
