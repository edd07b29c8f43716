package adminRoutes

import (
	adminController "edusphere/controllers/admin"
	contentController "edusphere/controllers/content"
	"edusphere/middleware"
	contactValidator "edusphere/validators/contact"
	contentValidator "edusphere/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers all privileged endpoints behind the admin gate
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Dashboard
	admin.Get("/stats", adminController.DashboardStats)

	// Registrations
	admin.Get("/users", adminController.GetAllUsers)
	admin.Get("/students", adminController.GetStudents)
	admin.Get("/teachers", adminController.GetTeachers)
	admin.Post("/users/:id/accept", adminController.AcceptUser)
	admin.Post("/users/:id/reject", adminController.RejectUser)

	// Courses (soft-deleted included)
	admin.Get("/all-courses", adminController.GetAllCourses)

	// Contact inbox
	admin.Get("/messages", adminController.GetAllMessages)
	admin.Get("/all-messages", adminController.GetAllMessages)
	admin.Post("/messages/:id/reply", contactValidator.Reply(), adminController.ReplyToMessage)

	// Page content document
	admin.Get("/page-content", contentController.GetPageContent)
	admin.Put("/page-content", contentValidator.UpdatePage(), contentController.UpdatePageContent)

	// Content images
	admin.Post("/upload-image", adminController.UploadImage)
}
