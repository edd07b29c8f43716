package courseRoutes

import (
	courseController "edusphere/controllers/course"
	"edusphere/middleware"
	courseValidator "edusphere/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers public course listing and admin course CRUD
func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses")

	courses.Get("/", courseController.GetAllCourses)
	courses.Get("/:id", courseValidator.CourseID(), courseController.GetCourse)

	courses.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CreateCourse(), courseController.CreateCourse)
	courses.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseID(), courseController.UpdateCourse)
	courses.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseID(), courseController.DeleteCourse)
}
