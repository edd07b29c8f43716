package middleware

import "github.com/gofiber/fiber/v2"

// AdminOnly gates a route on the ADMIN role claim set by JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "ADMIN" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access denied! Admin only.",
			"data":    nil,
		})
	}
	return c.Next()
}
