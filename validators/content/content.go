package contentValidator

import (
	"edusphere/middleware"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateSection validates a section content patch. The body is a flat JSON
// object; known fields map to columns and everything else lands in the
// section's extra document, so any non-empty object is acceptable.
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.TrimSpace(c.Params("section"))
		if section == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Section is required!", nil)
		}

		patch := make(map[string]interface{})
		if err := json.Unmarshal(c.Body(), &patch); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(patch) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields supplied!", nil)
		}

		c.Locals("contentSection", section)
		c.Locals("contentPatch", patch)
		return c.Next()
	}
}

// UpdatePage validates a page-content document patch: {page, ...fields}.
func UpdatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := make(map[string]interface{})
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		page, _ := body["page"].(string)
		if page == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page specified", nil)
		}
		delete(body, "page")
		if len(body) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields supplied!", nil)
		}

		c.Locals("contentPage", page)
		c.Locals("contentPatch", body)
		return c.Next()
	}
}
