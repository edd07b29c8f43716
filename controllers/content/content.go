package contentController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetAllContent returns every content section.
func GetAllContent(c *fiber.Ctx) error {
	var contents []models.Content
	if err := database.Database.Db.Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", contents)
}

// GetContent returns a single section.
func GetContent(c *fiber.Ctx) error {
	section := c.Params("section")

	var content models.Content
	if err := database.Database.Db.Where("section = ?", section).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", content)
}

// UpdateContent upserts a section with per-field merge: supplied keys
// overwrite, everything else keeps its prior value. Keys beyond the four
// fixed fields are merged into the section's extra document, where nested
// values replace wholesale.
func UpdateContent(c *fiber.Ctx) error {
	section := c.Locals("contentSection").(string)
	patch := c.Locals("contentPatch").(map[string]interface{})

	db := database.Database.Db

	var content models.Content
	err := db.Where("section = ?", section).First(&content).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}
		content = models.Content{Section: section}
	}

	extra := make(map[string]interface{})
	if len(content.Extra) > 0 {
		if err := json.Unmarshal(content.Extra, &extra); err != nil {
			log.Printf("Error decoding extra content for %s: %v", section, err)
			extra = make(map[string]interface{})
		}
	}

	for key, value := range patch {
		str, isString := value.(string)
		switch key {
		case "title":
			if isString {
				content.Title = str
				continue
			}
		case "subtitle":
			if isString {
				content.Subtitle = str
				continue
			}
		case "description":
			if isString {
				content.Description = str
				continue
			}
		case "imageUrl", "image":
			if isString {
				content.ImageURL = str
				continue
			}
		}
		extra[key] = value
	}

	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}
		content.Extra = datatypes.JSON(raw)
	}

	if err := db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully", content)
}

// GetPageContent returns the whole page content document.
func GetPageContent(c *fiber.Ctx) error {
	doc, err := database.PageContent.GetAll()
	if err != nil {
		log.Printf("Error loading page content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load page content!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page content fetched successfully.", doc)
}

// UpdatePageContent merges fields into one page of the document.
func UpdatePageContent(c *fiber.Ctx) error {
	page := c.Locals("contentPage").(string)
	patch := c.Locals("contentPatch").(map[string]interface{})

	section, err := database.PageContent.Update(page, patch)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page specified", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully", section)
}
