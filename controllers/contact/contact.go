package contactController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"

	"github.com/gofiber/fiber/v2"
)

// CreateMessage stores a public contact form submission.
func CreateMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMessage").(*struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Subject   string `json:"subject"`
		Message   string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Subject:   reqData.Subject,
		Message:   reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Contact message sent successfully", message)
}

// MyMessages lists all contact messages for an email, replies included.
func MyMessages(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	var messages []models.ContactMessage
	if err := database.Database.Db.Where("email = ?", email).Order("created_at DESC").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully.", messages)
}
