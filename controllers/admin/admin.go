package adminController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"edusphere/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats aggregates counts on each request; nothing is cached.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, totalTeachers, activeCourses, totalMessages, newThisMonth int64

	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleTeacher).Count(&totalTeachers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&models.Course{}).Where("is_active = ?", true).Count(&activeCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&models.ContactMessage{}).Count(&totalMessages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&models.User{}).Where("created_at >= ?", now.BeginningOfMonth()).Count(&newThisMonth).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	var recent []models.User
	if err := db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	recentRegistrations := make([]fiber.Map, 0, len(recent))
	for _, user := range recent {
		recentRegistrations = append(recentRegistrations, fiber.Map{
			"id":    user.ID,
			"name":  user.FullName,
			"email": user.Email,
			"role":  user.Role,
			"date":  user.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully.", fiber.Map{
		"totalStudents":       totalStudents,
		"totalTeachers":       totalTeachers,
		"activeCourses":       activeCourses,
		"totalMessages":       totalMessages,
		"newThisMonth":        newThisMonth,
		"recentRegistrations": recentRegistrations,
	})
}

// GetAllUsers lists every registered user. Password hashes never serialize.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// GetStudents lists student users.
func GetStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleStudent).Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully.", students)
}

// GetTeachers lists teacher users.
func GetTeachers(c *fiber.Ctx) error {
	var teachers []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleTeacher).Find(&teachers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teachers!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teachers fetched successfully.", teachers)
}

// GetAllCourses lists every course, soft-deleted included.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetAllMessages lists all contact messages.
func GetAllMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.Database.Db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully.", messages)
}

// ReplyToMessage sets the single admin reply on a contact message.
// Replying again overwrites the previous reply.
func ReplyToMessage(c *fiber.Ctx) error {
	messageID := c.Locals("messageID").(int)
	reqData := c.Locals("validatedReply").(*struct {
		Reply string `json:"reply"`
	})

	var message models.ContactMessage
	if err := database.Database.Db.Where("id = ?", messageID).First(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	message.Reply = reqData.Reply
	if err := database.Database.Db.Save(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reply to message!", nil)
	}

	utils.SendReplyEmail(message.Email, message.FirstName, message.Subject, message.Reply)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply sent successfully.", message)
}

// AcceptUser transitions a user to active and notifies them.
func AcceptUser(c *fiber.Ctx) error {
	return updateUserStatus(c, models.StatusActive)
}

// RejectUser transitions a user to rejected and notifies them.
func RejectUser(c *fiber.Ctx) error {
	return updateUserStatus(c, models.StatusRejected)
}

func updateUserStatus(c *fiber.Ctx, status string) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Status = status
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	// Notification is best-effort; the status change already persisted.
	if status == models.StatusActive {
		utils.SendAcceptanceEmail(user.Email, user.FullName)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User accepted and notified", nil)
	}
	utils.SendRejectionEmail(user.Email, user.FullName)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User rejected and notified", nil)
}

// UploadImage stores a content image and returns its public URL.
func UploadImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No image file provided", nil)
	}

	imageURL, err := utils.SaveUpload(image, "content_image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully.", fiber.Map{
		"imageUrl": imageURL,
	})
}
