package authController

import (
	"edusphere/auth"
	"edusphere/config"
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"edusphere/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// generateStudentID derives a student number from the current timestamp.
func generateStudentID() string {
	return fmt.Sprintf("STU%06d", time.Now().UnixMilli()%1000000)
}

// RegisterStudent handles the multipart student registration form.
func RegisterStudent(c *fiber.Ctx) error {
	db := database.Database.Db

	email := c.FormValue("email")

	// Duplicate checks run before any file is written so a failed
	// registration leaves nothing on disk.
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists with this email", nil)
	}

	studentID := c.FormValue("studentId")
	if studentID != "" {
		if err := db.Where("student_id = ?", studentID).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student ID is already taken", nil)
		}
	} else {
		studentID = generateStudentID()
	}

	isTransfer := c.FormValue("is_transfer") == "yes"

	idDocument, err := c.FormFile("id_document")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID document is required!", nil)
	}
	idDocumentPath, err := utils.SaveUpload(idDocument, "id_document")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	var transferLetterPath string
	if isTransfer {
		transferLetter, err := c.FormFile("transfer_letter")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transfer letter is required for transfer students!", nil)
		}
		transferLetterPath, err = utils.SaveUpload(transferLetter, "transfer_letter")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(c.FormValue("password")), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FullName:            c.FormValue("fullName"),
		Email:               email,
		Password:            string(hashedPassword),
		Role:                models.RoleStudent,
		Status:              models.StatusPending,
		StudentID:           studentID,
		IsTransferStudent:   isTransfer,
		PreviousInstitution: c.FormValue("previousInstitution"),
		IDDocumentPath:      idDocumentPath,
		TransferLetterPath:  transferLetterPath,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed!", nil)
	}

	utils.SendRegistrationEmail(newUser.Email, newUser.FullName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registration successful", fiber.Map{
		"id":        newUser.ID,
		"fullName":  newUser.FullName,
		"email":     newUser.Email,
		"studentId": newUser.StudentID,
	})
}

// RegisterTeacher handles the multipart teacher application form.
func RegisterTeacher(c *fiber.Ctx) error {
	db := database.Database.Db

	email := c.FormValue("email")

	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists with this email", nil)
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resume is required!", nil)
	}
	resumePath, err := utils.SaveUpload(resume, "resume")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(c.FormValue("password")), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FullName:       c.FormValue("fullName"),
		Email:          email,
		Password:       string(hashedPassword),
		Role:           models.RoleTeacher,
		Status:         models.StatusPending,
		Specialization: c.FormValue("specialization"),
		Experience:     c.FormValue("experience"),
		Qualifications: c.FormValue("qualifications"),
		ResumePath:     resumePath,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed!", nil)
	}

	utils.SendRegistrationEmail(newUser.Email, newUser.FullName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher application submitted successfully", fiber.Map{
		"id":       newUser.ID,
		"fullName": newUser.FullName,
		"email":    newUser.Email,
	})
}

// Login authenticates a registered user.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	switch user.Status {
	case models.StatusActive:
		// fall through to token issue
	case models.StatusPending:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your registration is pending approval.", nil)
	case models.StatusRejected:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your registration was not accepted.", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is not active.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"fullName":  user.FullName,
			"email":     user.Email,
			"role":      user.Role,
			"studentId": user.StudentID,
		},
	})
}

// AdminLogin authenticates against the admin credential store.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !auth.Check(reqData.Email, reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid admin credentials", nil)
	}

	token, err := middleware.GenerateJWT(0, "Administrator", "ADMIN", reqData.Email)
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Authentication failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin authentication successful", fiber.Map{
		"token": token,
		"admin": true,
	})
}
