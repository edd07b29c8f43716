package courseController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	"edusphere/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists active courses only.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_active = ?", true).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// CreateCourse creates a new course with listing defaults.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Category     string `json:"category"`
		Price        int    `json:"price"`
		Duration     string `json:"duration"`
		StudentCount int    `json:"studentCount"`
		Rating       string `json:"rating"`
		ImageURL     string `json:"imageUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		StudentCount: reqData.StudentCount,
		Rating:       reqData.Rating,
		ImageURL:     reqData.ImageURL,
		IsActive:     true,
	}
	if course.Rating == "" {
		course.Rating = "4.8"
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse applies a partial update. Multipart bodies may carry an
// image file plus string-form numeric fields; JSON bodies use pointer
// fields so zero values stay distinguishable from omissions.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		if err := applyFormUpdate(c, &course); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
	} else {
		reqData := new(struct {
			Title        *string `json:"title"`
			Description  *string `json:"description"`
			Category     *string `json:"category"`
			Price        *int    `json:"price"`
			Duration     *string `json:"duration"`
			StudentCount *int    `json:"studentCount"`
			Rating       *string `json:"rating"`
			ImageURL     *string `json:"imageUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil {
			course.Title = *reqData.Title
		}
		if reqData.Description != nil {
			course.Description = *reqData.Description
		}
		if reqData.Category != nil {
			course.Category = *reqData.Category
		}
		if reqData.Price != nil {
			course.Price = *reqData.Price
		}
		if reqData.Duration != nil {
			course.Duration = *reqData.Duration
		}
		if reqData.StudentCount != nil {
			course.StudentCount = *reqData.StudentCount
		}
		if reqData.Rating != nil {
			course.Rating = *reqData.Rating
		}
		if reqData.ImageURL != nil {
			course.ImageURL = *reqData.ImageURL
		}
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// applyFormUpdate merges multipart form fields into the course. Numeric
// fields arrive as strings and are coerced before assignment.
func applyFormUpdate(c *fiber.Ctx, course *models.Course) error {
	if v := c.FormValue("title"); v != "" {
		course.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		course.Description = v
	}
	if v := c.FormValue("category"); v != "" {
		course.Category = v
	}
	if v := c.FormValue("duration"); v != "" {
		course.Duration = v
	}
	if v := c.FormValue("rating"); v != "" {
		course.Rating = v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid price!")
		}
		course.Price = price
	}
	if v := c.FormValue("studentCount"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student count!")
		}
		course.StudentCount = count
	}

	if image, err := c.FormFile("image"); err == nil {
		imageURL, err := utils.SaveUpload(image, "course_image")
		if err != nil {
			return err
		}
		course.ImageURL = imageURL
	}
	return nil
}

// DeleteCourse soft deletes a course by flipping its active flag.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsActive = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}

// GetCourse fetches a single course by id, soft-deleted included.
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}
