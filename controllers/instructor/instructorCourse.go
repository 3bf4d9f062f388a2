package instructorController

import (
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ownCourse loads a course owned by the instructor, or nil when missing
func ownCourse(db *gorm.DB, courseID, instructorID uint) (*models.Course, error) {
	var course models.Course
	err := db.Where("id = ? AND instructor_id = ?", courseID, instructorID).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a catalog entry owned by the instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title            string  `json:"title"`
		Slug             string  `json:"slug"`
		Description      string  `json:"description"`
		ShortDescription string  `json:"short_description"`
		Price            float64 `json:"price"`
		Level            string  `json:"level"`
		Category         string  `json:"category"`
		Duration         string  `json:"duration"`
		Language         string  `json:"language"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	slug := reqData.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(reqData.Title), " ", "-"))
	}

	// Slug must be unique across the catalog
	if err := db.Where("slug = ?", slug).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course slug already exists!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Slug:             slug,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		Price:            reqData.Price,
		Level:            reqData.Level,
		Category:         reqData.Category,
		Duration:         reqData.Duration,
		Language:         reqData.Language,
		LastUpdated:      time.Now(),
		InstructorID:     user.ID,
		IsNew:            true,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// ListCourses returns courses created by the instructor
func ListCourses(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("instructor_id = ?", user.ID).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns one of the instructor's own courses
func GetCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := ownCourse(database.Database.Db, uint(courseID), user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse mutates one of the instructor's own courses
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title            *string  `json:"title"`
		Description      *string  `json:"description"`
		ShortDescription *string  `json:"short_description"`
		Price            *float64 `json:"price"`
		Level            *string  `json:"level"`
		Category         *string  `json:"category"`
		Duration         *string  `json:"duration"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	course, err := ownCourse(db, uint(courseID), user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.ShortDescription != nil {
		course.ShortDescription = *reqData.ShortDescription
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	course.LastUpdated = time.Now()

	if err := db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes one of the instructor's own courses
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db
	course, err := ownCourse(db, uint(courseID), user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Delete(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
