package adminController

import (
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateDailyClass schedules a session for a course
func CreateDailyClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDailyClass").(*struct {
		CourseID        uint      `json:"course_id"`
		Title           string    `json:"title"`
		Topic           string    `json:"topic"`
		Description     string    `json:"description"`
		MeetLink        string    `json:"meet_link"`
		ScheduledDate   time.Time `json:"scheduled_date"`
		DurationMinutes int       `json:"duration_minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	duration := reqData.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	dailyClass := models.DailyClass{
		CourseID:        reqData.CourseID,
		Title:           reqData.Title,
		Topic:           reqData.Topic,
		Description:     reqData.Description,
		MeetLink:        reqData.MeetLink,
		ScheduledDate:   reqData.ScheduledDate,
		DurationMinutes: duration,
		IsActive:        true,
	}

	if err := db.Create(&dailyClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create daily class!", nil)
	}

	dailyClass.Course = course
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Daily class created successfully!", dailyClass)
}

// ListDailyClasses returns all daily classes, optionally filtered by course
func ListDailyClasses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.DailyClass{}).Preload("Course")

	if courseID := c.QueryInt("course_id", 0); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var classes []models.DailyClass
	if err := db.Order("scheduled_date desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily classes fetched successfully!", classes)
}

// UpdateDailyClass mutates a scheduled session
func UpdateDailyClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid daily class id!", nil)
	}

	reqData, ok := c.Locals("validatedDailyClassUpdate").(*struct {
		Title           *string    `json:"title"`
		Topic           *string    `json:"topic"`
		Description     *string    `json:"description"`
		MeetLink        *string    `json:"meet_link"`
		ScheduledDate   *time.Time `json:"scheduled_date"`
		DurationMinutes *int       `json:"duration_minutes"`
		IsActive        *bool      `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var dailyClass models.DailyClass
	if err := db.First(&dailyClass, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily class not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily class!", nil)
	}

	if reqData.Title != nil {
		dailyClass.Title = *reqData.Title
	}
	if reqData.Topic != nil {
		dailyClass.Topic = *reqData.Topic
	}
	if reqData.Description != nil {
		dailyClass.Description = *reqData.Description
	}
	if reqData.MeetLink != nil {
		dailyClass.MeetLink = *reqData.MeetLink
	}
	if reqData.ScheduledDate != nil {
		dailyClass.ScheduledDate = *reqData.ScheduledDate
	}
	if reqData.DurationMinutes != nil && *reqData.DurationMinutes > 0 {
		dailyClass.DurationMinutes = *reqData.DurationMinutes
	}
	if reqData.IsActive != nil {
		dailyClass.IsActive = *reqData.IsActive
	}

	if err := db.Save(&dailyClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update daily class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily class updated successfully!", dailyClass)
}

// DeleteDailyClass removes a scheduled session
func DeleteDailyClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid daily class id!", nil)
	}

	result := database.Database.Db.Delete(&models.DailyClass{}, classID)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete daily class!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily class deleted successfully!", nil)
}
