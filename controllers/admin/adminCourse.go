package adminController

import (
	"codemaster/config"
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"codemaster/utils"
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateCourse mutates any course, no ownership restriction. Accepts a
// multipart form so thumbnail/preview uploads can ride along.
func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	if v := c.FormValue("title"); v != "" {
		course.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		course.Description = v
	}
	if v := c.FormValue("short_description"); v != "" {
		course.ShortDescription = v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid price!", nil)
		}
		course.Price = price
	}
	if v := c.FormValue("level"); v != "" {
		course.Level = v
	}
	if v := c.FormValue("category"); v != "" {
		course.Category = v
	}
	if v := c.FormValue("duration"); v != "" {
		course.Duration = v
	}
	if v := c.FormValue("lecture_count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture count!", nil)
		}
		course.LectureCount = count
	}

	courseDir := filepath.Join(config.AppConfig.UploadDir, "courses")

	if thumbnail, err := c.FormFile("thumbnail"); err == nil {
		path, err := utils.SaveUploadedFile(thumbnail, courseDir)
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store thumbnail!", nil)
		}
		course.Thumbnail = utils.GetFileURL(path)
	}

	if preview, err := c.FormFile("preview_video"); err == nil {
		path, err := utils.SaveUploadedFile(preview, courseDir)
		if err != nil {
			log.Printf("Error saving preview video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store preview video!", nil)
		}
		course.PreviewVideo = utils.GetFileURL(path)
	}

	course.LastUpdated = time.Now()

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes any course, no ownership restriction
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
