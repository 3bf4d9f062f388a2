package dailyClassController

import (
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingClasses lists upcoming active classes for the courses the
// caller is enrolled in. Enrollment scoping is a join-table subquery.
func GetUpcomingClasses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	enrolledCourses := db.Model(&models.Enrollment{}).
		Select("course_id").
		Where("user_id = ?", userID)

	var classes []models.DailyClass
	if err := db.Preload("Course").
		Where("course_id IN (?) AND is_active = ? AND scheduled_date >= ?", enrolledCourses, true, time.Now()).
		Order("scheduled_date asc").
		Limit(20).
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upcoming classes fetched successfully!", classes)
}
