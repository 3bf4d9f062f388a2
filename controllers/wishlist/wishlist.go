package wishlistController

import (
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseExists checks the course id against the catalog
func courseExists(db *gorm.DB, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Course{}).Where("id = ?", courseID).Count(&count).Error
	return count > 0, err
}

// GetWishlist returns the user's wishlisted courses
func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var rows []models.Wishlist
	if err := database.Database.Db.Preload("Course").Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wishlist!", nil)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched successfully!", courses)
}

// AddToWishlist adds a course to the user's wishlist
func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	exists, err := courseExists(db, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if !exists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Wishlist
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already in wishlist!", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check wishlist!", nil)
	}

	row := models.Wishlist{UserID: userID, CourseID: uint(courseID)}
	if err := db.Create(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to wishlist!", nil)
}

// RemoveFromWishlist removes a course from the user's wishlist
func RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	result := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Delete(&models.Wishlist{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course from wishlist!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not in wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from wishlist!", nil)
}

// CheckWishlist reports whether a course is wishlisted by the user
func CheckWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Wishlist{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist checked!", fiber.Map{
		"is_wishlisted": count > 0,
	})
}
