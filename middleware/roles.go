package middleware

import (
	"codemaster/database"
	"codemaster/models"

	"github.com/gofiber/fiber/v2"
)

// currentUser loads the authenticated user row for role checks.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminOnly allows the request through only for admin users
func AdminOnly(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.IsAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin privileges required!", nil)
	}

	c.Locals("currentUser", user)
	return c.Next()
}

// InstructorOnly allows the request through only for instructor users
func InstructorOnly(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.IsInstructor {
		return JsonResponse(c, fiber.StatusForbidden, false, "Only instructors can access this resource!", nil)
	}

	c.Locals("currentUser", user)
	return c.Next()
}
