package adminController

import (
	orderController "codemaster/controllers/order"
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"codemaster/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates an admin account and returns an access token.
// Non-admin users get a 403 even with valid credentials.
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
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect email or password!", nil)
	}

	if !user.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin privileges required!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GetAllUsers lists every user account
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// GetDashboardStats returns platform totals and revenue
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalOrders int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Order{}).Count(&totalOrders)

	var totalRevenue float64
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_users":   totalUsers,
		"total_courses": totalCourses,
		"total_orders":  totalOrders,
		"total_revenue": totalRevenue,
	})
}

// GetAllOrders lists every order, newest first
func GetAllOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.Database.Db.Preload("User").Preload("OrderItems").
		Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	for i := range orders {
		orders[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", orders)
}

// VerifyOrder applies an approve/reject decision to a pending manual order
func VerifyOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	reqData, ok := c.Locals("validatedVerification").(*struct {
		Action string `json:"action"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	order, err := orderController.DecideOrder(db, uint(orderID), reqData.Action)
	if err != nil {
		switch {
		case errors.Is(err, orderController.ErrInvalidAction):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid action! Use approve or reject.", nil)
		case errors.Is(err, orderController.ErrOrderNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		case errors.Is(err, orderController.ErrInvalidOrderState):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order is not pending verification!", nil)
		}
		log.Printf("Error verifying order %d: %v", orderID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify order!", nil)
	}

	// Decision email to the order owner, best-effort after commit
	var owner models.User
	if err := db.First(&owner, order.UserID).Error; err == nil {
		utils.SendOrderStatusEmail(owner.Email, order.ID, order.TotalPrice, order.Status)
	}

	message := "Order approved successfully!"
	if reqData.Action == "reject" {
		message = "Order rejected successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, order)
}
