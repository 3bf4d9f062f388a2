package orderController

import (
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Checkout converts the authenticated user's cart into a completed order.
// Query params: payment_method (default credit_card), coupon_code.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paymentMethod := c.Query("payment_method", models.PaymentCreditCard)
	couponCode := c.Query("coupon_code")

	order, err := CheckoutCart(database.Database.Db, userID, paymentMethod, couponCode)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty or all courses are already enrolled!", nil)
		}
		log.Printf("Error during checkout for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// CreateOrder builds a completed order from an explicit course id list
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*struct {
		CourseIDs     []uint `json:"course_ids"`
		PaymentMethod string `json:"payment_method"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	paymentMethod := reqData.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCreditCard
	}

	order, err := CheckoutCourses(database.Database.Db, userID, reqData.CourseIDs, paymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, ErrAllAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in all specified courses!", nil)
		}
		log.Printf("Error creating order for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// ListOrders returns the user's order history, newest first
func ListOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var orders []models.Order
	if err := db.Preload("OrderItems").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	response := fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", response)
}

// GetOrder returns a single order, owner only
func GetOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Preload("OrderItems.Course").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch order!", nil)
	}

	if order.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}

// GetLatestOrder returns the user's most recent order
func GetLatestOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("OrderItems").Order("created_at desc").First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No orders found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}

// RequestRefund reverses a completed order within the 30 day window
func RequestRefund(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	order, err := RefundOrder(database.Database.Db, userID, uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		case errors.Is(err, ErrNotOrderOwner):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only refund your own orders!", nil)
		case errors.Is(err, ErrInvalidOrderState):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order cannot be refunded in its current state!", nil)
		case errors.Is(err, ErrRefundWindowExpired):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Refund period expired (30 days)!", nil)
		}
		log.Printf("Error refunding order %d: %v", orderID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process refund!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Refund processed successfully!", fiber.Map{
		"order_id":      order.ID,
		"refund_amount": order.TotalPrice,
	})
}
