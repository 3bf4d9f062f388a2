package paymentController

import (
	"codemaster/config"
	orderController "codemaster/controllers/order"
	"codemaster/database"
	"codemaster/middleware"
	"codemaster/models"
	"codemaster/utils"
	"encoding/json"
	"errors"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ManualUpiPayment records a pending order for an out-of-band UPI transfer.
// Multipart form: utr (text), file (proof screenshot). Enrollment is only
// granted later, when an admin approves the order.
func ManualUpiPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	utr := c.FormValue("utr")
	if utr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "UTR number is required!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment proof file is required!", nil)
	}

	proofDir := filepath.Join(config.AppConfig.UploadDir, "payment_proofs")
	proofPath, err := utils.SaveUploadedFile(file, proofDir)
	if err != nil {
		log.Printf("Error saving payment proof: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store payment proof!", nil)
	}
	proofURL := utils.GetFileURL(proofPath)

	order, err := orderController.SubmitManualPayment(database.Database.Db, userID, utr, proofURL)
	if err != nil {
		// The proof was written before the transaction; remove it so a
		// rolled-back submission leaves no orphaned artifact behind.
		if rmErr := utils.RemoveFile(proofPath); rmErr != nil {
			log.Printf("Error cleaning up payment proof %s: %v", proofPath, rmErr)
		}

		if errors.Is(err, orderController.ErrEmptyCart) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
		}
		log.Printf("Error submitting manual payment for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}

	// Best-effort admin notification, never fails the request
	utils.SendPaymentSubmittedEmail(order.ID, order.TotalPrice, user.Email, utr, proofURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment submitted for verification!", fiber.Map{
		"order_id": order.ID,
	})
}

// CreatePaymentOrder registers a gateway order for the given amount
func CreatePaymentOrder(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentOrder").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	order, err := utils.CreateRazorpayOrder(reqData.Amount)
	if err != nil {
		log.Printf("Error creating razorpay order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order created!", order)
}

// VerifyPayment checks the gateway signature and, only on a match, commits
// the cart checkout. A signature mismatch never creates an order.
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentVerify").(*struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	valid := utils.VerifyRazorpaySignature(
		reqData.RazorpayOrderID,
		reqData.RazorpayPaymentID,
		reqData.RazorpaySignature,
		config.AppConfig.RazorpayKeySecret,
	)
	if !valid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment signature!", nil)
	}

	order, err := orderController.CheckoutCart(database.Database.Db, userID, models.PaymentRazorpay, "")
	if err != nil {
		if errors.Is(err, orderController.ErrEmptyCart) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
		}
		log.Printf("Error completing gateway checkout for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified successfully!", fiber.Map{
		"order_id": order.ID,
	})
}

// GetPaymentMethods lists the available payment channels
func GetPaymentMethods(c *fiber.Ctx) error {
	methods := []fiber.Map{}

	// UPI comes from the admin-configured row when present
	var upi models.PaymentMethod
	err := database.Database.Db.Where("method_id = ? AND is_active = ?", "upi", true).First(&upi).Error
	if err == nil {
		methods = append(methods, fiber.Map{
			"id":          upi.MethodID,
			"name":        upi.Name,
			"description": upi.Description,
			"icon":        upi.Icon,
		})
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		methods = append(methods, fiber.Map{
			"id":          "upi",
			"name":        "UPI",
			"description": "Google Pay, PhonePe, Paytm",
			"icon":        "smartphone",
		})
	} else {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment methods!", nil)
	}

	methods = append(methods,
		fiber.Map{
			"id":          "card",
			"name":        "Credit / Debit Card",
			"description": "Visa, Mastercard, RuPay",
			"icon":        "credit-card",
		},
		fiber.Map{
			"id":          "netbanking",
			"name":        "Net Banking",
			"description": "All Indian banks",
			"icon":        "globe",
		},
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment methods fetched!", fiber.Map{
		"methods": methods,
	})
}

// UpsertUpiMethod creates or updates the merchant UPI channel (admin only)
func UpsertUpiMethod(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpi").(*struct {
		UpiID string `json:"upi_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settings, err := json.Marshal(fiber.Map{"upi_id": reqData.UpiID})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode settings!", nil)
	}

	db := database.Database.Db

	var method models.PaymentMethod
	if err := db.Where("method_id = ?", "upi").First(&method).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment method!", nil)
		}
		method = models.PaymentMethod{
			MethodID:    "upi",
			Name:        "UPI",
			Description: reqData.UpiID,
			Icon:        "smartphone",
			IsActive:    true,
			Settings:    datatypes.JSON(settings),
		}
		if err := db.Create(&method).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save payment method!", nil)
		}
	} else {
		method.Description = reqData.UpiID
		method.Settings = datatypes.JSON(settings)
		if err := db.Save(&method).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save payment method!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "UPI payment method saved!", fiber.Map{
		"upi_id": reqData.UpiID,
	})
}
