package orderController

import (
	"codemaster/models"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Workflow errors. Handlers map these onto HTTP statuses; anything else
// coming out of the workflow is an infrastructure failure.
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrCourseNotFound      = errors.New("course not found")
	ErrAllAlreadyEnrolled  = errors.New("already enrolled in all requested courses")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNotOrderOwner       = errors.New("order belongs to another user")
	ErrInvalidOrderState   = errors.New("order is not in a valid state for this action")
	ErrInvalidAction       = errors.New("invalid verification action")
	ErrRefundWindowExpired = errors.New("refund period expired")
)

// RefundWindow is how long after purchase a refund may be requested
const RefundWindow = 30 * 24 * time.Hour

// Coupon codes mapped to percentage off the subtotal. Unknown codes are
// silently ignored, never an error.
var couponTable = map[string]float64{
	"SAVE20":    20,
	"SAVE10":    10,
	"WELCOME":   15,
	"STUDENT50": 50,
}

// CouponDiscount returns the discount amount for a subtotal and coupon code
func CouponDiscount(subtotal float64, code string) float64 {
	percent, ok := couponTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0
	}
	return subtotal * percent / 100
}

// IsEnrolled reports whether the user holds an enrollment row for the course
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// enrollTx grants the user access to a course inside tx. Idempotent: an
// existing enrollment row leaves both the row and the counter untouched.
func enrollTx(tx *gorm.DB, userID, courseID uint) error {
	var existing models.Enrollment
	err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		return err
	}

	// Atomic increment, never read-modify-write in application memory
	return tx.Model(&models.Course{}).
		Where("id = ?", courseID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1")).Error
}

// unenrollTx revokes access inside tx. The counter only moves when an
// enrollment row was actually removed, and never below zero.
func unenrollTx(tx *gorm.DB, userID, courseID uint) error {
	result := tx.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}

	return tx.Model(&models.Course{}).
		Where("id = ? AND enrolled_count > 0", courseID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count - 1")).Error
}

// createCompletedOrder writes the order, its items with snapshotted prices,
// and the enrollments, all inside tx.
func createCompletedOrder(tx *gorm.DB, userID uint, courses []models.Course, total float64, paymentMethod string) (*models.Order, error) {
	order := models.Order{
		UserID:        userID,
		TotalPrice:    total,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: paymentMethod,
	}
	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}

	for _, course := range courses {
		item := models.OrderItem{
			OrderID:  order.ID,
			CourseID: course.ID,
			Price:    course.Price,
		}
		if err := tx.Create(&item).Error; err != nil {
			return nil, err
		}
		if err := enrollTx(tx, userID, course.ID); err != nil {
			return nil, err
		}
	}

	return &order, nil
}

// CheckoutCart converts the user's cart into a completed order: courses the
// user already owns are dropped (their cart rows deleted with the rest),
// prices are snapshotted, enrollments granted and the cart cleared, all in
// one transaction.
func CheckoutCart(db *gorm.DB, userID uint, paymentMethod, couponCode string) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Course").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var toPurchase []models.Course
		subtotal := 0.0
		for _, item := range cartItems {
			enrolled, err := IsEnrolled(tx, userID, item.CourseID)
			if err != nil {
				return err
			}
			if enrolled {
				continue
			}
			toPurchase = append(toPurchase, item.Course)
			subtotal += item.Course.Price
		}

		// Covers the case where every cart row was already enrolled
		if len(toPurchase) == 0 {
			return ErrEmptyCart
		}

		total := subtotal - CouponDiscount(subtotal, couponCode)

		created, err := createCompletedOrder(tx, userID, toPurchase, total, paymentMethod)
		if err != nil {
			return err
		}
		order = created

		// Clear the whole cart, dropped rows included
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CheckoutCourses creates a completed order from an explicit course id list.
// Unknown ids fail the whole order; already-enrolled ids are skipped.
func CheckoutCourses(db *gorm.DB, userID uint, courseIDs []uint, paymentMethod string) (*models.Order, error) {
	if len(courseIDs) == 0 {
		return nil, ErrCourseNotFound
	}

	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var toPurchase []models.Course
		total := 0.0

		for _, courseID := range courseIDs {
			var course models.Course
			if err := tx.First(&course, courseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCourseNotFound
				}
				return err
			}

			enrolled, err := IsEnrolled(tx, userID, courseID)
			if err != nil {
				return err
			}
			if enrolled {
				continue
			}

			toPurchase = append(toPurchase, course)
			total += course.Price
		}

		if len(toPurchase) == 0 {
			return ErrAllAlreadyEnrolled
		}

		created, err := createCompletedOrder(tx, userID, toPurchase, total, paymentMethod)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// SubmitManualPayment records a pending manual UPI order: cart subtotal is
// snapshotted, order items written, cart cleared. Enrollment is deliberately
// NOT granted until an admin approves the order.
func SubmitManualPayment(db *gorm.DB, userID uint, utr, proofURL string) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Course").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		total := 0.0
		for _, item := range cartItems {
			total += item.Course.Price
		}

		pending := models.Order{
			UserID:        userID,
			TotalPrice:    total,
			Status:        models.OrderStatusPendingVerification,
			PaymentMethod: models.PaymentManualUPI,
			TransactionID: utr,
			PaymentProof:  proofURL,
		}
		if err := tx.Create(&pending).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:  pending.ID,
				CourseID: item.CourseID,
				Price:    item.Course.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		order = &pending
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// DecideOrder applies an admin approve/reject decision to a pending order.
// Approve completes the order and grants the enrollments; reject cancels it
// without touching enrollment. Any other state fails before mutating.
func DecideOrder(db *gorm.DB, orderID uint, action string) (*models.Order, error) {
	if action != "approve" && action != "reject" {
		return nil, ErrInvalidAction
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.Status != models.OrderStatusPendingVerification {
			return ErrInvalidOrderState
		}

		if action == "approve" {
			order.Status = models.OrderStatusCompleted
			for _, item := range order.OrderItems {
				if err := enrollTx(tx, order.UserID, item.CourseID); err != nil {
					return err
				}
			}
		} else {
			order.Status = models.OrderStatusCancelled
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// RefundOrder reverses a completed order within the refund window: status
// moves to refunded, enrollments are removed and counters decremented only
// where a row actually existed. No monetary reversal is modeled.
func RefundOrder(db *gorm.DB, userID, orderID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.UserID != userID {
			return ErrNotOrderOwner
		}
		if order.Status != models.OrderStatusCompleted {
			return ErrInvalidOrderState
		}
		if time.Since(order.CreatedAt) > RefundWindow {
			return ErrRefundWindowExpired
		}

		order.Status = models.OrderStatusRefunded
		for _, item := range order.OrderItems {
			if err := unenrollTx(tx, userID, item.CourseID); err != nil {
				return err
			}
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
