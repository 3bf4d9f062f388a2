package orderController

import (
	"codemaster/database"
	"codemaster/models"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, title string, price float64) models.Course {
	t.Helper()
	course := models.Course{
		Title: title,
		Slug:  fmt.Sprintf("%s-%d", title, time.Now().UnixNano()),
		Price: price,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func addToCart(t *testing.T, db *gorm.DB, userID, courseID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.CartItem{UserID: userID, CourseID: courseID}).Error)
}

func enrolledCount(t *testing.T, db *gorm.DB, courseID uint) int {
	t.Helper()
	var course models.Course
	require.NoError(t, db.First(&course, courseID).Error)
	return course.EnrolledCount
}

func TestCouponDiscount(t *testing.T) {
	assert.Equal(t, 12.0, CouponDiscount(60, "SAVE20"))
	assert.Equal(t, 6.0, CouponDiscount(60, "save10"))
	assert.Equal(t, 9.0, CouponDiscount(60, "  welcome "))
	assert.Equal(t, 30.0, CouponDiscount(60, "STUDENT50"))
	assert.Equal(t, 0.0, CouponDiscount(60, "BOGUS"))
	assert.Equal(t, 0.0, CouponDiscount(60, ""))
}

func TestCheckoutCartEmpty(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "empty@test.com")

	_, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "buyer@test.com")
	golang := seedCourse(t, db, "go-basics", 40)
	docker := seedCourse(t, db, "docker-basics", 20)
	addToCart(t, db, user.ID, golang.ID)
	addToCart(t, db, user.ID, docker.ID)

	order, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "SAVE20")
	require.NoError(t, err)

	// 60 subtotal, 20% off
	assert.Equal(t, 48.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	assert.Len(t, items, 2)

	enrolled, err := IsEnrolled(db, user.ID, golang.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
	assert.Equal(t, 1, enrolledCount(t, db, golang.ID))
	assert.Equal(t, 1, enrolledCount(t, db, docker.ID))

	var cartLeft int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartLeft).Error)
	assert.Zero(t, cartLeft)
}

func TestCheckoutCartSkipsEnrolledCourses(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "repeat@test.com")
	owned := seedCourse(t, db, "owned", 100)
	fresh := seedCourse(t, db, "fresh", 25)
	addToCart(t, db, user.ID, owned.ID)
	addToCart(t, db, user.ID, fresh.ID)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return enrollTx(tx, user.ID, owned.ID)
	}))

	order, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	// Only the fresh course is charged; the owned one is dropped
	assert.Equal(t, 25.0, order.TotalPrice)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].CourseID)

	// The dropped row is still removed from the cart
	var cartLeft int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartLeft).Error)
	assert.Zero(t, cartLeft)

	// Counter untouched for the course that was already owned
	assert.Equal(t, 1, enrolledCount(t, db, owned.ID))
}

func TestCheckoutCartAllEnrolled(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "allowned@test.com")
	course := seedCourse(t, db, "only", 10)
	addToCart(t, db, user.ID, course.ID)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return enrollTx(tx, user.ID, course.ID)
	}))

	_, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestEnrollIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "idem@test.com")
	course := seedCourse(t, db, "idem-course", 10)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return enrollTx(tx, user.ID, course.ID)
		}))
	}

	var rows int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.Equal(t, 1, enrolledCount(t, db, course.ID))
}

func TestCheckoutCoursesUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "unknown@test.com")
	course := seedCourse(t, db, "known", 10)

	_, err := CheckoutCourses(db, user.ID, []uint{course.ID, 9999}, models.PaymentCreditCard)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// The failed order must not have granted anything
	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestCheckoutCoursesAllEnrolled(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "owned2@test.com")
	course := seedCourse(t, db, "owned2", 10)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return enrollTx(tx, user.ID, course.ID)
	}))

	_, err := CheckoutCourses(db, user.ID, []uint{course.ID}, models.PaymentCreditCard)
	assert.ErrorIs(t, err, ErrAllAlreadyEnrolled)
}

func TestSubmitManualPaymentDoesNotEnroll(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "upi@test.com")
	course := seedCourse(t, db, "upi-course", 99)
	addToCart(t, db, user.ID, course.ID)

	order, err := SubmitManualPayment(db, user.ID, "UTR1234567890", "/payment_proofs/proof.png")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPendingVerification, order.Status)
	assert.Equal(t, models.PaymentManualUPI, order.PaymentMethod)
	assert.Equal(t, "UTR1234567890", order.TransactionID)
	assert.Equal(t, 99.0, order.TotalPrice)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
	assert.Equal(t, 0, enrolledCount(t, db, course.ID))

	var cartLeft int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartLeft).Error)
	assert.Zero(t, cartLeft)
}

func TestDecideOrderApprove(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "approve@test.com")
	course := seedCourse(t, db, "approve-course", 50)
	addToCart(t, db, user.ID, course.ID)

	pending, err := SubmitManualPayment(db, user.ID, "UTR1", "/p/1.png")
	require.NoError(t, err)

	decided, err := DecideOrder(db, pending.ID, "approve")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, decided.Status)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
	assert.Equal(t, 1, enrolledCount(t, db, course.ID))

	// A decision is final
	_, err = DecideOrder(db, pending.ID, "approve")
	assert.ErrorIs(t, err, ErrInvalidOrderState)
}

func TestDecideOrderReject(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reject@test.com")
	course := seedCourse(t, db, "reject-course", 50)
	addToCart(t, db, user.ID, course.ID)

	pending, err := SubmitManualPayment(db, user.ID, "UTR2", "/p/2.png")
	require.NoError(t, err)

	decided, err := DecideOrder(db, pending.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, decided.Status)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
	assert.Equal(t, 0, enrolledCount(t, db, course.ID))
}

func TestDecideOrderInvalidAction(t *testing.T) {
	db := newTestDB(t)

	_, err := DecideOrder(db, 1, "maybe")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestDecideOrderNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := DecideOrder(db, 404, "approve")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRefundOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "refund@test.com")
	course := seedCourse(t, db, "refund-course", 80)
	addToCart(t, db, user.ID, course.ID)

	order, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	refunded, err := RefundOrder(db, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRefunded, refunded.Status)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
	assert.Equal(t, 0, enrolledCount(t, db, course.ID))
}

func TestRefundOrderNotOwner(t *testing.T) {
	db := newTestDB(t)
	buyer := seedUser(t, db, "owner@test.com")
	other := seedUser(t, db, "other@test.com")
	course := seedCourse(t, db, "owner-course", 80)
	addToCart(t, db, buyer.ID, course.ID)

	order, err := CheckoutCart(db, buyer.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	_, err = RefundOrder(db, other.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotOrderOwner)
}

func TestRefundOrderWindowExpired(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "late@test.com")
	course := seedCourse(t, db, "late-course", 80)
	addToCart(t, db, user.ID, course.ID)

	order, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	// Backdate the purchase past the window
	backdated := time.Now().Add(-31 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumn("created_at", backdated).Error)

	_, err = RefundOrder(db, user.ID, order.ID)
	assert.ErrorIs(t, err, ErrRefundWindowExpired)

	// Entitlement is untouched when the refund is rejected
	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestRefundOrderWrongState(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pending@test.com")
	course := seedCourse(t, db, "pending-course", 80)
	addToCart(t, db, user.ID, course.ID)

	pending, err := SubmitManualPayment(db, user.ID, "UTR3", "/p/3.png")
	require.NoError(t, err)

	_, err = RefundOrder(db, user.ID, pending.ID)
	assert.ErrorIs(t, err, ErrInvalidOrderState)
}

func TestUnenrollCounterFloor(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "floor@test.com")
	course := seedCourse(t, db, "floor-course", 10)

	// Removing a non-existent enrollment must not move the counter
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return unenrollTx(tx, user.ID, course.ID)
	}))
	assert.Equal(t, 0, enrolledCount(t, db, course.ID))
}

func TestRepurchaseAfterRefund(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "rebuy@test.com")
	course := seedCourse(t, db, "rebuy-course", 45)

	first, err := CheckoutCourses(db, user.ID, []uint{course.ID}, models.PaymentCreditCard)
	require.NoError(t, err)

	_, err = RefundOrder(db, user.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, enrolledCount(t, db, course.ID))

	// A refunded course can be bought again
	second, err := CheckoutCourses(db, user.ID, []uint{course.ID}, models.PaymentCreditCard)
	require.NoError(t, err)
	assert.Equal(t, 45.0, second.TotalPrice)

	enrolled, err := IsEnrolled(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
	assert.Equal(t, 1, enrolledCount(t, db, course.ID))
}

func TestCartReusableAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "recart@test.com")
	course := seedCourse(t, db, "recart-course", 30)
	addToCart(t, db, user.ID, course.ID)

	first, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	_, err = RefundOrder(db, user.ID, first.ID)
	require.NoError(t, err)

	// The cleared cart slot is free again for the same course
	addToCart(t, db, user.ID, course.ID)

	second, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)
	assert.Equal(t, 30.0, second.TotalPrice)
}

func TestCartReusableAfterManualPayment(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reupi@test.com")
	course := seedCourse(t, db, "reupi-course", 30)
	addToCart(t, db, user.ID, course.ID)

	pending, err := SubmitManualPayment(db, user.ID, "UTR-A", "/p/a.png")
	require.NoError(t, err)

	_, err = DecideOrder(db, pending.ID, "reject")
	require.NoError(t, err)

	// After a rejected manual order the course can be carted again
	addToCart(t, db, user.ID, course.ID)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRefundOrderWithinWindow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "edge@test.com")
	course := seedCourse(t, db, "edge-course", 80)
	addToCart(t, db, user.ID, course.ID)

	order, err := CheckoutCart(db, user.ID, models.PaymentCreditCard, "")
	require.NoError(t, err)

	// 29 days old is still inside the window
	backdated := time.Now().Add(-29 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumn("created_at", backdated).Error)

	refunded, err := RefundOrder(db, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRefunded, refunded.Status)
}
