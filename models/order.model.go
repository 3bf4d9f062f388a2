package models

import "gorm.io/gorm"

// Order statuses. Instant payment paths start at completed; manual UPI
// starts at pending_verification and moves through admin review.
const (
	OrderStatusPendingVerification = "pending_verification"
	OrderStatusCompleted           = "completed"
	OrderStatusCancelled           = "cancelled"
	OrderStatusRefunded            = "refunded"
)

// Payment method identifiers stored on the order
const (
	PaymentManualUPI  = "manual_upi"
	PaymentRazorpay   = "razorpay"
	PaymentCreditCard = "credit_card"
)

type Order struct {
	gorm.Model
	UserID        uint    `json:"user_id" gorm:"index;not null"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status" gorm:"index;default:'completed'"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"` // UTR for manual UPI payments
	PaymentProof  string  `json:"payment_proof"`  // URL of the uploaded proof screenshot

	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID  uint    `json:"order_id" gorm:"index;not null"`
	CourseID uint    `json:"course_id" gorm:"index;not null"`
	Price    float64 `json:"price"` // Price at time of purchase, never recomputed

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
