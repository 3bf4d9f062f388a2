package models

import "time"

// CartItem is a plain join row. No soft delete: a removed row must free
// its slot in idx_cart_user_course so the course can be re-added.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_cart_user_course"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
