package models

import "time"

// Wishlist is an explicit join row so membership checks stay indexed lookups.
// No soft delete: a removed row must free its slot in idx_wishlist_user_course
// so the course can be wishlisted again.
type Wishlist struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wishlist_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_wishlist_user_course"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
