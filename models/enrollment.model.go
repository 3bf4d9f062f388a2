package models

import "time"

// Enrollment is the single source of truth for course entitlement.
// Course.EnrolledCount is a derived counter maintained alongside it.
// No soft delete: a refunded enrollment must free its slot in
// idx_enrollment_user_course so the course can be purchased again.
type Enrollment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	EnrolledAt time.Time `json:"enrolled_at"`

	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
