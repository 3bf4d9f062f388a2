package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	Rating   int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment  string `json:"comment" gorm:"type:text;default:''"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
