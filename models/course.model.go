package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title            string    `json:"title" gorm:"index;not null"`
	Slug             string    `json:"slug" gorm:"unique;index;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	ShortDescription string    `json:"short_description"`
	Thumbnail        string    `json:"thumbnail"`
	PreviewVideo     string    `json:"preview_video"`
	Price            float64   `json:"price" gorm:"not null"`
	OriginalPrice    float64   `json:"original_price"`
	Rating           float64   `json:"rating" gorm:"default:0"`
	ReviewCount      int       `json:"review_count" gorm:"default:0"`
	EnrolledCount    int       `json:"enrolled_count" gorm:"default:0"`
	Duration         string    `json:"duration"`
	LectureCount     int       `json:"lecture_count" gorm:"default:0"`
	Level            string    `json:"level"` // Beginner, Intermediate, Advanced
	Category         string    `json:"category" gorm:"index"`
	Language         string    `json:"language" gorm:"default:'English'"`
	Certificate      bool      `json:"certificate" gorm:"default:true"`
	IsBestseller     bool      `json:"is_bestseller" gorm:"default:false"`
	IsTrending       bool      `json:"is_trending" gorm:"default:false"`
	IsNew            bool      `json:"is_new" gorm:"default:false"`
	LastUpdated      time.Time `json:"last_updated"`
	InstructorID     uint      `json:"instructor_id" gorm:"index"`

	Instructor User      `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Sections   []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
