package models

import (
	"time"

	"gorm.io/gorm"
)

type DailyClass struct {
	gorm.Model
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Topic           string    `json:"topic"`
	Description     string    `json:"description" gorm:"type:text"`
	MeetLink        string    `json:"meet_link"`
	ScheduledDate   time.Time `json:"scheduled_date" gorm:"index"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:60"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
