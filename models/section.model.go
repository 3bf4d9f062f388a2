package models

import "gorm.io/gorm"

type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Position    int    `json:"position" gorm:"default:0"`

	Lectures []Lecture `json:"lectures,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}
