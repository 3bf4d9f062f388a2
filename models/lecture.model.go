package models

import "gorm.io/gorm"

type Lecture struct {
	gorm.Model
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	Duration    string `json:"duration"`
	Position    int    `json:"position" gorm:"default:0"`
	IsPreview   bool   `json:"is_preview" gorm:"default:false"`
}
