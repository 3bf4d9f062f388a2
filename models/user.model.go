package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"index;default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-" gorm:"not null"`
	Avatar       string `json:"avatar" gorm:"default:''"`
	Bio          string `json:"bio" gorm:"type:text;default:''"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsInstructor bool   `json:"is_instructor" gorm:"default:false"`
	IsAdmin      bool   `json:"is_admin" gorm:"default:false"`
}
