package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod is an admin-configured payment channel, not a transaction record.
type PaymentMethod struct {
	gorm.Model
	MethodID    string         `json:"method_id" gorm:"unique;index;not null"` // e.g. 'upi', 'card'
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Settings    datatypes.JSON `json:"settings"` // e.g. {"upi_id": "merchant@upi"}
}
