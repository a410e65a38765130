package Models

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Name              string     `json:"name" gorm:"not null;uniqueIndex"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	DefaultCreditDays int        `json:"default_credit_days" gorm:"not null;default:30"`
	Purchases         []Purchase `json:"purchases,omitempty" gorm:"foreignKey:VendorID"`
}

// VendorRequest is the payload for creating or updating a vendor.
type VendorRequest struct {
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone"`
	Email             string `json:"email" validate:"omitempty,email"`
	Address           string `json:"address"`
	DefaultCreditDays int    `json:"default_credit_days" validate:"gte=0"`
}
