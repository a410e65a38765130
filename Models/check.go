package Models

import (
	"time"

	"gorm.io/gorm"
)

// CheckStatus tracks a cheque through its clearing lifecycle.
type CheckStatus string

const (
	CheckPending   CheckStatus = "Pending"
	CheckCleared   CheckStatus = "Cleared"
	CheckBounced   CheckStatus = "Bounced"
	CheckCancelled CheckStatus = "Cancelled"
)

// ValidCheckStatus reports whether s is one of the closed set.
func ValidCheckStatus(s CheckStatus) bool {
	switch s {
	case CheckPending, CheckCleared, CheckBounced, CheckCancelled:
		return true
	}
	return false
}

// CheckIssuance records a cheque handed to a vendor, independent of any
// single purchase.
type CheckIssuance struct {
	gorm.Model
	VendorID    uint        `json:"vendor_id" gorm:"not null;index"`
	CheckNumber string      `json:"check_number" gorm:"size:64;not null"`
	CheckDate   time.Time   `json:"check_date" gorm:"not null"`
	Remarks     string      `json:"remarks" gorm:"type:text"`
	Status      CheckStatus `json:"status" gorm:"size:16;not null;default:'Pending'"`

	Vendor Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// CheckIssuanceRequest is the payload for issuing a cheque.
type CheckIssuanceRequest struct {
	VendorID    uint   `json:"vendor_id" validate:"required"`
	CheckNumber string `json:"check_number" validate:"required"`
	CheckDate   string `json:"check_date" validate:"required"`
	Remarks     string `json:"remarks"`
	Status      string `json:"status"`
}
