package Models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is the instrument a payment was made with.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCheque       PaymentMethod = "Cheque"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodUPI          PaymentMethod = "UPI"
)

// ValidPaymentMethod reports whether m is one of the closed set.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCheque, MethodBankTransfer, MethodUPI:
		return true
	}
	return false
}

// Payment is one settlement against a purchase. The payments table is the
// ledger the pending amount is derived from.
type Payment struct {
	gorm.Model
	PurchaseID  uint          `json:"purchase_id" gorm:"not null;index"`
	Amount      float64       `json:"amount" gorm:"not null"`
	Method      PaymentMethod `json:"method" gorm:"size:16;not null;default:'Cash'"`
	PaymentDate time.Time     `json:"payment_date" gorm:"not null"`
	Note        string        `json:"note" gorm:"type:text"`

	Purchase Purchase `json:"purchase,omitempty" gorm:"foreignKey:PurchaseID"`
}

// PaymentRequest is the payload for recording or editing a payment.
type PaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Method      string  `json:"method"`
	PaymentDate string  `json:"payment_date"`
	Note        string  `json:"note"`
}
