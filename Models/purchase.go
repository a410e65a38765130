package Models

import (
	"time"

	"gorm.io/gorm"

	"Sage/Reminders"
)

// PaymentType records how a purchase was agreed to be settled.
type PaymentType string

const (
	PaymentTypeCredit  PaymentType = "Credit"
	PaymentTypeAdvance PaymentType = "Advance"
	PaymentTypeCash    PaymentType = "Cash"
)

// ValidPaymentType reports whether t is one of the closed set.
func ValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentTypeCredit, PaymentTypeAdvance, PaymentTypeCash:
		return true
	}
	return false
}

// Purchase is a vendor bill bought on credit. DueDate, PendingAmount and
// Status are derived caches: the Reminders engine over the payments ledger
// is the truth, the columns are refreshed on every payment write and by the
// nightly job so ad-hoc SQL stays usable.
type Purchase struct {
	gorm.Model
	VendorID    uint        `json:"vendor_id" gorm:"not null;index"`
	BillNo      string      `json:"bill_no" gorm:"size:64;not null;index"`
	BillDate    time.Time   `json:"bill_date" gorm:"not null"`
	CreditDays  int         `json:"credit_days" gorm:"not null"`
	BillAmount  float64     `json:"bill_amount" gorm:"not null"`
	AdvancePaid float64     `json:"advance_paid" gorm:"not null;default:0"`
	PaymentType PaymentType `json:"payment_type" gorm:"size:16;not null;default:'Credit'"`

	DueDate       time.Time        `json:"due_date" gorm:"not null;index"`
	PendingAmount float64          `json:"pending_amount" gorm:"not null"`
	Status        Reminders.Status `json:"status" gorm:"size:16;not null;index"`

	Vendor   Vendor    `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:PurchaseID"`
}

// PurchaseRequest is the payload for recording a purchase. CreditDays may be
// omitted, in which case the vendor's default applies.
type PurchaseRequest struct {
	VendorID    uint    `json:"vendor_id" validate:"required"`
	BillNo      string  `json:"bill_no" validate:"required"`
	BillDate    string  `json:"bill_date" validate:"required"`
	CreditDays  *int    `json:"credit_days" validate:"omitempty,gte=0"`
	BillAmount  float64 `json:"bill_amount" validate:"gte=0"`
	AdvancePaid float64 `json:"advance_paid" validate:"gte=0"`
	PaymentType string  `json:"payment_type"`
}

// Facts maps a purchase row (with payments loaded or paymentsPaid summed
// separately) into the engine's input shape.
func (p *Purchase) Facts(paymentsPaid float64) Reminders.PurchaseFacts {
	return Reminders.PurchaseFacts{
		PurchaseID:   p.ID,
		VendorID:     p.VendorID,
		VendorName:   p.Vendor.Name,
		VendorPhone:  p.Vendor.Phone,
		BillNo:       p.BillNo,
		BillDate:     p.BillDate,
		CreditDays:   p.CreditDays,
		BillAmount:   p.BillAmount,
		AdvancePaid:  p.AdvancePaid,
		PaymentsPaid: paymentsPaid,
	}
}
