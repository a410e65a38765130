package Reminders

import (
	"sort"
	"time"
)

// PurchaseFacts is the slice of a purchase the engine needs. Callers map
// their storage rows into this; the engine never touches the database.
type PurchaseFacts struct {
	PurchaseID   uint      `json:"purchase_id"`
	VendorID     uint      `json:"vendor_id"`
	VendorName   string    `json:"vendor_name"`
	VendorPhone  string    `json:"vendor_phone"`
	BillNo       string    `json:"bill_no"`
	BillDate     time.Time `json:"bill_date"`
	CreditDays   int       `json:"credit_days"`
	BillAmount   float64   `json:"bill_amount"`
	AdvancePaid  float64   `json:"advance_paid"`
	PaymentsPaid float64   `json:"payments_paid"`
}

// Entry is a classified purchase inside a report bucket.
type Entry struct {
	PurchaseFacts
	DueDate       time.Time `json:"due_date"`
	DaysRemaining int       `json:"days_remaining"`
	PendingAmount float64   `json:"pending_amount"`
	Status        Status    `json:"status"`
}

// VendorSummary totals the outstanding amount a single vendor is owed.
type VendorSummary struct {
	VendorID    uint    `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	VendorPhone string  `json:"vendor_phone"`
	Count       int     `json:"count"`
	Outstanding float64 `json:"outstanding"`
}

// Report is the full reminder aggregation for a set of purchases on a given
// day. Bucket totals sum pending amounts, except Paid which sums bill
// amounts (a settled bill has no pending amount worth reporting).
type Report struct {
	GeneratedFor time.Time `json:"generated_for"`
	WindowDays   int       `json:"window_days"`

	Overdue  []Entry `json:"overdue"`
	DueToday []Entry `json:"due_today"`
	DueSoon  []Entry `json:"due_soon"`
	Pending  []Entry `json:"pending"`
	Paid     []Entry `json:"paid"`

	OverdueTotal  float64 `json:"overdue_total"`
	DueTodayTotal float64 `json:"due_today_total"`
	DueSoonTotal  float64 `json:"due_soon_total"`
	PendingTotal  float64 `json:"pending_total"`
	PaidTotal     float64 `json:"paid_total"`

	Vendors []VendorSummary `json:"vendors"`
}

// Evaluate derives the due date, pending amount and status for one purchase.
func Evaluate(p PurchaseFacts, today time.Time, windowDays int) Entry {
	due := DueDate(p.BillDate, p.CreditDays)
	pending := Pending(p.BillAmount, p.AdvancePaid, []float64{p.PaymentsPaid})
	return Entry{
		PurchaseFacts: p,
		DueDate:       due,
		DaysRemaining: DaysRemaining(due, today),
		PendingAmount: pending,
		Status:        Classify(pending, due, today, windowDays),
	}
}

// BuildReport classifies every purchase and aggregates the reminder buckets
// plus per-vendor outstanding subtotals. Pure function of its inputs.
func BuildReport(purchases []PurchaseFacts, today time.Time, windowDays int) Report {
	report := Report{
		GeneratedFor: truncateToDay(today),
		WindowDays:   windowDays,
	}
	if report.WindowDays < 0 {
		report.WindowDays = 0
	}

	byVendor := make(map[uint]*VendorSummary)

	for _, p := range purchases {
		entry := Evaluate(p, today, windowDays)

		switch entry.Status {
		case StatusPaid:
			report.Paid = append(report.Paid, entry)
			report.PaidTotal += entry.BillAmount
		case StatusOverdue:
			report.Overdue = append(report.Overdue, entry)
			report.OverdueTotal += entry.PendingAmount
		case StatusDueToday:
			report.DueToday = append(report.DueToday, entry)
			report.DueTodayTotal += entry.PendingAmount
		case StatusDueSoon:
			report.DueSoon = append(report.DueSoon, entry)
			report.DueSoonTotal += entry.PendingAmount
		case StatusPending:
			report.Pending = append(report.Pending, entry)
			report.PendingTotal += entry.PendingAmount
		}

		if entry.Status == StatusPaid {
			continue
		}
		summary, ok := byVendor[p.VendorID]
		if !ok {
			summary = &VendorSummary{
				VendorID:    p.VendorID,
				VendorName:  p.VendorName,
				VendorPhone: p.VendorPhone,
			}
			byVendor[p.VendorID] = summary
		}
		summary.Count++
		summary.Outstanding += entry.PendingAmount
	}

	for _, summary := range byVendor {
		report.Vendors = append(report.Vendors, *summary)
	}
	sort.Slice(report.Vendors, func(i, j int) bool {
		if report.Vendors[i].Outstanding != report.Vendors[j].Outstanding {
			return report.Vendors[i].Outstanding > report.Vendors[j].Outstanding
		}
		return report.Vendors[i].VendorName < report.Vendors[j].VendorName
	})

	return report
}
