package Reminders

import (
	"time"
)

// Status is the reminder classification of a purchase. The set is closed;
// Classify is the only producer.
type Status string

const (
	StatusPaid     Status = "Paid"
	StatusOverdue  Status = "Overdue"
	StatusDueToday Status = "Due Today"
	StatusDueSoon  Status = "Due Soon"
	StatusPending  Status = "Pending"
)

// DefaultWindowDays is the reminder window used when nothing is configured.
const DefaultWindowDays = 7

// DueDate shifts the bill date forward by the credit days. Calendar-day
// arithmetic, no business-day exclusions.
func DueDate(billDate time.Time, creditDays int) time.Time {
	return billDate.AddDate(0, 0, creditDays)
}

// Pending returns the amount still owed on a purchase. Not clamped: a value
// of zero or below means fully paid.
func Pending(billAmount, advancePaid float64, payments []float64) float64 {
	pending := billAmount - advancePaid
	for _, p := range payments {
		pending -= p
	}
	return pending
}

// DaysRemaining returns whole calendar days from today until the due date,
// negative once the due date has passed. Time-of-day is ignored on both
// sides so a purchase due "today" stays due today until midnight.
func DaysRemaining(dueDate, today time.Time) int {
	due := truncateToDay(dueDate)
	now := truncateToDay(today)
	return int(due.Sub(now).Hours() / 24)
}

// Classify applies the status decision table. The rules are ordered: a paid
// purchase is Paid no matter how far past due it is.
func Classify(pending float64, dueDate, today time.Time, windowDays int) Status {
	if windowDays < 0 {
		windowDays = 0
	}
	days := DaysRemaining(dueDate, today)
	switch {
	case pending <= 0:
		return StatusPaid
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	case days <= windowDays:
		return StatusDueSoon
	default:
		return StatusPending
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
