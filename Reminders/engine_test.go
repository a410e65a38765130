package Reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, date("2024-01-16"), DueDate(date("2024-01-01"), 15))
	assert.Equal(t, date("2024-01-01"), DueDate(date("2024-01-01"), 0))
	// Month and year boundaries are plain calendar arithmetic
	assert.Equal(t, date("2024-03-01"), DueDate(date("2024-02-20"), 10))
	assert.Equal(t, date("2025-01-04"), DueDate(date("2024-12-20"), 15))
}

func TestPending(t *testing.T) {
	assert.Equal(t, 1000.0, Pending(1000, 0, nil))
	assert.Equal(t, 700.0, Pending(1000, 100, []float64{150, 50}))
	assert.Equal(t, 0.0, Pending(1000, 0, []float64{1000}))
	// Overpayment is not clamped here; classification treats <= 0 as paid
	assert.Equal(t, -50.0, Pending(1000, 50, []float64{1000}))
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 6, DaysRemaining(date("2024-01-16"), date("2024-01-10")))
	assert.Equal(t, 0, DaysRemaining(date("2024-01-11"), date("2024-01-11")))
	assert.Equal(t, -4, DaysRemaining(date("2024-01-16"), date("2024-01-20")))
}

func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	due := date("2024-01-11")
	lateEvening := time.Date(2024, 1, 11, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysRemaining(due, lateEvening))

	earlyMorning := time.Date(2024, 1, 10, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysRemaining(due, earlyMorning))
}

func TestClassifyDecisionTable(t *testing.T) {
	tests := []struct {
		name    string
		pending float64
		dueDate time.Time
		today   time.Time
		window  int
		want    Status
	}{
		{"due in six days within window", 1000, date("2024-01-16"), date("2024-01-10"), 7, StatusDueSoon},
		{"four days past due", 1000, date("2024-01-16"), date("2024-01-20"), 7, StatusOverdue},
		{"settled in full", 0, date("2024-01-16"), date("2024-01-20"), 7, StatusPaid},
		{"due today", 1000, date("2024-01-11"), date("2024-01-11"), 7, StatusDueToday},
		{"due beyond window", 1000, date("2024-02-01"), date("2024-01-10"), 7, StatusPending},
		{"due exactly at window edge", 1000, date("2024-01-17"), date("2024-01-10"), 7, StatusDueSoon},
		{"due one day past window edge", 1000, date("2024-01-18"), date("2024-01-10"), 7, StatusPending},
		// Paid wins even when long past due
		{"paid and overdue", -50, date("2023-06-01"), date("2024-01-10"), 7, StatusPaid},
		// Window of zero empties the DueSoon bucket but keeps DueToday
		{"window zero, due tomorrow", 1000, date("2024-01-11"), date("2024-01-10"), 0, StatusPending},
		{"window zero, due today", 1000, date("2024-01-10"), date("2024-01-10"), 0, StatusDueToday},
		// Negative window treated as zero
		{"negative window", 1000, date("2024-01-11"), date("2024-01-10"), -3, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.pending, tt.dueDate, tt.today, tt.window))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify(1000, date("2024-01-16"), date("2024-01-10"), 7)
	second := Classify(1000, date("2024-01-16"), date("2024-01-10"), 7)
	assert.Equal(t, first, second)
}

func TestEvaluateScenario(t *testing.T) {
	// bill 1000, no advance, 15 credit days from 2024-01-01
	facts := PurchaseFacts{
		PurchaseID: 1,
		VendorID:   1,
		BillDate:   date("2024-01-01"),
		CreditDays: 15,
		BillAmount: 1000,
	}

	entry := Evaluate(facts, date("2024-01-10"), 7)
	assert.Equal(t, date("2024-01-16"), entry.DueDate)
	assert.Equal(t, 6, entry.DaysRemaining)
	assert.Equal(t, 1000.0, entry.PendingAmount)
	assert.Equal(t, StatusDueSoon, entry.Status)

	entry = Evaluate(facts, date("2024-01-20"), 7)
	assert.Equal(t, -4, entry.DaysRemaining)
	assert.Equal(t, StatusOverdue, entry.Status)

	// After a payment of 1000 the status is Paid independent of today
	facts.PaymentsPaid = 1000
	entry = Evaluate(facts, date("2024-01-20"), 7)
	assert.Equal(t, 0.0, entry.PendingAmount)
	assert.Equal(t, StatusPaid, entry.Status)
	entry = Evaluate(facts, date("2030-06-01"), 7)
	assert.Equal(t, StatusPaid, entry.Status)
}
