package Reminders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePurchases() []PurchaseFacts {
	return []PurchaseFacts{
		// Overdue: due 2024-01-05, pending 500
		{PurchaseID: 1, VendorID: 1, VendorName: "Hillside Herbs", VendorPhone: "111", BillNo: "A-1",
			BillDate: date("2023-12-26"), CreditDays: 10, BillAmount: 500},
		// Due today: due 2024-01-10, pending 250
		{PurchaseID: 2, VendorID: 1, VendorName: "Hillside Herbs", VendorPhone: "111", BillNo: "A-2",
			BillDate: date("2024-01-01"), CreditDays: 9, BillAmount: 300, AdvancePaid: 50},
		// Due soon: due 2024-01-14, pending 900
		{PurchaseID: 3, VendorID: 2, VendorName: "Meadow Botanicals", VendorPhone: "222", BillNo: "B-1",
			BillDate: date("2024-01-04"), CreditDays: 10, BillAmount: 1000, PaymentsPaid: 100},
		// Pending: due 2024-02-09, pending 1200
		{PurchaseID: 4, VendorID: 2, VendorName: "Meadow Botanicals", VendorPhone: "222", BillNo: "B-2",
			BillDate: date("2024-01-10"), CreditDays: 30, BillAmount: 1200},
		// Paid, even though long past due
		{PurchaseID: 5, VendorID: 3, VendorName: "Root & Stem", VendorPhone: "333", BillNo: "C-1",
			BillDate: date("2023-11-01"), CreditDays: 15, BillAmount: 800, AdvancePaid: 200, PaymentsPaid: 600},
	}
}

func TestBuildReportBuckets(t *testing.T) {
	report := BuildReport(samplePurchases(), date("2024-01-10"), 7)

	require.Len(t, report.Overdue, 1)
	require.Len(t, report.DueToday, 1)
	require.Len(t, report.DueSoon, 1)
	require.Len(t, report.Pending, 1)
	require.Len(t, report.Paid, 1)

	assert.Equal(t, 500.0, report.OverdueTotal)
	assert.Equal(t, 250.0, report.DueTodayTotal)
	assert.Equal(t, 900.0, report.DueSoonTotal)
	assert.Equal(t, 1200.0, report.PendingTotal)
	// Paid bucket totals bill amounts, not pending
	assert.Equal(t, 800.0, report.PaidTotal)

	assert.Equal(t, StatusOverdue, report.Overdue[0].Status)
	assert.Equal(t, uint(1), report.Overdue[0].PurchaseID)
	assert.Equal(t, StatusPaid, report.Paid[0].Status)
}

func TestBuildReportVendorSummary(t *testing.T) {
	report := BuildReport(samplePurchases(), date("2024-01-10"), 7)

	require.Len(t, report.Vendors, 2, "fully paid vendors are excluded")

	// Sorted by outstanding, largest first
	assert.Equal(t, "Meadow Botanicals", report.Vendors[0].VendorName)
	assert.Equal(t, 2100.0, report.Vendors[0].Outstanding)
	assert.Equal(t, 2, report.Vendors[0].Count)
	assert.Equal(t, "222", report.Vendors[0].VendorPhone)

	assert.Equal(t, "Hillside Herbs", report.Vendors[1].VendorName)
	assert.Equal(t, 750.0, report.Vendors[1].Outstanding)
}

func TestBuildReportWindowZero(t *testing.T) {
	report := BuildReport(samplePurchases(), date("2024-01-10"), 0)

	assert.Empty(t, report.DueSoon, "window zero leaves the due-soon bucket empty")
	assert.Len(t, report.DueToday, 1, "due-today is unaffected by the window")
	assert.Len(t, report.Pending, 2, "near-term bills fall back to pending")
}

func TestBuildReportDeterministic(t *testing.T) {
	first := BuildReport(samplePurchases(), date("2024-01-10"), 7)
	second := BuildReport(samplePurchases(), date("2024-01-10"), 7)
	assert.Equal(t, first, second)
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, date("2024-01-10"), 7)
	assert.Zero(t, report.OverdueTotal)
	assert.Empty(t, report.Vendors)
}
