package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
)

// AnalyticsController handles analytics-related API endpoints
type AnalyticsController struct {
	DB *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// PurchaseSummary is the overall financial picture of the ledger.
type PurchaseSummary struct {
	VendorCount   int64   `json:"vendor_count"`
	PurchaseCount int64   `json:"purchase_count"`
	TotalBilled   float64 `json:"total_billed"`
	TotalSettled  float64 `json:"total_settled"`
	Outstanding   float64 `json:"outstanding"`
}

// Summary returns overall financial summary
func (c *AnalyticsController) Summary(ctx *fiber.Ctx) error {
	var summary PurchaseSummary

	c.DB.Model(&Models.Vendor{}).Count(&summary.VendorCount)
	c.DB.Model(&Models.Purchase{}).Count(&summary.PurchaseCount)

	c.DB.Model(&Models.Purchase{}).Select("COALESCE(SUM(bill_amount), 0)").Scan(&summary.TotalBilled)

	var advances, payments float64
	c.DB.Model(&Models.Purchase{}).Select("COALESCE(SUM(advance_paid), 0)").Scan(&advances)
	c.DB.Model(&Models.Payment{}).Select("COALESCE(SUM(amount), 0)").Scan(&payments)
	summary.TotalSettled = advances + payments
	summary.Outstanding = summary.TotalBilled - summary.TotalSettled

	return ctx.JSON(summary)
}

// MonthlyActivity returns purchases and payments summed by month
func (c *AnalyticsController) MonthlyActivity(ctx *fiber.Ctx) error {
	type MonthlyData struct {
		Month     string  `json:"month"`
		Purchased float64 `json:"purchased"`
		Settled   float64 `json:"settled"`
		Net       float64 `json:"net"`
	}

	endDate := time.Now()
	startDate := endDate.AddDate(-1, 0, 0)

	// Query the raw rows and group in Go rather than fighting sqlite's date
	// formatting in SQL.
	var purchases []Models.Purchase
	if err := c.DB.Where("bill_date BETWEEN ? AND ?", startDate, endDate).Find(&purchases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchases"})
	}
	var payments []Models.Payment
	if err := c.DB.Where("payment_date BETWEEN ? AND ?", startDate, endDate).Find(&payments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payments"})
	}

	monthly := make(map[string]*MonthlyData)
	for i := 0; i < 12; i++ {
		date := endDate.AddDate(0, -i, 0)
		monthly[date.Format("2006-01")] = &MonthlyData{Month: date.Format("Jan 2006")}
	}

	for _, p := range purchases {
		if data, exists := monthly[p.BillDate.Format("2006-01")]; exists {
			data.Purchased += p.BillAmount
			data.Settled += p.AdvancePaid
		}
	}
	for _, p := range payments {
		if data, exists := monthly[p.PaymentDate.Format("2006-01")]; exists {
			data.Settled += p.Amount
		}
	}

	// Emit in chronological order.
	response := make([]MonthlyData, 0, 12)
	for i := 11; i >= 0; i-- {
		date := endDate.AddDate(0, -i, 0)
		if data, exists := monthly[date.Format("2006-01")]; exists {
			data.Net = data.Purchased - data.Settled
			response = append(response, *data)
		}
	}

	return ctx.JSON(response)
}

// TopVendors returns the vendors with the largest outstanding balance
func (c *AnalyticsController) TopVendors(ctx *fiber.Ctx) error {
	type VendorOutstanding struct {
		ID            uint    `json:"id"`
		Name          string  `json:"name"`
		PurchaseCount int     `json:"purchase_count"`
		TotalBilled   float64 `json:"total_billed"`
		Outstanding   float64 `json:"outstanding"`
	}

	var results []VendorOutstanding

	c.DB.Raw(`
		SELECT
			v.id,
			v.name,
			COUNT(p.id) as purchase_count,
			COALESCE(SUM(p.bill_amount), 0) as total_billed,
			COALESCE(SUM(CASE WHEN p.pending_amount > 0 THEN p.pending_amount ELSE 0 END), 0) as outstanding
		FROM vendors v
		JOIN purchases p ON p.vendor_id = v.id
		WHERE v.deleted_at IS NULL
		AND p.deleted_at IS NULL
		GROUP BY v.id, v.name
		ORDER BY outstanding DESC
		LIMIT 5
	`).Scan(&results)

	return ctx.JSON(results)
}

// RecentActivity returns the most recent payments with their vendor
func (c *AnalyticsController) RecentActivity(ctx *fiber.Ctx) error {
	type RecentPayment struct {
		ID          uint      `json:"id"`
		PaymentDate time.Time `json:"payment_date"`
		VendorName  string    `json:"vendor_name"`
		BillNo      string    `json:"bill_no"`
		Amount      float64   `json:"amount"`
		Method      string    `json:"method"`
	}

	var results []RecentPayment

	c.DB.Raw(`
		SELECT
			pay.id,
			pay.payment_date,
			v.name as vendor_name,
			p.bill_no,
			pay.amount,
			pay.method
		FROM payments pay
		JOIN purchases p ON pay.purchase_id = p.id
		JOIN vendors v ON p.vendor_id = v.id
		WHERE pay.deleted_at IS NULL
		AND p.deleted_at IS NULL
		ORDER BY pay.payment_date DESC, pay.id DESC
		LIMIT 10
	`).Scan(&results)

	return ctx.JSON(results)
}
