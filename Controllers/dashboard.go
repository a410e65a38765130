package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
	"Sage/Reminders"
)

// DashboardController serves the reminder dashboard
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// buildReport loads every purchase (optionally filtered by payment type)
// and runs the reminder engine over it with today's date.
func (c *DashboardController) buildReport(paymentType string, queryDays string) (Reminders.Report, error) {
	query := c.DB.Preload("Vendor").Order("due_date")
	if paymentType != "" && paymentType != "all" {
		query = query.Where("payment_type = ?", paymentType)
	}

	var purchases []Models.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		return Reminders.Report{}, err
	}

	facts := make([]Reminders.PurchaseFacts, 0, len(purchases))
	for i := range purchases {
		facts = append(facts, purchases[i].Facts(paymentsTotal(c.DB, purchases[i].ID)))
	}

	return Reminders.BuildReport(facts, time.Now(), reminderWindowDays(queryDays)), nil
}

// Dashboard renders the reminder dashboard page.
// GET /?days=7&payment_type=all
func (c *DashboardController) Dashboard(ctx *fiber.Ctx) error {
	paymentType := ctx.Query("payment_type", "all")
	report, err := c.buildReport(paymentType, ctx.Query("days"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build reminder report"})
	}

	return ctx.Render("dashboard", fiber.Map{
		"Report":      report,
		"PaymentType": paymentType,
		"Today":       report.GeneratedFor.Format("2006-01-02"),
	})
}

// APIDashboard returns the reminder report as JSON.
// GET /api/dashboard
func (c *DashboardController) APIDashboard(ctx *fiber.Ctx) error {
	report, err := c.buildReport(ctx.Query("payment_type", "all"), ctx.Query("days"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build reminder report"})
	}

	return ctx.JSON(report)
}

// VendorsPage renders the vendor management page.
func (c *DashboardController) VendorsPage(ctx *fiber.Ctx) error {
	var vendors []Models.Vendor
	if err := c.DB.Order("name").Find(&vendors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vendors"})
	}

	return ctx.Render("vendors", fiber.Map{"Vendors": vendors})
}

// PurchasesPage renders the purchase management page with derived fields.
func (c *DashboardController) PurchasesPage(ctx *fiber.Ctx) error {
	var purchases []Models.Purchase
	if err := c.DB.Preload("Vendor").Order("created_at DESC").Find(&purchases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchases"})
	}

	today := time.Now()
	window := reminderWindowDays(ctx.Query("days"))
	entries := make([]Reminders.Entry, 0, len(purchases))
	for i := range purchases {
		entries = append(entries, Reminders.Evaluate(
			purchases[i].Facts(paymentsTotal(c.DB, purchases[i].ID)), today, window))
	}

	var vendors []Models.Vendor
	c.DB.Order("name").Find(&vendors)

	return ctx.Render("purchases", fiber.Map{
		"Purchases": entries,
		"Vendors":   vendors,
	})
}
