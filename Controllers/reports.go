package Controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Sage/Reminders"
)

// ReportController exports the reminder report for the shop's records
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportReminders writes the current reminder report as an Excel workbook.
// GET /api/reports/reminders.xlsx
func (c *ReportController) ExportReminders(ctx *fiber.Ctx) error {
	dashboard := NewDashboardController(c.DB)
	report, err := dashboard.buildReport(ctx.Query("payment_type", "all"), ctx.Query("days"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build reminder report"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Reminders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Status", "Vendor", "Bill No", "Bill Date", "Due Date", "Days Remaining", "Bill Amount", "Pending Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeBucket := func(entries []Reminders.Entry) {
		for _, e := range entries {
			values := []interface{}{
				string(e.Status),
				e.VendorName,
				e.BillNo,
				e.BillDate.Format("2006-01-02"),
				e.DueDate.Format("2006-01-02"),
				e.DaysRemaining,
				e.BillAmount,
				e.PendingAmount,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}
	writeBucket(report.Overdue)
	writeBucket(report.DueToday)
	writeBucket(report.DueSoon)
	writeBucket(report.Pending)
	writeBucket(report.Paid)

	// Vendor subtotals on a second sheet
	vendorSheet := "Vendor Summary"
	f.NewSheet(vendorSheet)
	for i, h := range []string{"Vendor", "Phone", "Open Bills", "Outstanding"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(vendorSheet, cell, h)
	}
	for i, v := range report.Vendors {
		values := []interface{}{v.VendorName, v.VendorPhone, v.Count, v.Outstanding}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(vendorSheet, cell, val)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report file"})
	}

	filename := fmt.Sprintf("reminders_%s.xlsx", report.GeneratedFor.Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}
