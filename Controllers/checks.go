package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
)

// CheckController handles cheque issuance endpoints
type CheckController struct {
	DB *gorm.DB
}

// NewCheckController creates a new CheckController
func NewCheckController(db *gorm.DB) *CheckController {
	return &CheckController{DB: db}
}

// GetChecks retrieves all issued cheques with their vendor, newest first
func (c *CheckController) GetChecks(ctx *fiber.Ctx) error {
	var checks []Models.CheckIssuance
	result := c.DB.Preload("Vendor").Order("created_at DESC").Find(&checks)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve checks"})
	}

	return ctx.JSON(checks)
}

// CreateCheck records a cheque handed to a vendor
func (c *CheckController) CreateCheck(ctx *fiber.Ctx) error {
	var input Models.CheckIssuanceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var vendor Models.Vendor
	if result := c.DB.First(&vendor, input.VendorID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	checkDate, err := parseDate(input.CheckDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid check_date format. Use YYYY-MM-DD"})
	}

	status := Models.CheckStatus(input.Status)
	if input.Status == "" {
		status = Models.CheckPending
	}
	if !Models.ValidCheckStatus(status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be one of Pending, Cleared, Bounced, Cancelled",
		})
	}

	check := Models.CheckIssuance{
		VendorID:    vendor.ID,
		CheckNumber: input.CheckNumber,
		CheckDate:   checkDate,
		Remarks:     input.Remarks,
		Status:      status,
	}

	if result := c.DB.Create(&check); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create check"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(check)
}

// UpdateCheckStatus moves a cheque through its clearing lifecycle
func (c *CheckController) UpdateCheckStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid check ID"})
	}

	var check Models.CheckIssuance
	if result := c.DB.First(&check, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Check not found"})
	}

	var input struct {
		Status  string `json:"status"`
		Remarks string `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	status := Models.CheckStatus(input.Status)
	if !Models.ValidCheckStatus(status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be one of Pending, Cleared, Bounced, Cancelled",
		})
	}

	check.Status = status
	if input.Remarks != "" {
		check.Remarks = input.Remarks
	}
	if result := c.DB.Save(&check); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update check"})
	}

	return ctx.JSON(check)
}

// DeleteCheck removes a cheque record
func (c *CheckController) DeleteCheck(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid check ID"})
	}

	var check Models.CheckIssuance
	if result := c.DB.First(&check, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Check not found"})
	}

	c.DB.Delete(&check)

	return ctx.JSON(fiber.Map{"message": "Check deleted successfully"})
}
