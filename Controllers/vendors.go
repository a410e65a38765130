package Controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
)

// VendorController handles vendor-related API endpoints
type VendorController struct {
	DB *gorm.DB
}

// NewVendorController creates a new VendorController
func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db}
}

// GetVendors retrieves all vendors ordered by name
func (c *VendorController) GetVendors(ctx *fiber.Ctx) error {
	var vendors []Models.Vendor
	result := c.DB.Order("name").Find(&vendors)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vendors"})
	}

	return ctx.JSON(vendors)
}

// GetVendor retrieves a single vendor by ID
func (c *VendorController) GetVendor(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	result := c.DB.First(&vendor, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	return ctx.JSON(vendor)
}

// CreateVendor creates a new vendor
func (c *VendorController) CreateVendor(ctx *fiber.Ctx) error {
	var input Models.VendorRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vendor := Models.Vendor{
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		Address:           input.Address,
		DefaultCreditDays: input.DefaultCreditDays,
	}
	if vendor.DefaultCreditDays == 0 {
		vendor.DefaultCreditDays = 30
	}

	result := c.DB.Create(&vendor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vendor with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vendor",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(vendor)
}

// UpdateVendor updates a vendor's contact fields and default credit days
func (c *VendorController) UpdateVendor(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	result := c.DB.First(&vendor, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var input Models.VendorRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vendor.Name = input.Name
	vendor.Phone = input.Phone
	vendor.Email = input.Email
	vendor.Address = input.Address
	if input.DefaultCreditDays > 0 {
		vendor.DefaultCreditDays = input.DefaultCreditDays
	}

	if result := c.DB.Save(&vendor); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vendor with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vendor",
		})
	}

	return ctx.JSON(vendor)
}

// DeleteVendor soft deletes a vendor. Vendors with purchases on file cannot
// be deleted.
func (c *VendorController) DeleteVendor(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	result := c.DB.First(&vendor, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var purchaseCount int64
	c.DB.Model(&Models.Purchase{}).Where("vendor_id = ?", id).Count(&purchaseCount)
	if purchaseCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vendor has purchases on file and cannot be deleted",
		})
	}

	c.DB.Delete(&vendor)

	return ctx.JSON(fiber.Map{"message": "Vendor deleted successfully"})
}

// GetVendorBalance calculates the outstanding amount owed to a vendor
func (c *VendorController) GetVendorBalance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	result := c.DB.First(&vendor, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var outstanding float64
	c.DB.Model(&Models.Purchase{}).
		Where("vendor_id = ? AND pending_amount > 0", id).
		Select("COALESCE(SUM(pending_amount), 0)").
		Scan(&outstanding)

	return ctx.JSON(fiber.Map{
		"vendor_id":   id,
		"name":        vendor.Name,
		"outstanding": outstanding,
	})
}
