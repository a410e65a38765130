package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
	"Sage/Reminders"
)

// PaymentController handles maintenance operations on recorded payments
type PaymentController struct {
	DB *gorm.DB
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// GetPayment retrieves a single payment by ID
func (c *PaymentController) GetPayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	result := c.DB.First(&payment, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	return ctx.JSON(payment)
}

// UpdatePayment corrects a recorded payment. The parent purchase's cached
// pending amount and status are refreshed in the same transaction.
func (c *PaymentController) UpdatePayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	if result := c.DB.First(&payment, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var input Models.PaymentRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var purchase Models.Purchase
	if result := c.DB.Preload("Vendor").First(&purchase, payment.PurchaseID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	// Pending as it would be without this payment; the corrected amount must
	// still fit.
	pendingWithout := Reminders.Pending(purchase.BillAmount, purchase.AdvancePaid,
		[]float64{paymentsTotal(c.DB, purchase.ID) - payment.Amount})
	if input.Amount > pendingWithout {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Payment exceeds the outstanding pending amount",
		})
	}

	payment.Amount = input.Amount
	if input.Method != "" {
		method := Models.PaymentMethod(input.Method)
		if !Models.ValidPaymentMethod(method) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "method must be one of Cash, Cheque, Bank Transfer, UPI",
			})
		}
		payment.Method = method
	}
	if input.PaymentDate != "" {
		date, err := parseDate(input.PaymentDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment_date format. Use YYYY-MM-DD"})
		}
		payment.PaymentDate = date
	}
	if input.Note != "" {
		payment.Note = input.Note
	}

	today := time.Now()
	window := reminderWindowDays("")

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Transaction error"})
	}
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	if err := RecomputePurchase(tx, &purchase, today, window); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update purchase"})
	}
	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return ctx.JSON(fiber.Map{
		"payment":  payment,
		"purchase": purchase,
	})
}

// DeletePayment removes a mistakenly recorded payment and restores the
// purchase's pending amount.
func (c *PaymentController) DeletePayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	if result := c.DB.First(&payment, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var purchase Models.Purchase
	if result := c.DB.Preload("Vendor").First(&purchase, payment.PurchaseID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	today := time.Now()
	window := reminderWindowDays("")

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Transaction error"})
	}
	if err := tx.Delete(&payment).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if err := RecomputePurchase(tx, &purchase, today, window); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update purchase"})
	}
	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return ctx.JSON(fiber.Map{
		"message":  "Payment deleted successfully",
		"purchase": purchase,
	})
}
