package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
	"Sage/Reminders"
)

// PurchaseController handles purchase-related API endpoints
type PurchaseController struct {
	DB *gorm.DB
}

// NewPurchaseController creates a new PurchaseController
func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

// paymentsTotal sums the live payments recorded against a purchase.
func paymentsTotal(tx *gorm.DB, purchaseID uint) float64 {
	var total float64
	tx.Model(&Models.Payment{}).
		Where("purchase_id = ?", purchaseID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total
}

// RecomputePurchase re-derives the cached due date, pending amount and
// status columns from the payments ledger. Must run inside the same
// transaction as the payment write that made them stale.
func RecomputePurchase(tx *gorm.DB, purchase *Models.Purchase, today time.Time, windowDays int) error {
	entry := Reminders.Evaluate(purchase.Facts(paymentsTotal(tx, purchase.ID)), today, windowDays)
	purchase.DueDate = entry.DueDate
	purchase.PendingAmount = entry.PendingAmount
	purchase.Status = entry.Status
	return tx.Model(purchase).Updates(map[string]interface{}{
		"due_date":       purchase.DueDate,
		"pending_amount": purchase.PendingAmount,
		"status":         purchase.Status,
	}).Error
}

// GetPurchases retrieves all purchases with their vendor, most recent first.
// Derived fields are re-evaluated against today rather than trusting the
// stored cache.
func (c *PurchaseController) GetPurchases(ctx *fiber.Ctx) error {
	var purchases []Models.Purchase
	result := c.DB.Preload("Vendor").Order("created_at DESC").Find(&purchases)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve purchases"})
	}

	today := time.Now()
	window := reminderWindowDays(ctx.Query("days"))

	entries := make([]Reminders.Entry, 0, len(purchases))
	for i := range purchases {
		entries = append(entries, Reminders.Evaluate(
			purchases[i].Facts(paymentsTotal(c.DB, purchases[i].ID)), today, window))
	}

	return ctx.JSON(entries)
}

// GetPurchase retrieves a single purchase with vendor and payments
func (c *PurchaseController) GetPurchase(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	var purchase Models.Purchase
	result := c.DB.Preload("Vendor").Preload("Payments").First(&purchase, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	today := time.Now()
	window := reminderWindowDays(ctx.Query("days"))
	entry := Reminders.Evaluate(purchase.Facts(paymentsTotal(c.DB, purchase.ID)), today, window)

	return ctx.JSON(fiber.Map{
		"purchase": purchase,
		"derived":  entry,
	})
}

// CreatePurchase records a new purchase. The due date is computed here from
// bill_date + credit_days; credit_days falls back to the vendor's default.
func (c *PurchaseController) CreatePurchase(ctx *fiber.Ctx) error {
	var input Models.PurchaseRequest
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

	billDate, err := parseDate(input.BillDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bill_date format. Use YYYY-MM-DD"})
	}

	if input.AdvancePaid > input.BillAmount {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "advance_paid cannot exceed bill_amount",
		})
	}

	creditDays := vendor.DefaultCreditDays
	if input.CreditDays != nil {
		creditDays = *input.CreditDays
	}

	paymentType := Models.PaymentType(input.PaymentType)
	if input.PaymentType == "" {
		paymentType = Models.PaymentTypeCredit
	}
	if !Models.ValidPaymentType(paymentType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "payment_type must be one of Credit, Advance, Cash",
		})
	}

	today := time.Now()
	window := reminderWindowDays("")
	purchase := Models.Purchase{
		VendorID:    vendor.ID,
		BillNo:      input.BillNo,
		BillDate:    billDate,
		CreditDays:  creditDays,
		BillAmount:  input.BillAmount,
		AdvancePaid: input.AdvancePaid,
		PaymentType: paymentType,
	}
	purchase.DueDate = Reminders.DueDate(billDate, creditDays)
	purchase.PendingAmount = Reminders.Pending(input.BillAmount, input.AdvancePaid, nil)
	purchase.Status = Reminders.Classify(purchase.PendingAmount, purchase.DueDate, today, window)

	if result := c.DB.Create(&purchase); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create purchase"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(purchase)
}

// CreatePayment records a payment against a purchase and refreshes the
// purchase's cached pending amount and status in the same transaction.
func (c *PurchaseController) CreatePayment(ctx *fiber.Ctx) error {
	purchaseID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	var purchase Models.Purchase
	if result := c.DB.Preload("Vendor").First(&purchase, purchaseID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	var input Models.PaymentRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	method := Models.PaymentMethod(input.Method)
	if input.Method == "" {
		method = Models.MethodCash
	}
	if !Models.ValidPaymentMethod(method) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "method must be one of Cash, Cheque, Bank Transfer, UPI",
		})
	}

	paymentDate := time.Now()
	if input.PaymentDate != "" {
		paymentDate, err = parseDate(input.PaymentDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment_date format. Use YYYY-MM-DD"})
		}
	}

	today := time.Now()
	window := reminderWindowDays("")

	pending := Reminders.Pending(purchase.BillAmount, purchase.AdvancePaid,
		[]float64{paymentsTotal(c.DB, purchase.ID)})
	if input.Amount > pending {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Payment exceeds the outstanding pending amount",
		})
	}

	payment := Models.Payment{
		PurchaseID:  purchase.ID,
		Amount:      input.Amount,
		Method:      method,
		PaymentDate: paymentDate,
		Note:        input.Note,
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Transaction error"})
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}
	if err := RecomputePurchase(tx, &purchase, today, window); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update purchase"})
	}
	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment":  payment,
		"purchase": purchase,
	})
}

// GetPurchasePayments lists the payments recorded against a purchase,
// newest first.
func (c *PurchaseController) GetPurchasePayments(ctx *fiber.Ctx) error {
	purchaseID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	var purchase Models.Purchase
	if result := c.DB.First(&purchase, purchaseID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	var payments []Models.Payment
	result := c.DB.Where("purchase_id = ?", purchaseID).Order("payment_date DESC").Find(&payments)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payments"})
	}

	return ctx.JSON(payments)
}

// RefreshStatuses re-derives the cached status of every open purchase
// against the given day. Used by the nightly job; statuses drift as the
// calendar advances even when no payment is written.
func RefreshStatuses(db *gorm.DB, today time.Time, windowDays int) (int, error) {
	var purchases []Models.Purchase
	if err := db.Preload("Vendor").Find(&purchases).Error; err != nil {
		return 0, err
	}

	updated := 0
	for i := range purchases {
		entry := Reminders.Evaluate(
			purchases[i].Facts(paymentsTotal(db, purchases[i].ID)), today, windowDays)
		if purchases[i].Status == entry.Status && purchases[i].PendingAmount == entry.PendingAmount {
			continue
		}
		err := db.Model(&purchases[i]).Updates(map[string]interface{}{
			"pending_amount": entry.PendingAmount,
			"status":         entry.Status,
		}).Error
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
