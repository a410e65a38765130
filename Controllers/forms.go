package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Sage/Models"
	"Sage/Reminders"
)

// FormController accepts the classic form posts from the server-rendered
// pages and redirects back. The JSON API under /api is the primary surface;
// these exist so the plain HTML forms keep working without client scripting.
type FormController struct {
	DB *gorm.DB
}

// NewFormController creates a new FormController
func NewFormController(db *gorm.DB) *FormController {
	return &FormController{DB: db}
}

// AddVendor handles POST /add_vendor
func (c *FormController) AddVendor(ctx *fiber.Ctx) error {
	name := ctx.FormValue("name")
	if name == "" {
		return ctx.Redirect("/vendors?error=name+is+required")
	}

	creditDays, err := strconv.Atoi(ctx.FormValue("default_credit_days", "30"))
	if err != nil || creditDays < 0 {
		return ctx.Redirect("/vendors?error=invalid+credit+days")
	}

	vendor := Models.Vendor{
		Name:              name,
		Phone:             ctx.FormValue("phone"),
		Email:             ctx.FormValue("email"),
		Address:           ctx.FormValue("address"),
		DefaultCreditDays: creditDays,
	}
	if result := c.DB.Create(&vendor); result.Error != nil {
		return ctx.Redirect("/vendors?error=vendor+already+exists")
	}

	return ctx.Redirect("/vendors")
}

// AddPurchase handles POST /add_purchase
func (c *FormController) AddPurchase(ctx *fiber.Ctx) error {
	vendorID, err := strconv.Atoi(ctx.FormValue("vendor_id"))
	if err != nil {
		return ctx.Redirect("/purchases?error=invalid+vendor")
	}

	var vendor Models.Vendor
	if result := c.DB.First(&vendor, vendorID); result.Error != nil {
		return ctx.Redirect("/purchases?error=vendor+not+found")
	}

	billDate, err := parseDate(ctx.FormValue("bill_date"))
	if err != nil {
		return ctx.Redirect("/purchases?error=invalid+bill+date")
	}

	billAmount, err := strconv.ParseFloat(ctx.FormValue("bill_amount"), 64)
	if err != nil || billAmount < 0 {
		return ctx.Redirect("/purchases?error=invalid+bill+amount")
	}
	advancePaid, err := strconv.ParseFloat(ctx.FormValue("advance_paid", "0"), 64)
	if err != nil || advancePaid < 0 || advancePaid > billAmount {
		return ctx.Redirect("/purchases?error=invalid+advance")
	}

	creditDays := vendor.DefaultCreditDays
	if v := ctx.FormValue("credit_days"); v != "" {
		creditDays, err = strconv.Atoi(v)
		if err != nil || creditDays < 0 {
			return ctx.Redirect("/purchases?error=invalid+credit+days")
		}
	}

	paymentType := Models.PaymentType(ctx.FormValue("payment_type", string(Models.PaymentTypeCredit)))
	if !Models.ValidPaymentType(paymentType) {
		return ctx.Redirect("/purchases?error=invalid+payment+type")
	}

	today := time.Now()
	purchase := Models.Purchase{
		VendorID:    vendor.ID,
		BillNo:      ctx.FormValue("bill_no"),
		BillDate:    billDate,
		CreditDays:  creditDays,
		BillAmount:  billAmount,
		AdvancePaid: advancePaid,
		PaymentType: paymentType,
	}
	purchase.DueDate = Reminders.DueDate(billDate, creditDays)
	purchase.PendingAmount = Reminders.Pending(billAmount, advancePaid, nil)
	purchase.Status = Reminders.Classify(purchase.PendingAmount, purchase.DueDate, today, reminderWindowDays(""))

	if result := c.DB.Create(&purchase); result.Error != nil {
		return ctx.Redirect("/purchases?error=failed+to+save+purchase")
	}

	return ctx.Redirect("/purchases")
}

// AddPayment handles POST /add_payment
func (c *FormController) AddPayment(ctx *fiber.Ctx) error {
	purchaseID, err := strconv.Atoi(ctx.FormValue("purchase_id"))
	if err != nil {
		return ctx.Redirect("/purchases?error=invalid+purchase")
	}

	var purchase Models.Purchase
	if result := c.DB.Preload("Vendor").First(&purchase, purchaseID); result.Error != nil {
		return ctx.Redirect("/purchases?error=purchase+not+found")
	}

	amount, err := strconv.ParseFloat(ctx.FormValue("paid_amount"), 64)
	if err != nil || amount <= 0 {
		return ctx.Redirect("/purchases?error=invalid+amount")
	}

	pending := Reminders.Pending(purchase.BillAmount, purchase.AdvancePaid,
		[]float64{paymentsTotal(c.DB, purchase.ID)})
	if amount > pending {
		return ctx.Redirect("/purchases?error=payment+exceeds+pending+amount")
	}

	paymentDate := time.Now()
	if v := ctx.FormValue("paid_date"); v != "" {
		paymentDate, err = parseDate(v)
		if err != nil {
			return ctx.Redirect("/purchases?error=invalid+payment+date")
		}
	}

	method := Models.PaymentMethod(ctx.FormValue("payment_method", string(Models.MethodCash)))
	if !Models.ValidPaymentMethod(method) {
		return ctx.Redirect("/purchases?error=invalid+payment+method")
	}

	payment := Models.Payment{
		PurchaseID:  purchase.ID,
		Amount:      amount,
		Method:      method,
		PaymentDate: paymentDate,
		Note:        ctx.FormValue("note"),
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Redirect("/purchases?error=transaction+error")
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return ctx.Redirect("/purchases?error=failed+to+record+payment")
	}
	if err := RecomputePurchase(tx, &purchase, time.Now(), reminderWindowDays("")); err != nil {
		tx.Rollback()
		return ctx.Redirect("/purchases?error=failed+to+update+purchase")
	}
	if err := tx.Commit().Error; err != nil {
		return ctx.Redirect("/purchases?error=failed+to+commit")
	}

	return ctx.Redirect("/purchases")
}
