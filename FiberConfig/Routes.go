package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Sage/Controllers"
	"Sage/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	vendorController := Controllers.NewVendorController(db)
	purchaseController := Controllers.NewPurchaseController(db)
	paymentController := Controllers.NewPaymentController(db)
	dashboardController := Controllers.NewDashboardController(db)
	analyticsController := Controllers.NewAnalyticsController(db)
	checkController := Controllers.NewCheckController(db)
	reportController := Controllers.NewReportController(db)
	formController := Controllers.NewFormController(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Server-rendered pages and their form posts
	app.Get("/", dashboardController.Dashboard)
	app.Get("/vendors", dashboardController.VendorsPage)
	app.Get("/purchases", dashboardController.PurchasesPage)
	app.Post("/add_vendor", formController.AddVendor)
	app.Post("/add_purchase", formController.AddPurchase)
	app.Post("/add_payment", formController.AddPayment)

	// API group
	api := app.Group("/api")

	api.Get("/dashboard", dashboardController.APIDashboard)

	// Vendor routes
	vendors := api.Group("/vendors")
	vendors.Get("/", vendorController.GetVendors)
	vendors.Post("/", vendorController.CreateVendor)
	vendors.Get("/:id", vendorController.GetVendor)
	vendors.Put("/:id", vendorController.UpdateVendor)
	vendors.Delete("/:id", vendorController.DeleteVendor)
	vendors.Get("/:id/balance", vendorController.GetVendorBalance)

	// Purchase routes
	purchases := api.Group("/purchases")
	purchases.Get("/", purchaseController.GetPurchases)
	purchases.Post("/", purchaseController.CreatePurchase)
	purchases.Get("/:id", purchaseController.GetPurchase)
	purchases.Get("/:id/payments", purchaseController.GetPurchasePayments)
	purchases.Post("/:id/payments", purchaseController.CreatePayment)
	// Kept for the form-population script on the purchases page
	api.Get("/purchase/:id", purchaseController.GetPurchase)

	// Payment maintenance routes
	payments := api.Group("/payments")
	payments.Get("/:id", paymentController.GetPayment)
	payments.Put("/:id", paymentController.UpdatePayment)
	payments.Delete("/:id", paymentController.DeletePayment)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.Get("/summary", analyticsController.Summary)
	analytics.Get("/monthly", analyticsController.MonthlyActivity)
	analytics.Get("/top-vendors", analyticsController.TopVendors)
	analytics.Get("/recent-activity", analyticsController.RecentActivity)

	// Check issuance routes
	checks := api.Group("/checks")
	checks.Get("/", checkController.GetChecks)
	checks.Post("/", checkController.CreateCheck)
	checks.Put("/:id/status", checkController.UpdateCheckStatus)
	checks.Delete("/:id", checkController.DeleteCheck)

	// Reports
	api.Get("/reports/reminders.xlsx", reportController.ExportReminders)
}

func NewApp(db *gorm.DB) *fiber.App {
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db)
	return app
}

func FiberConfig(db *gorm.DB) {
	fmt.Println("Server Up...")
	app := NewApp(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
