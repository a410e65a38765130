package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Sage/FiberConfig"
	"Sage/Models"
)

// setupTest opens an isolated in-memory database, migrates the schema and
// wires the full route table onto a bare Fiber app.
func setupTest(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()

	dsn := fmt.Sprintf("file:sagetest_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return db, app
}

// doRequest runs a JSON request against the app and returns the response.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// parseBody decodes a JSON response body into a generic map.
func parseBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return result
}

// seedVendor creates a vendor directly in the database.
func seedVendor(t *testing.T, db *gorm.DB, name string, creditDays int) *Models.Vendor {
	t.Helper()

	vendor := &Models.Vendor{
		Name:              name,
		Phone:             "0123456789",
		DefaultCreditDays: creditDays,
	}
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

// seedPurchase creates a purchase through the API so the derived columns
// are computed the same way production writes compute them.
func seedPurchase(t *testing.T, app *fiber.App, vendorID uint, billNo string, billDate string, creditDays int, billAmount, advancePaid float64) uint {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/purchases/", map[string]interface{}{
		"vendor_id":    vendorID,
		"bill_no":      billNo,
		"bill_date":    billDate,
		"credit_days":  creditDays,
		"bill_amount":  billAmount,
		"advance_paid": advancePaid,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := parseBody(t, resp)
	return uint(body["ID"].(float64))
}
