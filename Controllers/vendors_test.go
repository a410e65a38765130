package Controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVendor(t *testing.T) {
	_, app := setupTest(t)

	resp := doRequest(t, app, http.MethodPost, "/api/vendors/", map[string]interface{}{
		"name":                "Hillside Herbs",
		"phone":               "0123456789",
		"email":               "orders@hillside.example",
		"default_credit_days": 21,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "Hillside Herbs", body["name"])
	assert.Equal(t, 21.0, body["default_credit_days"])
}

func TestCreateVendorDefaultsCreditDays(t *testing.T) {
	_, app := setupTest(t)

	resp := doRequest(t, app, http.MethodPost, "/api/vendors/", map[string]interface{}{
		"name": "Meadow Botanicals",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 30.0, body["default_credit_days"])
}

func TestCreateVendorDuplicateName(t *testing.T) {
	db, app := setupTest(t)
	seedVendor(t, db, "Hillside Herbs", 30)

	resp := doRequest(t, app, http.MethodPost, "/api/vendors/", map[string]interface{}{
		"name": "Hillside Herbs",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateVendorMissingName(t *testing.T) {
	_, app := setupTest(t)

	resp := doRequest(t, app, http.MethodPost, "/api/vendors/", map[string]interface{}{
		"phone": "0123456789",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateVendorContactFields(t *testing.T) {
	db, app := setupTest(t)
	vendor := seedVendor(t, db, "Hillside Herbs", 30)

	resp := doRequest(t, app, http.MethodPut, "/api/vendors/1", map[string]interface{}{
		"name":  "Hillside Herbs",
		"phone": "0987654321",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, "0987654321", body["phone"])
	assert.Equal(t, float64(vendor.ID), body["ID"])
}

func TestDeleteVendorWithPurchasesRejected(t *testing.T) {
	db, app := setupTest(t)
	vendor := seedVendor(t, db, "Hillside Herbs", 30)
	seedPurchase(t, app, vendor.ID, "A-1", time.Now().Format("2006-01-02"), 15, 1000, 0)

	resp := doRequest(t, app, http.MethodDelete, "/api/vendors/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Still retrievable
	resp = doRequest(t, app, http.MethodGet, "/api/vendors/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteVendorWithoutPurchases(t *testing.T) {
	db, app := setupTest(t)
	seedVendor(t, db, "Hillside Herbs", 30)

	resp := doRequest(t, app, http.MethodDelete, "/api/vendors/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/vendors/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVendorBalance(t *testing.T) {
	db, app := setupTest(t)
	vendor := seedVendor(t, db, "Hillside Herbs", 30)
	seedPurchase(t, app, vendor.ID, "A-1", time.Now().Format("2006-01-02"), 15, 1000, 200)
	seedPurchase(t, app, vendor.ID, "A-2", time.Now().Format("2006-01-02"), 15, 500, 0)

	resp := doRequest(t, app, http.MethodGet, "/api/vendors/1/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := parseBody(t, resp)
	assert.Equal(t, 1300.0, body["outstanding"])
}

func TestGetVendorNotFound(t *testing.T) {
	_, app := setupTest(t)

	resp := doRequest(t, app, http.MethodGet, "/api/vendors/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
