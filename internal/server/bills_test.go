package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupShop(t *testing.T, router *gin.Engine) {
	t.Helper()

	resp := doRequest(t, router, http.MethodPost, "/shop/setup", map[string]any{
		"name":           "Corner Cafe",
		"address":        "12 Main St",
		"contact_number": "555-0100",
	})
	require.Equal(t, http.StatusOK, resp.Code)
}

func saveBill(t *testing.T, router *gin.Engine, itemID int64) map[string]any {
	t.Helper()

	resp := doRequest(t, router, http.MethodPost, "/bills/save", map[string]any{
		"customer_name": "Ada",
		"subtotal":      9.0,
		"tax_rate":      18.0,
		"tax_amount":    1.62,
		"total_amount":  10.62,
		"discount_type": "percentage",
		"items": []map[string]any{
			{"item_id": itemID, "quantity": 2, "unit_price": 4.5, "total_price": 9.0},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	return decodeBody(t, resp)
}

func TestCalculateBill(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)
	sandwich := addItem(t, router, "Sandwich", 7.25)

	resp := doRequest(t, router, http.MethodPost, "/api/calculate_bill", map[string]any{
		"items": []map[string]any{
			{"item_id": coffee, "quantity": 2},
			{"item_id": sandwich, "quantity": 1},
		},
		"tax_rate":       18.0,
		"discount_type":  "percentage",
		"discount_value": 0,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody(t, resp)
	require.Equal(t, 16.25, body["subtotal"])
	require.Equal(t, 18.0, body["tax_rate"])
	require.Equal(t, "percentage", body["discount_type"])

	items := body["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	require.Equal(t, "Coffee", first["name"])
	require.Equal(t, 9.0, first["total_price"])
}

func TestCalculateBill_DefaultsTaxRate(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)

	resp := doRequest(t, router, http.MethodPost, "/api/calculate_bill", map[string]any{
		"items": []map[string]any{{"item_id": coffee, "quantity": 1}},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, 18.0, decodeBody(t, resp)["tax_rate"])
}

func TestCalculateBill_UnknownItem(t *testing.T) {
	router, _ := setupTestServer(t)

	resp := doRequest(t, router, http.MethodPost, "/api/calculate_bill", map[string]any{
		"items": []map[string]any{{"item_id": 9999, "quantity": 1}},
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errBody := decodeBody(t, resp)["error"].(map[string]any)
	require.Equal(t, "validation_error", errBody["type"])
	errs := errBody["errors"].([]any)
	require.Len(t, errs, 1)
	detail := errs[0].(map[string]any)
	require.Equal(t, "item_not_found", detail["code"])
	require.Contains(t, detail["message"], "9999")
}

func TestSaveBill(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)

	body := saveBill(t, router, coffee)
	require.Equal(t, true, body["success"])
	require.Equal(t, "INV-0001", body["bill_number"])
	require.NotZero(t, body["bill_id"])

	body = saveBill(t, router, coffee)
	require.Equal(t, "INV-0002", body["bill_number"])
}

func TestSaveBill_RejectsEmpty(t *testing.T) {
	router, _ := setupTestServer(t)

	resp := doRequest(t, router, http.MethodPost, "/bills/save", map[string]any{
		"customer_name": "Ada",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListAndGetBills(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)
	saved := saveBill(t, router, coffee)
	billID := int64(saved["bill_id"].(float64))

	resp := doRequest(t, router, http.MethodGet, "/bills", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	bills := decodeBody(t, resp)["data"].([]any)
	require.Len(t, bills, 1)

	resp = doRequest(t, router, http.MethodGet, fmt.Sprintf("/bills/%d", billID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeBody(t, resp)["data"].(map[string]any)
	require.Equal(t, "INV-0001", data["bill_number"])
	lines := data["items"].([]any)
	require.Len(t, lines, 1)
	require.Equal(t, "Coffee", lines[0].(map[string]any)["item_name"])
}

func TestGetBillForm(t *testing.T) {
	router, _ := setupTestServer(t)
	addItem(t, router, "Coffee", 4.5)

	resp := doRequest(t, router, http.MethodGet, "/bills/create", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	data := decodeBody(t, resp)["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
}

func TestDeleteBill(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)
	saved := saveBill(t, router, coffee)
	billID := int64(saved["bill_id"].(float64))

	resp := doRequest(t, router, http.MethodGet, fmt.Sprintf("/bills/delete/%d", billID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(t, router, http.MethodGet, fmt.Sprintf("/bills/%d", billID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDownloadBill(t *testing.T) {
	router, _ := setupTestServer(t)
	setupShop(t, router)
	coffee := addItem(t, router, "Coffee", 4.5)
	saved := saveBill(t, router, coffee)
	billID := int64(saved["bill_id"].(float64))

	resp := doRequest(t, router, http.MethodGet, fmt.Sprintf("/bills/download/%d", billID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	require.Contains(t, resp.Header().Get("Content-Disposition"), "bill_INV-0001.pdf")
	require.True(t, strings.HasPrefix(resp.Body.String(), "%PDF"))
}

func TestDownloadBill_WithoutShop(t *testing.T) {
	router, _ := setupTestServer(t)
	coffee := addItem(t, router, "Coffee", 4.5)
	saved := saveBill(t, router, coffee)
	billID := int64(saved["bill_id"].(float64))

	resp := doRequest(t, router, http.MethodGet, fmt.Sprintf("/bills/download/%d", billID), nil)
	require.Equal(t, http.StatusConflict, resp.Code)

	errBody := decodeBody(t, resp)["error"].(map[string]any)
	require.Equal(t, "missing_prerequisite", errBody["type"])
}
