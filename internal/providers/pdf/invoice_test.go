package pdf

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() InvoiceData {
	return InvoiceData{
		ShopName:      "Corner Cafe",
		ShopAddress:   "12 Main St",
		ShopContact:   "555-0100",
		ShopEmail:     "hello@cornercafe.example",
		ShopTaxNumber: "GSTIN-001",

		BillNumber: "INV-0007",
		IssuedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),

		CustomerName:    "Ada",
		CustomerAddress: "1 Analytical Way",
		CustomerContact: "555-0199",

		Lines: []InvoiceLine{
			{Description: "Coffee", Quantity: 2, UnitPrice: 4.5, TotalPrice: 9},
			{Description: "Sandwich", Quantity: 1, UnitPrice: 7.25, TotalPrice: 7.25},
		},

		Subtotal:      16.25,
		TaxRate:       18,
		DiscountType:  "percentage",
		DiscountValue: 10,
	}
}

func TestGenerateInvoice_ProducesPDF(t *testing.T) {
	provider := New()

	raw, err := provider.GenerateInvoice(context.Background(), sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "output must start with the PDF magic bytes")
}

func TestGenerateInvoice_WithoutOptionalFields(t *testing.T) {
	provider := New()

	data := sampleInvoice()
	data.ShopEmail = ""
	data.ShopTaxNumber = ""
	data.CustomerName = ""
	data.CustomerAddress = ""
	data.CustomerContact = ""
	data.DiscountValue = 0

	raw, err := provider.GenerateInvoice(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestSummaryRows_PercentageDiscount(t *testing.T) {
	rows := summaryRows(sampleInvoice())

	require.Len(t, rows, 6)
	assert.Equal(t, "Subtotal:", rows[0].Label)
	assert.Equal(t, "16.25", rows[0].Amount)
	assert.Equal(t, "Discount (10%)", rows[1].Label)
	assert.Equal(t, "-1.63", rows[1].Amount)
	assert.Equal(t, "Amount After Discount:", rows[2].Label)
	assert.Equal(t, "14.63", rows[2].Amount)
	assert.Equal(t, "Tax (18%):", rows[3].Label)
	assert.Equal(t, rowSpacer, rows[4].Kind)
	assert.Equal(t, "Total Amount:", rows[5].Label)
	assert.Equal(t, rowTotal, rows[5].Kind)
}

func TestSummaryRows_FixedDiscount(t *testing.T) {
	data := sampleInvoice()
	data.DiscountType = "fixed"
	data.DiscountValue = 5

	rows := summaryRows(data)

	require.Len(t, rows, 6)
	assert.Equal(t, "Discount", rows[1].Label)
	assert.Equal(t, "-5.00", rows[1].Amount)
	assert.Equal(t, "11.25", rows[2].Amount)
}

func TestSummaryRows_NoDiscountOmitsDiscountRows(t *testing.T) {
	data := sampleInvoice()
	data.DiscountValue = 0
	data.TaxRate = 20

	rows := summaryRows(data)

	require.Len(t, rows, 4)
	assert.Equal(t, "Subtotal:", rows[0].Label)
	assert.Equal(t, "Tax (20%):", rows[1].Label)
	assert.Equal(t, "3.25", rows[1].Amount)
	assert.Equal(t, rowSpacer, rows[2].Kind)
	assert.Equal(t, "Total Amount:", rows[3].Label)
	assert.Equal(t, "19.50", rows[3].Amount)
}
