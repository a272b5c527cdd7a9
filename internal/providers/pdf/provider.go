package pdf

import (
	"context"
	"time"
)

// InvoiceLine is one printed table row, carrying the snapshot values
// stored on the bill line.
type InvoiceLine struct {
	Description string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

// InvoiceData is everything the renderer needs. Summary figures are
// recomputed from Subtotal and the discount/tax parameters at render
// time, not echoed from stored totals.
type InvoiceData struct {
	ShopName      string
	ShopAddress   string
	ShopContact   string
	ShopEmail     string
	ShopTaxNumber string

	BillNumber string
	IssuedAt   time.Time

	CustomerName    string
	CustomerAddress string
	CustomerContact string

	Lines []InvoiceLine

	Subtotal      float64
	TaxRate       float64
	DiscountType  string
	DiscountValue float64
}

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) ([]byte, error)
}
