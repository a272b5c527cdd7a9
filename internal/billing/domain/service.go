package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/shopbill/internal/billing/calc"
)

// Selection is an item-quantity pairing submitted by the client.
type Selection struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type CalculateBillRequest struct {
	Items         []Selection
	TaxRate       *float64
	DiscountType  string
	DiscountValue float64
}

// SaveBillRequest persists a previously computed breakdown together
// with the optional customer block. Line prices are the preview
// snapshot the client confirmed; item names are re-resolved from the
// catalog at save time.
type SaveBillRequest struct {
	CustomerName    string
	CustomerAddress string
	CustomerContact string

	Subtotal      float64
	TaxRate       float64
	TaxAmount     float64
	TotalAmount   float64
	DiscountType  string
	DiscountValue float64

	Items    []SaveBillItem
	Metadata map[string]interface{}
}

type SaveBillItem struct {
	ItemID     int64   `json:"item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type Service interface {
	// Calculate resolves the selections against the catalog and
	// produces a preview breakdown. It never persists anything.
	Calculate(context.Context, CalculateBillRequest) (calc.Breakdown, error)
	Save(context.Context, SaveBillRequest) (Bill, error)
	GetByID(ctx context.Context, id int64) (Bill, error)
	List(context.Context) ([]Bill, error)
	Delete(ctx context.Context, id int64) error
	Count(context.Context) (int64, error)

	// Document renders the downloadable PDF invoice for a saved bill.
	Document(ctx context.Context, id int64) (Document, error)
}

// Document is a rendered invoice ready for download.
type Document struct {
	BillNumber string
	Filename   string
	Data       []byte
}

var (
	ErrInvalidID           = errors.New("invalid_id")
	ErrNoItems             = errors.New("no_items")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidTaxRate      = errors.New("invalid_tax_rate")
	ErrInvalidDiscountType = errors.New("invalid_discount_type")
	ErrInvalidDiscount     = errors.New("invalid_discount_value")
	ErrItemNotFound        = errors.New("item_not_found")
	ErrNotFound            = errors.New("not_found")

	// ErrShopNotConfigured guards document rendering: a bill cannot be
	// printed before the shop profile exists.
	ErrShopNotConfigured = errors.New("shop_not_configured")
)
