// Package calc implements the bill breakdown arithmetic: discount on
// the gross subtotal, tax on the discounted amount.
//
// Everything here is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
package calc

import "math"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"

	// DefaultTaxRate is the GST percentage applied when a request
	// does not specify one.
	DefaultTaxRate = 18.0
)

// Line is one resolved item selection priced at calculation time.
type Line struct {
	ItemID    int64
	Name      string
	Quantity  int
	UnitPrice float64
}

// Params carries the discount and tax knobs for a calculation.
type Params struct {
	TaxRate       float64
	DiscountType  string
	DiscountValue float64
}

// LineTotal is the per-line detail published with a breakdown.
type LineTotal struct {
	ItemID     int64   `json:"item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Breakdown is the computed financial summary of a bill.
type Breakdown struct {
	Items            []LineTotal `json:"items"`
	Subtotal         float64     `json:"subtotal"`
	DiscountType     string      `json:"discount_type"`
	DiscountValue    float64     `json:"discount_value"`
	DiscountAmount   float64     `json:"discount_amount"`
	DiscountedAmount float64     `json:"discounted_amount"`
	TaxRate          float64     `json:"tax_rate"`
	TaxAmount        float64     `json:"tax_amount"`
	TotalAmount      float64     `json:"total_amount"`
}

// Compute produces the breakdown for the given lines and parameters.
// Intermediate sums are kept at full precision; rounding to two
// decimals happens once per published figure, so per-line rounding
// error never compounds across the subtotal.
func Compute(lines []Line, p Params) Breakdown {
	discountType := normalizeDiscountType(p.DiscountType)

	subtotal := 0.0
	items := make([]LineTotal, 0, len(lines))
	for _, line := range lines {
		total := float64(line.Quantity) * line.UnitPrice
		subtotal += total
		items = append(items, LineTotal{
			ItemID:     line.ItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: Round(total),
		})
	}

	// A fixed discount is applied verbatim and is deliberately not
	// capped to the subtotal; the discounted amount may go negative.
	discountAmount := DiscountAmount(subtotal, discountType, p.DiscountValue)
	discountedAmount := subtotal - discountAmount
	taxAmount := discountedAmount * p.TaxRate / 100
	totalAmount := discountedAmount + taxAmount

	return Breakdown{
		Items:            items,
		Subtotal:         Round(subtotal),
		DiscountType:     discountType,
		DiscountValue:    p.DiscountValue,
		DiscountAmount:   Round(discountAmount),
		DiscountedAmount: Round(discountedAmount),
		TaxRate:          p.TaxRate,
		TaxAmount:        Round(taxAmount),
		TotalAmount:      Round(totalAmount),
	}
}

// DiscountAmount derives the currency discount from the configured type.
func DiscountAmount(subtotal float64, discountType string, value float64) float64 {
	if normalizeDiscountType(discountType) == DiscountTypePercentage {
		return subtotal * value / 100
	}
	return value
}

// TaxAmount applies the tax rate to the post-discount amount.
func TaxAmount(discountedAmount, taxRate float64) float64 {
	return discountedAmount * taxRate / 100
}

// Round rounds a monetary value to two decimal places for display.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidDiscountType reports whether the value names a known discount type.
func ValidDiscountType(value string) bool {
	switch value {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	default:
		return false
	}
}

func normalizeDiscountType(value string) string {
	if value == DiscountTypeFixed {
		return DiscountTypeFixed
	}
	return DiscountTypePercentage
}
