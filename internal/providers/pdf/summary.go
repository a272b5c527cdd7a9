package pdf

import (
	"fmt"

	"github.com/smallbiznis/shopbill/internal/billing/calc"
)

type rowKind int

const (
	rowFigure rowKind = iota
	rowSpacer
	rowTotal
)

type summaryRow struct {
	Label  string
	Amount string
	Kind   rowKind
}

// summaryRows rebuilds the financial summary from the bill parameters
// through the same discount-then-tax formulas used for the preview.
// Discount rows appear only when a discount was actually applied.
func summaryRows(data InvoiceData) []summaryRow {
	discountAmount := calc.DiscountAmount(data.Subtotal, data.DiscountType, data.DiscountValue)
	discountedAmount := data.Subtotal - discountAmount
	taxAmount := calc.TaxAmount(discountedAmount, data.TaxRate)
	totalAmount := discountedAmount + taxAmount

	rows := []summaryRow{
		{Label: "Subtotal:", Amount: money(data.Subtotal)},
	}

	if data.DiscountValue > 0 {
		label := "Discount"
		if data.DiscountType == calc.DiscountTypePercentage {
			label = fmt.Sprintf("Discount (%v%%)", data.DiscountValue)
		}
		rows = append(rows,
			summaryRow{Label: label, Amount: "-" + money(discountAmount)},
			summaryRow{Label: "Amount After Discount:", Amount: money(discountedAmount)},
		)
	}

	rows = append(rows,
		summaryRow{Label: fmt.Sprintf("Tax (%v%%):", data.TaxRate), Amount: money(taxAmount)},
		summaryRow{Kind: rowSpacer},
		summaryRow{Label: "Total Amount:", Amount: money(totalAmount), Kind: rowTotal},
	)

	return rows
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", calc.Round(v))
}
