package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Bill is a finalized, immutable record of a sale. Lines are
// denormalized snapshots: later catalog edits never change them.
type Bill struct {
	ID              int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	BillNumber      string            `gorm:"uniqueIndex;not null" json:"bill_number"`
	CustomerName    string            `json:"customer_name,omitempty"`
	CustomerAddress string            `json:"customer_address,omitempty"`
	CustomerContact string            `json:"customer_contact,omitempty"`
	Subtotal        float64           `gorm:"not null;default:0" json:"subtotal"`
	TaxRate         float64           `gorm:"not null;default:18" json:"tax_rate"`
	TaxAmount       float64           `gorm:"not null;default:0" json:"tax_amount"`
	TotalAmount     float64           `gorm:"not null;default:0" json:"total_amount"`
	DiscountType    string            `gorm:"not null;default:percentage" json:"discount_type"`
	DiscountValue   float64           `gorm:"not null;default:0" json:"discount_value"`
	Metadata        datatypes.JSONMap `gorm:"not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BillSequence is the single-row counter behind bill numbers. It only
// moves forward, so a number is never re-issued after its bill is
// deleted.
type BillSequence struct {
	ID    int64 `gorm:"primaryKey"`
	Value int64 `gorm:"not null;default:0"`
}

// BillItem is one line of a bill with the unit price captured at time
// of sale.
type BillItem struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	BillID     int64   `gorm:"not null;index" json:"bill_id"`
	ItemID     int64   `gorm:"not null" json:"item_id"`
	ItemName   string  `gorm:"not null" json:"item_name"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`
}
