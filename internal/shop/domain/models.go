package domain

import "time"

// Shop is the single shop profile stamped onto every invoice.
// At most one row exists at a time; Replace enforces the invariant.
type Shop struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Address       string    `gorm:"not null" json:"address"`
	ContactNumber string    `gorm:"not null" json:"contact_number"`
	Email         string    `json:"email,omitempty"`
	TaxNumber     string    `json:"tax_number,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
