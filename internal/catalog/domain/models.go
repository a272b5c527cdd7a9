package domain

import "time"

// Item is a sellable catalog entry. Bill lines copy the name and
// price at sale time, so editing or deleting an item never rewrites
// history.
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"not null" json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
