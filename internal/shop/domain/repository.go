package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Replace removes any existing profile and inserts the new one
	// inside the given transaction handle.
	Replace(ctx context.Context, db *gorm.DB, shop *Shop) error
	First(ctx context.Context, db *gorm.DB) (*Shop, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
