package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// NextSequence advances the monotonic bill counter and returns the
	// new value. Callers must invoke it inside the same transaction as
	// the insert so a failed save rolls the counter back with it.
	NextSequence(ctx context.Context, db *gorm.DB) (int64, error)
	Insert(ctx context.Context, db *gorm.DB, bill *Bill) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Bill, error)
	List(ctx context.Context, db *gorm.DB) ([]*Bill, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
