package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	Update(ctx context.Context, db *gorm.DB, item *Item) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Item, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]*Item, error)
	List(ctx context.Context, db *gorm.DB) ([]*Item, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
