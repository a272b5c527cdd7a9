package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/shopbill/internal/shop/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Replace(ctx context.Context, db *gorm.DB, shop *domain.Shop) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM shops`).Error; err != nil {
			return err
		}
		return tx.Create(shop).Error
	})
}

func (r *repo) First(ctx context.Context, db *gorm.DB) (*domain.Shop, error) {
	var shop domain.Shop
	err := db.WithContext(ctx).
		Order("id asc").
		First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Shop{}).Count(&count).Error
	return count, err
}
