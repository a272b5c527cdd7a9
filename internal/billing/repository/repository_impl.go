package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/shopbill/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) NextSequence(ctx context.Context, db *gorm.DB) (int64, error) {
	// The counter row only moves forward, so deleting the newest bill
	// never frees its number for reuse. On postgres and mysql the
	// UPDATE also locks the row, serializing concurrent saves.
	res := db.WithContext(ctx).
		Exec(`UPDATE bill_sequences SET value = value + 1 WHERE id = 1`)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Counter row missing, e.g. a schema created outside the
		// migrations. Seeding here races only on the primary key, and
		// the caller's save retry absorbs that.
		err := db.WithContext(ctx).
			Exec(`INSERT INTO bill_sequences (id, value) VALUES (1, 1)`).Error
		if err != nil {
			return 0, err
		}
	}

	var next int64
	err := db.WithContext(ctx).
		Raw(`SELECT value FROM bill_sequences WHERE id = 1`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, bill *domain.Bill) error {
	// Create persists the header and its lines in one statement batch;
	// gorm fills BillID on each line from the new header id.
	return db.WithContext(ctx).Create(bill).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Bill, error) {
	var bill domain.Bill
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.id asc")
		}).
		First(&bill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Bill, error) {
	var bills []*domain.Bill
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	// Lines first; sqlite only honors ON DELETE CASCADE when the
	// foreign_keys pragma is enabled, so the cascade is explicit.
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM bill_items WHERE bill_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM bills WHERE id = ?`, id).Error
	})
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Bill{}).Count(&count).Error
	return count, err
}
