package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/shopbill/internal/shop/domain"
	"github.com/smallbiznis/shopbill/internal/shop/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupShopService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Shop{}))

	return New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide()}), db
}

func TestReplace_KeepsSingleRow(t *testing.T) {
	svc, db := setupShopService(t)

	first, err := svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name:          "Corner Cafe",
		Address:       "12 Main St",
		ContactNumber: "555-0100",
	})
	require.NoError(t, err)

	second, err := svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name:          "Corner Cafe & Bakery",
		Address:       "14 Main St",
		ContactNumber: "555-0101",
		Email:         "hello@cornercafe.example",
		TaxNumber:     "GSTIN-001",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&domain.Shop{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe & Bakery", got.Name)
	assert.Equal(t, "hello@cornercafe.example", got.Email)
}

func TestReplace_Validation(t *testing.T) {
	svc, _ := setupShopService(t)

	_, err := svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Address: "12 Main St", ContactNumber: "555-0100",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name: "Corner Cafe", ContactNumber: "555-0100",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name: "Corner Cafe", Address: "12 Main St",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContact)

	// Whitespace-only values count as missing.
	_, err = svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name: "   ", Address: "12 Main St", ContactNumber: "555-0100",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestGet_WhenUnset(t *testing.T) {
	svc, _ := setupShopService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err := svc.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_AfterSetup(t *testing.T) {
	svc, _ := setupShopService(t)

	_, err := svc.Replace(context.Background(), domain.ReplaceShopRequest{
		Name:          "Corner Cafe",
		Address:       "12 Main St",
		ContactNumber: "555-0100",
	})
	require.NoError(t, err)

	exists, err := svc.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}
