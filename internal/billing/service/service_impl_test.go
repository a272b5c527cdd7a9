package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/shopbill/internal/billing/calc"
	"github.com/smallbiznis/shopbill/internal/billing/domain"
	billingrepository "github.com/smallbiznis/shopbill/internal/billing/repository"
	catalogdomain "github.com/smallbiznis/shopbill/internal/catalog/domain"
	catalogrepository "github.com/smallbiznis/shopbill/internal/catalog/repository"
	"github.com/smallbiznis/shopbill/internal/providers/pdf"
	shopdomain "github.com/smallbiznis/shopbill/internal/shop/domain"
	shoprepository "github.com/smallbiznis/shopbill/internal/shop/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type pdfStub struct {
	calls int
	last  pdf.InvoiceData
	err   error
}

func (p *pdfStub) GenerateInvoice(ctx context.Context, data pdf.InvoiceData) ([]byte, error) {
	p.calls++
	p.last = data
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-1.7 stub"), nil
}

func setupBillingService(t *testing.T) (domain.Service, *gorm.DB, *pdfStub) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&shopdomain.Shop{},
		&catalogdomain.Item{},
		&domain.Bill{},
		&domain.BillItem{},
		&domain.BillSequence{},
	))

	stub := &pdfStub{}
	svc := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		Repo:        billingrepository.Provide(),
		CatalogRepo: catalogrepository.Provide(),
		ShopRepo:    shoprepository.Provide(),
		PDF:         stub,
	})
	return svc, db, stub
}

func seedItems(t *testing.T, db *gorm.DB) []catalogdomain.Item {
	t.Helper()

	items := []catalogdomain.Item{
		{Name: "Coffee", Slug: "coffee", Price: 4.5, Category: "beverages"},
		{Name: "Sandwich", Slug: "sandwich", Price: 7.25, Category: "food"},
	}
	require.NoError(t, db.Create(&items).Error)
	return items
}

func TestCalculate_ResolvesCatalogPrices(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	breakdown, err := svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: []domain.Selection{
			{ItemID: items[0].ID, Quantity: 2},
			{ItemID: items[1].ID, Quantity: 1},
		},
		DiscountType:  calc.DiscountTypePercentage,
		DiscountValue: 0,
	})
	require.NoError(t, err)

	require.Len(t, breakdown.Items, 2)
	assert.Equal(t, "Coffee", breakdown.Items[0].Name)
	assert.Equal(t, 9.0, breakdown.Items[0].TotalPrice)
	assert.Equal(t, 16.25, breakdown.Subtotal)
	// Default GST applies when the request omits the rate.
	assert.Equal(t, calc.DefaultTaxRate, breakdown.TaxRate)
}

func TestCalculate_UnknownItemNamesTheID(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	seedItems(t, db)

	_, err := svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: []domain.Selection{{ItemID: 9999, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Contains(t, err.Error(), "9999")
}

func TestCalculate_RejectsBadInput(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)
	sel := []domain.Selection{{ItemID: items[0].ID, Quantity: 1}}

	_, err := svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: []domain.Selection{{ItemID: items[0].ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	negativeTax := -1.0
	_, err = svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: sel, TaxRate: &negativeTax,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)

	_, err = svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: sel, DiscountType: "coupon",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountType)

	_, err = svc.Calculate(context.Background(), domain.CalculateBillRequest{
		Items: sel, DiscountValue: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
}

func saveRequest(items []catalogdomain.Item) domain.SaveBillRequest {
	return domain.SaveBillRequest{
		CustomerName: "Ada",
		Subtotal:     16.25,
		TaxRate:      18,
		TaxAmount:    2.93,
		TotalAmount:  19.18,
		DiscountType: calc.DiscountTypePercentage,
		Items: []domain.SaveBillItem{
			{ItemID: items[0].ID, Quantity: 2, UnitPrice: 4.5, TotalPrice: 9},
			{ItemID: items[1].ID, Quantity: 1, UnitPrice: 7.25, TotalPrice: 7.25},
		},
	}
}

func TestSave_AssignsSequentialNumbers(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	for i := 1; i <= 3; i++ {
		bill, err := svc.Save(context.Background(), saveRequest(items))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%04d", i), bill.BillNumber)
	}
}

func TestSave_NeverReissuesDeletedNumbers(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	_, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	require.Equal(t, "INV-0002", second.BillNumber)

	// Deleting the newest bill must not hand its number to the next
	// save; numbers stay unique for the lifetime of the store.
	require.NoError(t, svc.Delete(context.Background(), second.ID))

	third, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	assert.Equal(t, "INV-0003", third.BillNumber)
}

// staleSequenceRepo replays an already-used sequence on its first call,
// the way a hand-edited counter row would, then delegates.
type staleSequenceRepo struct {
	domain.Repository
	replayed bool
}

func (r *staleSequenceRepo) NextSequence(ctx context.Context, db *gorm.DB) (int64, error) {
	if !r.replayed {
		r.replayed = true
		return 1, nil
	}
	return r.Repository.NextSequence(ctx, db)
}

func TestSave_RetriesOnDuplicateNumber(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	first, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	require.Equal(t, "INV-0001", first.BillNumber)

	stale := &staleSequenceRepo{Repository: billingrepository.Provide()}
	retrying := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		Repo:        stale,
		CatalogRepo: catalogrepository.Provide(),
		ShopRepo:    shoprepository.Provide(),
		PDF:         &pdfStub{},
	})

	// First attempt collides with INV-0001 on the unique index; the
	// save retries with a fresh sequence instead of failing.
	bill, err := retrying.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	assert.True(t, stale.replayed)
	assert.Equal(t, "INV-0002", bill.BillNumber)

	var count int64
	require.NoError(t, db.Model(&domain.Bill{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSave_SnapshotsItemNames(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	bill, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "Coffee", bill.Items[0].ItemName)
	assert.Equal(t, 4.5, bill.Items[0].UnitPrice)

	// Repricing and deleting catalog rows must not rewrite history.
	require.NoError(t, db.Model(&catalogdomain.Item{}).
		Where("id = ?", items[0].ID).
		Update("price", 99.0).Error)
	require.NoError(t, db.Delete(&catalogdomain.Item{}, items[1].ID).Error)

	got, err := svc.GetByID(context.Background(), bill.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 4.5, got.Items[0].UnitPrice)
	assert.Equal(t, "Sandwich", got.Items[1].ItemName)
}

func TestSave_UnknownItemFailsWithoutPartialWrite(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	req := saveRequest(items)
	req.Items = append(req.Items, domain.SaveBillItem{ItemID: 9999, Quantity: 1, UnitPrice: 1, TotalPrice: 1})

	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	var bills, lines int64
	require.NoError(t, db.Model(&domain.Bill{}).Count(&bills).Error)
	require.NoError(t, db.Model(&domain.BillItem{}).Count(&lines).Error)
	assert.Zero(t, bills)
	assert.Zero(t, lines)
}

func TestSave_RejectsEmptyBill(t *testing.T) {
	svc, _, _ := setupBillingService(t)

	_, err := svc.Save(context.Background(), domain.SaveBillRequest{})
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

func TestDelete_RemovesBillAndLines(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	bill, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), bill.ID))

	var lines int64
	require.NoError(t, db.Model(&domain.BillItem{}).Count(&lines).Error)
	assert.Zero(t, lines)

	_, err = svc.GetByID(context.Background(), bill.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_KeepsOtherBills(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	first, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), first.ID))

	got, err := svc.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestDocument_RequiresShopProfile(t *testing.T) {
	svc, db, stub := setupBillingService(t)
	items := seedItems(t, db)

	bill, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)

	_, err = svc.Document(context.Background(), bill.ID)
	assert.ErrorIs(t, err, domain.ErrShopNotConfigured)
	assert.Zero(t, stub.calls)
}

func TestDocument_RendersInvoice(t *testing.T) {
	svc, db, stub := setupBillingService(t)
	items := seedItems(t, db)

	require.NoError(t, db.Create(&shopdomain.Shop{
		Name:          "Corner Cafe",
		Address:       "12 Main St",
		ContactNumber: "555-0100",
	}).Error)

	bill, err := svc.Save(context.Background(), saveRequest(items))
	require.NoError(t, err)

	doc, err := svc.Document(context.Background(), bill.ID)
	require.NoError(t, err)

	assert.Equal(t, bill.BillNumber, doc.BillNumber)
	assert.Equal(t, fmt.Sprintf("bill_%s.pdf", bill.BillNumber), doc.Filename)
	assert.NotEmpty(t, doc.Data)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Corner Cafe", stub.last.ShopName)
	assert.Equal(t, bill.BillNumber, stub.last.BillNumber)
	require.Len(t, stub.last.Lines, 2)
	assert.Equal(t, "Coffee", stub.last.Lines[0].Description)
}

func TestDocument_UnknownBill(t *testing.T) {
	svc, _, _ := setupBillingService(t)

	_, err := svc.Document(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	svc, db, _ := setupBillingService(t)
	items := seedItems(t, db)

	var ids []int64
	for i := 0; i < 3; i++ {
		bill, err := svc.Save(context.Background(), saveRequest(items))
		require.NoError(t, err)
		ids = append(ids, bill.ID)
	}

	bills, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, ids[2], bills[0].ID)
	assert.Equal(t, ids[0], bills[2].ID)
}
