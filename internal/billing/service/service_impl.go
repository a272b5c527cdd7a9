package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smallbiznis/shopbill/internal/billing/calc"
	"github.com/smallbiznis/shopbill/internal/billing/domain"
	"github.com/smallbiznis/shopbill/internal/billing/format"
	catalogdomain "github.com/smallbiznis/shopbill/internal/catalog/domain"
	"github.com/smallbiznis/shopbill/internal/config"
	"github.com/smallbiznis/shopbill/internal/providers/pdf"
	shopdomain "github.com/smallbiznis/shopbill/internal/shop/domain"
	"github.com/smallbiznis/shopbill/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxSaveRetries bounds bill-number collision retries under
// concurrent saves.
const maxSaveRetries = 3

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Cfg         config.Config
	Repo        domain.Repository
	CatalogRepo catalogdomain.Repository
	ShopRepo    shopdomain.Repository
	PDF         pdf.Provider
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	billPrefix  string
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
	shopRepo    shopdomain.Repository
	pdf         pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("billing.service"),
		billPrefix:  p.Cfg.BillNumberPrefix,
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
		shopRepo:    p.ShopRepo,
		pdf:         p.PDF,
	}
}

func (s *Service) Calculate(ctx context.Context, req domain.CalculateBillRequest) (calc.Breakdown, error) {
	params, err := calcParams(req.TaxRate, req.DiscountType, req.DiscountValue)
	if err != nil {
		return calc.Breakdown{}, err
	}

	lines, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		return calc.Breakdown{}, err
	}

	return calc.Compute(lines, params), nil
}

func (s *Service) Save(ctx context.Context, req domain.SaveBillRequest) (domain.Bill, error) {
	if len(req.Items) == 0 {
		return domain.Bill{}, domain.ErrNoItems
	}
	if req.DiscountType == "" {
		req.DiscountType = calc.DiscountTypePercentage
	}
	if !calc.ValidDiscountType(req.DiscountType) {
		return domain.Bill{}, domain.ErrInvalidDiscountType
	}
	if req.TaxRate < 0 {
		return domain.Bill{}, domain.ErrInvalidTaxRate
	}
	if req.DiscountValue < 0 {
		return domain.Bill{}, domain.ErrInvalidDiscount
	}

	ids := make([]int64, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return domain.Bill{}, domain.ErrInvalidQuantity
		}
		ids = append(ids, line.ItemID)
	}

	// Re-resolve catalog rows once so each line snapshots the item
	// name alongside the confirmed preview prices.
	names, err := s.itemNames(ctx, ids)
	if err != nil {
		return domain.Bill{}, err
	}

	now := time.Now().UTC()
	metadata := datatypes.JSONMap{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	bill := domain.Bill{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		CustomerContact: strings.TrimSpace(req.CustomerContact),
		Subtotal:        req.Subtotal,
		TaxRate:         req.TaxRate,
		TaxAmount:       req.TaxAmount,
		TotalAmount:     req.TotalAmount,
		DiscountType:    req.DiscountType,
		DiscountValue:   req.DiscountValue,
		Metadata:        metadata,
		CreatedAt:       now,
	}

	for _, line := range req.Items {
		bill.Items = append(bill.Items, domain.BillItem{
			ItemID:     line.ItemID,
			ItemName:   names[line.ItemID],
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}

	// Counter advance and insert share one transaction, so a failed
	// insert rolls the counter back with it. A duplicate number, e.g.
	// from a hand-seeded counter row, trips the unique index on
	// bill_number and retries with a fresh sequence.
	for attempt := 0; ; attempt++ {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, err := s.repo.NextSequence(ctx, tx)
			if err != nil {
				return err
			}

			number, err := format.BillNumber(s.billPrefix, seq)
			if err != nil {
				return err
			}
			bill.BillNumber = number

			return s.repo.Insert(ctx, tx, &bill)
		})
		if err == nil {
			break
		}
		if db.IsDuplicateKeyErr(err) && attempt < maxSaveRetries {
			s.log.Warn("bill number collision, retrying",
				zap.String("bill_number", bill.BillNumber),
			)
			bill.ID = 0
			for i := range bill.Items {
				bill.Items[i].ID = 0
				bill.Items[i].BillID = 0
			}
			continue
		}
		return domain.Bill{}, err
	}

	s.log.Info("bill saved",
		zap.Int64("bill_id", bill.ID),
		zap.String("bill_number", bill.BillNumber),
		zap.Float64("total_amount", bill.TotalAmount),
	)
	return bill, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Bill, error) {
	if id <= 0 {
		return domain.Bill{}, domain.ErrInvalidID
	}

	bill, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Bill{}, err
	}
	if bill == nil {
		return domain.Bill{}, domain.ErrNotFound
	}
	return *bill, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Bill, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	bills := make([]domain.Bill, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		bills = append(bills, *row)
	}
	return bills, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	bill, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.db)
}

func (s *Service) Document(ctx context.Context, id int64) (domain.Document, error) {
	bill, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	// Rendering without a shop profile would print a blank header, so
	// the absence is a hard precondition failure instead.
	shop, err := s.shopRepo.First(ctx, s.db)
	if err != nil {
		return domain.Document{}, err
	}
	if shop == nil {
		return domain.Document{}, domain.ErrShopNotConfigured
	}

	data := pdf.InvoiceData{
		ShopName:      shop.Name,
		ShopAddress:   shop.Address,
		ShopContact:   shop.ContactNumber,
		ShopEmail:     shop.Email,
		ShopTaxNumber: shop.TaxNumber,

		BillNumber: bill.BillNumber,
		IssuedAt:   bill.CreatedAt,

		CustomerName:    bill.CustomerName,
		CustomerAddress: bill.CustomerAddress,
		CustomerContact: bill.CustomerContact,

		Subtotal:      bill.Subtotal,
		TaxRate:       bill.TaxRate,
		DiscountType:  bill.DiscountType,
		DiscountValue: bill.DiscountValue,
	}
	for _, line := range bill.Items {
		data.Lines = append(data.Lines, pdf.InvoiceLine{
			Description: line.ItemName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.TotalPrice,
		})
	}

	raw, err := s.pdf.GenerateInvoice(ctx, data)
	if err != nil {
		return domain.Document{}, err
	}

	return domain.Document{
		BillNumber: bill.BillNumber,
		Filename:   fmt.Sprintf("bill_%s.pdf", bill.BillNumber),
		Data:       raw,
	}, nil
}

func (s *Service) resolveLines(ctx context.Context, selections []domain.Selection) ([]calc.Line, error) {
	lines := make([]calc.Line, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		item, err := s.catalogRepo.FindByID(ctx, s.db, sel.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: item %d", domain.ErrItemNotFound, sel.ItemID)
		}

		lines = append(lines, calc.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  sel.Quantity,
			UnitPrice: item.Price,
		})
	}
	return lines, nil
}

func (s *Service) itemNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	items, err := s.catalogRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		names[item.ID] = item.Name
	}

	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, fmt.Errorf("%w: item %d", domain.ErrItemNotFound, id)
		}
	}
	return names, nil
}

func calcParams(taxRate *float64, discountType string, discountValue float64) (calc.Params, error) {
	rate := calc.DefaultTaxRate
	if taxRate != nil {
		rate = *taxRate
	}
	if rate < 0 {
		return calc.Params{}, domain.ErrInvalidTaxRate
	}

	if discountType == "" {
		discountType = calc.DiscountTypePercentage
	}
	if !calc.ValidDiscountType(discountType) {
		return calc.Params{}, domain.ErrInvalidDiscountType
	}
	if discountValue < 0 {
		return calc.Params{}, domain.ErrInvalidDiscount
	}

	return calc.Params{
		TaxRate:       rate,
		DiscountType:  discountType,
		DiscountValue: discountValue,
	}, nil
}
