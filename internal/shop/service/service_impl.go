package service

import (
	"context"
	"strings"
	"time"

	"github.com/smallbiznis/shopbill/internal/shop/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("shop.service"),
		repo: p.Repo,
	}
}

func (s *Service) Replace(ctx context.Context, req domain.ReplaceShopRequest) (domain.Shop, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Shop{}, domain.ErrInvalidName
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return domain.Shop{}, domain.ErrInvalidAddress
	}

	contact := strings.TrimSpace(req.ContactNumber)
	if contact == "" {
		return domain.Shop{}, domain.ErrInvalidContact
	}

	shop := domain.Shop{
		Name:          name,
		Address:       address,
		ContactNumber: contact,
		Email:         strings.TrimSpace(req.Email),
		TaxNumber:     strings.TrimSpace(req.TaxNumber),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Replace(ctx, s.db, &shop); err != nil {
		return domain.Shop{}, err
	}

	s.log.Info("shop profile replaced", zap.Int64("shop_id", shop.ID))
	return shop, nil
}

func (s *Service) Get(ctx context.Context) (domain.Shop, error) {
	shop, err := s.repo.First(ctx, s.db)
	if err != nil {
		return domain.Shop{}, err
	}
	if shop == nil {
		return domain.Shop{}, domain.ErrNotFound
	}
	return *shop, nil
}

func (s *Service) Exists(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx, s.db)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
