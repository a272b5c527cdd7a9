package service

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/smallbiznis/shopbill/internal/catalog/domain"
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
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Item{}, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}

	item := domain.Item{
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateItemRequest) (domain.Item, error) {
	if req.ID <= 0 {
		return domain.Item{}, domain.ErrInvalidID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Item{}, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}

	item, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}

	item.Name = name
	item.Slug = slug.Make(name)
	item.Description = strings.TrimSpace(req.Description)
	item.Price = req.Price
	item.Category = strings.TrimSpace(req.Category)

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Item{}, err
	}

	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	if id <= 0 {
		return domain.Item{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		items = append(items, *row)
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	// Historical bill lines keep their own snapshot of name and price,
	// so removing the catalog row never touches saved bills.
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.db)
}
