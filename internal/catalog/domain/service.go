package domain

import (
	"context"
	"errors"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

type UpdateItemRequest struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
}

type Service interface {
	Create(context.Context, CreateItemRequest) (Item, error)
	Update(context.Context, UpdateItemRequest) (Item, error)
	GetByID(ctx context.Context, id int64) (Item, error)
	List(context.Context) ([]Item, error)
	Delete(ctx context.Context, id int64) error
	Count(context.Context) (int64, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
