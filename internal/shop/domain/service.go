package domain

import (
	"context"
	"errors"
)

type ReplaceShopRequest struct {
	Name          string
	Address       string
	ContactNumber string
	Email         string
	TaxNumber     string
}

type Service interface {
	// Replace swaps the singleton profile for a new one.
	Replace(context.Context, ReplaceShopRequest) (Shop, error)
	Get(context.Context) (Shop, error)
	Exists(context.Context) (bool, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidContact = errors.New("invalid_contact")
	ErrNotFound       = errors.New("not_found")
)
