package usecase

import (
	"context"

	"geekstore/internal/domain/entity"
)

// AddressInput defines a saved shipping address.
type AddressInput struct {
	Alias      string
	Department string
	Province   string
	District   string
	Street     string
	Reference  string
	PostalCode string
}

// AddressUsecase manages the caller's saved addresses. Touching another user's address is forbidden.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uint64) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID uint64, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uint64, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uint64) error
}
