package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error
	FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error)
	FindAddressesByUser(ctx context.Context, userID uint64) ([]*entity.Address, error)
	UpdateAddress(ctx context.Context, address *entity.Address) error
	DeleteAddress(ctx context.Context, id uint64) error

	// CountAddressesByUser is used to enforce the per-user address limit.
	CountAddressesByUser(ctx context.Context, userID uint64) (int64, error)
}
