package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

// ErrWishlistItemNotFound is returned when the (user, product) pair is not in the wishlist.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository defines wishlist persistence.
type WishlistRepository interface {
	FindWishlistItem(ctx context.Context, userID, productID uint64) (*entity.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error
	DeleteWishlistItem(ctx context.Context, id uint64) error
	// ListWishlistProductIDs returns product ids in the order they were added.
	ListWishlistProductIDs(ctx context.Context, userID uint64) ([]uint64, error)
}
