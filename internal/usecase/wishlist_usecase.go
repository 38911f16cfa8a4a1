package usecase

import (
	"context"

	"geekstore/internal/domain/entity"
)

// WishlistUsecase manages favorite products.
type WishlistUsecase interface {
	// ToggleProduct removes the product when present and adds it otherwise. It reports whether it was added.
	ToggleProduct(ctx context.Context, userID, productID uint64) (bool, error)
	ListWishlist(ctx context.Context, userID uint64) ([]*entity.Product, error)
}
