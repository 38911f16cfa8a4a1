package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows a product search. Zero values are ignored.
type ProductFilter struct {
	Keyword    string
	CategoryID uint64
	BrandID    uint64
	Gender     entity.Gender
}

// ProductRepository defines catalog product persistence. Returned products carry
// their images, variants, category and brand.
type ProductRepository interface {
	// SearchProducts combines the filter fields with AND and sorts by name.
	SearchProducts(ctx context.Context, filter ProductFilter, page PageRequest) (*Page[*entity.Product], error)
	FindProductByID(ctx context.Context, id uint64) (*entity.Product, error)
	// FindProductsByIDs returns the products in the order of ids, skipping missing ones.
	FindProductsByIDs(ctx context.Context, ids []uint64) ([]*entity.Product, error)
	FindProductsByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error)
	// FindFeaturedProduct returns ErrProductNotFound when no product is featured.
	FindFeaturedProduct(ctx context.Context) (*entity.Product, error)

	// CreateProduct inserts the product with its images and variants.
	CreateProduct(ctx context.Context, product *entity.Product) error
	// UpdateProduct updates the product and replaces its images and variants.
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uint64) error

	// ResetFeatured clears the featured flag on every product.
	ResetFeatured(ctx context.Context) error

	// DecrementVariantStock subtracts quantity only when enough stock remains.
	// It returns ErrInsufficientStock otherwise.
	DecrementVariantStock(ctx context.Context, productID, variantID uint64, quantity int) error

	CountProductsByCategory(ctx context.Context, categoryID uint64) (int64, error)
	CountProductsByBrand(ctx context.Context, brandID uint64) (int64, error)
}
