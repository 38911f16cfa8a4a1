package usecase

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// VariantInput describes one color/size combination of a product.
type VariantInput struct {
	Color    string
	ColorHex string
	Size     string
	Stock    int
}

// ProductInput defines a product as sent by an administrator.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Discount    int
	Featured    bool
	Gender      string
	CategoryID  uint64
	// BrandID of zero means no brand.
	BrandID   uint64
	ImageURLs []string
	Variants  []VariantInput
}

// ProductQuery holds the optional filters of a catalog search.
type ProductQuery struct {
	Page       repository.PageRequest
	Keyword    string
	CategoryID uint64
	BrandID    uint64
	// Gender accepts Men, Women or the enum names; unknown values are ignored.
	Gender string
}

// ProductUsecase defines catalog browsing and product administration.
type ProductUsecase interface {
	ListProducts(ctx context.Context, query *ProductQuery) (*repository.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)
	// GetFeaturedProduct returns nil without error when no product is featured.
	GetFeaturedProduct(ctx context.Context) (*entity.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

// CategoryInput defines a category as sent by an administrator.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryUsecase defines category management.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uint64) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint64, input *CategoryInput) (*entity.Category, error)
	// DeleteCategory fails with a conflict while products still use the category.
	DeleteCategory(ctx context.Context, id uint64) error
}

// BrandInput defines a brand as sent by an administrator.
type BrandInput struct {
	Name string
}

// BrandUsecase defines brand management.
type BrandUsecase interface {
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrand(ctx context.Context, id uint64) (*entity.Brand, error)
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, id uint64, input *BrandInput) (*entity.Brand, error)
	// DeleteBrand fails with a conflict while products still use the brand.
	DeleteBrand(ctx context.Context, id uint64) error
}
