package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrBrandNotFound is returned when a brand is not found.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrDuplicateName is returned when a unique name is already taken.
	ErrDuplicateName = errors.New("name already exists")
	// ErrStillReferenced is returned when a delete violates a foreign key.
	ErrStillReferenced = errors.New("entity still referenced")
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindCategoryByID(ctx context.Context, id uint64) (*entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) error
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
}

// BrandRepository defines brand persistence.
type BrandRepository interface {
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	FindBrandByID(ctx context.Context, id uint64) (*entity.Brand, error)
	// ExistsBrandByName compares names case-insensitively.
	ExistsBrandByName(ctx context.Context, name string) (bool, error)
	CreateBrand(ctx context.Context, brand *entity.Brand) error
	UpdateBrand(ctx context.Context, brand *entity.Brand) error
	DeleteBrand(ctx context.Context, id uint64) error
}
