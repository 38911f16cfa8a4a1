package postgres

import (
	"context"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("id ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uint64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).First(&categoryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateName, "failed to create category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if err := repo.db.WithContext(ctx).Save(fromCategoryDomain(category)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateName, "failed to update category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	return nil
}

func (repo *categoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrStillReferenced, "category has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("id ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

func (repo *brandRepository) FindBrandByID(ctx context.Context, id uint64) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).First(&brandM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *brandRepository) ExistsBrandByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check brand name")
	}

	return count > 0, nil
}

func (repo *brandRepository) CreateBrand(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateName, "failed to create brand")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID

	return nil
}

func (repo *brandRepository) UpdateBrand(ctx context.Context, brand *entity.Brand) error {
	if err := repo.db.WithContext(ctx).Save(fromBrandDomain(brand)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateName, "failed to update brand")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update brand")
	}

	return nil
}

func (repo *brandRepository) DeleteBrand(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BrandModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrStillReferenced, "brand has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:   data.ID,
		Name: data.Name,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
