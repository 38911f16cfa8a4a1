package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id uint64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(categoryNotFound(id), "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCategoryRepository().CreateCategory(ctx, category); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "duplicate category name")
			}

			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Uint64("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, id uint64, input *usecase.CategoryInput) (*entity.Category, error) {
	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindCategoryByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(categoryNotFound(id), "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		previousName := category.Name
		category.Name = strings.TrimSpace(input.Name)
		category.Description = input.Description

		if err := categoryRepo.UpdateCategory(ctx, category); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "duplicate category name")
			}

			return errors.Wrap(err, "failed to update category")
		}

		srv.log(ctx).Info("Category updated", slog.Uint64("categoryID", id), slog.String("from", previousName), slog.String("to", category.Name))
		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return updated, nil
}

func (srv *categoryService) DeleteCategory(ctx context.Context, id uint64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		if _, err := categoryRepo.FindCategoryByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(categoryNotFound(id), "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		count, err := repoFactory.NewProductRepository().CountProductsByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			srv.log(ctx).Warn("Refusing to delete category with products", slog.Uint64("categoryID", id), slog.Int64("products", count))

			return errors.Wrap(domainerrors.ErrCategoryInUse, "category has products")
		}

		if err := categoryRepo.DeleteCategory(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrStillReferenced):
				return errors.Wrap(domainerrors.ErrCategoryInUse, "category has products")
			case errors.Is(err, repository.ErrCategoryNotFound):
				return errors.Wrap(categoryNotFound(id), "category not found")
			default:
				return errors.Wrap(err, "failed to delete category")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Uint64("categoryID", id))

	return nil
}

// brandService implements the BrandUsecase interface.
type brandService struct {
	txManager repository.TransactionManager
	brandRepo repository.BrandRepository
	logger    *slog.Logger
}

// BrandServiceParams holds dependencies for BrandService, injected by Fx.
type BrandServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BrandRepo repository.BrandRepository
	Logger    *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		txManager: params.TxManager,
		brandRepo: params.BrandRepo,
		logger:    params.Logger,
	}
}

func (srv *brandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *brandService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.ListBrands(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

func (srv *brandService) GetBrand(ctx context.Context, id uint64) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindBrandByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(brandNotFound(id), "brand not found")
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return brand, nil
}

func (srv *brandService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{Name: strings.TrimSpace(input.Name)}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.NewBrandRepository()

		exists, err := brandRepo.ExistsBrandByName(ctx, brand.Name)
		if err != nil {
			return errors.Wrap(err, "failed to check brand name")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrBrandAlreadyExists, "duplicate brand name")
		}

		if err := brandRepo.CreateBrand(ctx, brand); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return errors.Wrap(domainerrors.ErrBrandAlreadyExists, "duplicate brand name")
			}

			return errors.Wrap(err, "failed to create brand")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	srv.log(ctx).Info("Brand created", slog.Uint64("brandID", brand.ID), slog.String("name", brand.Name))

	return brand, nil
}

// UpdateBrand renames a brand. Renaming to another brand's name, ignoring case, is rejected.
func (srv *brandService) UpdateBrand(ctx context.Context, id uint64, input *usecase.BrandInput) (*entity.Brand, error) {
	name := strings.TrimSpace(input.Name)

	var updated *entity.Brand
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.NewBrandRepository()

		brand, err := brandRepo.FindBrandByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return errors.Wrap(brandNotFound(id), "brand not found")
			}

			return errors.Wrap(err, "failed to find brand")
		}

		if !strings.EqualFold(brand.Name, name) {
			exists, err := brandRepo.ExistsBrandByName(ctx, name)
			if err != nil {
				return errors.Wrap(err, "failed to check brand name")
			}
			if exists {
				return errors.Wrap(brandNameTaken(name), "duplicate brand name")
			}
		}

		brand.Name = name
		if err := brandRepo.UpdateBrand(ctx, brand); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return errors.Wrap(brandNameTaken(name), "duplicate brand name")
			}

			return errors.Wrap(err, "failed to update brand")
		}

		updated = brand

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	srv.log(ctx).Info("Brand updated", slog.Uint64("brandID", id))

	return updated, nil
}

func (srv *brandService) DeleteBrand(ctx context.Context, id uint64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brandRepo := repoFactory.NewBrandRepository()

		if _, err := brandRepo.FindBrandByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return errors.Wrap(brandNotFound(id), "brand not found")
			}

			return errors.Wrap(err, "failed to find brand")
		}

		count, err := repoFactory.NewProductRepository().CountProductsByBrand(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count brand products")
		}
		if count > 0 {
			srv.log(ctx).Warn("Refusing to delete brand with products", slog.Uint64("brandID", id), slog.Int64("products", count))

			return errors.Wrap(domainerrors.ErrBrandInUse, "brand has products")
		}

		if err := brandRepo.DeleteBrand(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrStillReferenced):
				return errors.Wrap(domainerrors.ErrBrandInUse, "brand has products")
			case errors.Is(err, repository.ErrBrandNotFound):
				return errors.Wrap(brandNotFound(id), "brand not found")
			default:
				return errors.Wrap(err, "failed to delete brand")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete brand")
	}

	srv.log(ctx).Info("Brand deleted", slog.Uint64("brandID", id))

	return nil
}

func brandNameTaken(name string) error {
	return domainerrors.ErrBrandNameTaken.WithMessage("Ya existe una marca con el nombre: " + name)
}
