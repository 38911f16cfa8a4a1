package impl

import (
	"context"
	"fmt"
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

// productService implements the ProductUsecase interface.
// Reads go through the injected repositories so they can be served by replicas.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts searches the catalog. Blank filters are ignored.
func (srv *productService) ListProducts(ctx context.Context, query *usecase.ProductQuery) (*repository.Page[*entity.Product], error) {
	filter := repository.ProductFilter{
		Keyword:    strings.TrimSpace(query.Keyword),
		CategoryID: query.CategoryID,
		BrandID:    query.BrandID,
	}

	if strings.TrimSpace(query.Gender) != "" {
		gender, ok := entity.ParseGender(query.Gender)
		if ok {
			filter.Gender = gender
		} else {
			srv.log(ctx).Warn("Ignoring unknown gender filter", slog.String("gender", query.Gender))
		}
	}

	page, err := srv.productRepo.SearchProducts(ctx, filter, query.Page.Normalize(repository.DefaultProductPageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return page, nil
}

// GetProduct returns a product with its images, variants, category and brand.
func (srv *productService) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(productNotFound(id), "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// GetFeaturedProduct returns the featured product or nil.
func (srv *productService) GetFeaturedProduct(ctx context.Context) (*entity.Product, error) {
	product, err := srv.productRepo.FindFeaturedProduct(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find featured product")
	}

	return product, nil
}

// ListProductsByCategory returns every product of an existing category.
func (srv *productService) ListProductsByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error) {
	if _, err := srv.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(categoryNotFound(categoryID), "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	products, err := srv.productRepo.FindProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// CreateProduct stores a new product. A featured product unflags every other one first.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	product := &entity.Product{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := applyProductInput(ctx, repoFactory, product, input); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()
		if product.Featured {
			srv.log(ctx).Info("New featured product, resetting previous ones")
			if err := productRepo.ResetFeatured(ctx); err != nil {
				return errors.Wrap(err, "failed to reset featured products")
			}
		}

		if err := productRepo.CreateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Uint64("productID", product.ID))

	return product, nil
}

// UpdateProduct overwrites a product and replaces its images and variants.
func (srv *productService) UpdateProduct(ctx context.Context, id uint64, input *usecase.ProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(productNotFound(id), "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		wasFeatured := product.Featured
		if err := applyProductInput(ctx, repoFactory, product, input); err != nil {
			return err
		}

		if product.Featured && !wasFeatured {
			srv.log(ctx).Info("Product marked as featured, resetting others", slog.Uint64("productID", id))
			if err := productRepo.ResetFeatured(ctx); err != nil {
				return errors.Wrap(err, "failed to reset featured products")
			}
		}

		if err := productRepo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Uint64("productID", id))

	return updated, nil
}

// DeleteProduct removes a product. Past order items keep their snapshots.
func (srv *productService) DeleteProduct(ctx context.Context, id uint64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().DeleteProduct(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Attempt to delete missing product", slog.Uint64("productID", id))

				return errors.Wrap(productNotFound(id), "product not found")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Uint64("productID", id))

	return nil
}

// applyProductInput resolves category and brand and copies input onto product.
func applyProductInput(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	product *entity.Product,
	input *usecase.ProductInput,
) error {
	gender, ok := entity.ParseGender(input.Gender)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Género inválido: "+input.Gender), "invalid gender")
	}

	category, err := repoFactory.NewCategoryRepository().FindCategoryByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}

	var brand *entity.Brand
	if input.BrandID > 0 {
		brand, err = repoFactory.NewBrandRepository().FindBrandByID(ctx, input.BrandID)
		if err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
			}

			return errors.Wrap(err, "failed to find brand")
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = entity.RoundMoney(input.Price)
	product.Discount = input.Discount
	product.Featured = input.Featured
	product.Gender = gender
	product.CategoryID = category.ID
	product.Category = category
	product.Brand = brand
	product.BrandID = nil
	if brand != nil {
		product.BrandID = &brand.ID
	}

	product.Images = make([]entity.ProductImage, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		if strings.TrimSpace(url) == "" {
			continue
		}
		product.Images = append(product.Images, entity.ProductImage{URL: strings.TrimSpace(url)})
	}

	product.Variants = make([]entity.ProductVariant, 0, len(input.Variants))
	for _, v := range input.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			Color:    variantLabel(v.Color, entity.DefaultVariantColor),
			ColorHex: v.ColorHex,
			Size:     variantLabel(v.Size, entity.DefaultVariantSize),
			Stock:    v.Stock,
		})
	}

	return nil
}

func variantLabel(value, fallback string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}

	return value
}

func productNotFound(id uint64) error {
	return domainerrors.ErrProductNotFound.WithMessage(fmt.Sprintf("Producto no encontrado con id: %d", id))
}

func categoryNotFound(id uint64) error {
	return domainerrors.ErrCategoryNotFound.WithMessage(fmt.Sprintf("Categoria no encontrada con id: %d", id))
}

func brandNotFound(id uint64) error {
	return domainerrors.ErrBrandNotFound.WithMessage(fmt.Sprintf("Marca no encontrada con id: %d", id))
}
