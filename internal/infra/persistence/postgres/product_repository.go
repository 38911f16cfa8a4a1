package postgres

import (
	"context"
	"strings"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// reader routes catalog reads to a replica when replicas are configured.
func (repo *productRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func withProductAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Category").
		Preload("Brand")
}

func productFilterScope(filter repository.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
		}
		if filter.CategoryID > 0 {
			db = db.Where("category_id = ?", filter.CategoryID)
		}
		if filter.BrandID > 0 {
			db = db.Where("brand_id = ?", filter.BrandID)
		}
		if filter.Gender != "" {
			db = db.Where("gender = ?", string(filter.Gender))
		}

		return db
	}
}

// SearchProducts returns one page of products matching every non-empty filter field.
func (repo *productRepository) SearchProducts(
	ctx context.Context,
	filter repository.ProductFilter,
	page repository.PageRequest,
) (*repository.Page[*entity.Product], error) {
	page = page.Normalize(repository.DefaultProductPageSize)

	var total int64
	err := repo.reader(ctx).
		Model(&model.ProductModel{}).
		Scopes(productFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	err = withProductAssociations(repo.reader(ctx)).
		Scopes(productFilterScope(filter)).
		Order("name ASC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return &repository.Page[*entity.Product]{
		Items: toProductDomains(productModels),
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// FindProductByID retrieves a product with its associations.
func (repo *productRepository) FindProductByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := withProductAssociations(repo.reader(ctx)).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByIDs keeps the order of ids and skips ids that no longer exist.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uint64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := withProductAssociations(repo.reader(ctx)).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	byID := make(map[uint64]*model.ProductModel, len(productModels))
	for _, productM := range productModels {
		byID[productM.ID] = productM
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, id := range ids {
		if productM, ok := byID[id]; ok {
			products = append(products, toProductDomain(productM))
		}
	}

	return products, nil
}

func (repo *productRepository) FindProductsByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := withProductAssociations(repo.reader(ctx)).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) FindFeaturedProduct(ctx context.Context) (*entity.Product, error) {
	var productM model.ProductModel
	if err := withProductAssociations(repo.reader(ctx)).Where("featured = ?", true).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find featured product")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct inserts the product row together with its images and variants.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Brand").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or brand reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("variant stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	applyProductKeys(product, productM)

	return nil
}

// UpdateProduct overwrites the product row and replaces its images and variants.
// Callers run it inside a transaction.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Save(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if err := db.Where("product_id = ?", productM.ID).Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product images")
	}
	if err := db.Where("product_id = ?", productM.ID).Delete(&model.ProductVariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product variants")
	}

	if len(productM.Images) > 0 {
		if err := db.Create(&productM.Images).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save product images")
		}
	}
	if len(productM.Variants) > 0 {
		if err := db.Create(&productM.Variants).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("variant stock must not be negative")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save product variants")
		}
	}

	applyProductKeys(product, productM)

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) ResetFeatured(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("featured = ?", true).
		Update("featured", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reset featured product")
	}

	return nil
}

// DecrementVariantStock relies on the WHERE clause so concurrent orders cannot oversell.
func (repo *productRepository) DecrementVariantStock(ctx context.Context, productID, variantID uint64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ? AND product_id = ? AND stock >= ?", variantID, productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func (repo *productRepository) CountProductsByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func (repo *productRepository) CountProductsByBrand(ctx context.Context, brandID uint64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("brand_id = ?", brandID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by brand")
	}

	return count, nil
}

// --- Mapper Functions ---

func applyProductKeys(product *entity.Product, productM *model.ProductModel) {
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	for i := range productM.Images {
		if i < len(product.Images) {
			product.Images[i].ID = productM.Images[i].ID
			product.Images[i].ProductID = productM.ID
		}
	}
	for i := range productM.Variants {
		if i < len(product.Variants) {
			product.Variants[i].ID = productM.Variants[i].ID
			product.Variants[i].ProductID = productM.ID
		}
	}
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// toProductDomain converts a GORM ProductModel, including loaded associations, to a domain Product.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Discount:    data.Discount,
		Featured:    data.Featured,
		Gender:      entity.Gender(data.Gender),
		CategoryID:  data.CategoryID,
		BrandID:     data.BrandID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}
	if data.Brand != nil {
		product.Brand = toBrandDomain(data.Brand)
	}

	product.Images = make([]entity.ProductImage, 0, len(data.Images))
	for _, image := range data.Images {
		product.Images = append(product.Images, entity.ProductImage{
			ID:        image.ID,
			ProductID: image.ProductID,
			URL:       image.URL,
		})
	}

	product.Variants = make([]entity.ProductVariant, 0, len(data.Variants))
	for _, variant := range data.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			ID:        variant.ID,
			ProductID: variant.ProductID,
			Color:     variant.Color,
			ColorHex:  variant.ColorHex,
			Size:      variant.Size,
			Stock:     variant.Stock,
		})
	}

	return product
}

// fromProductDomain converts a domain Product to a GORM ProductModel. Images and variants
// are always inserted fresh, so their IDs are left for the database to assign.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Discount:    data.Discount,
		Featured:    data.Featured,
		Gender:      string(data.Gender),
		CategoryID:  data.CategoryID,
		BrandID:     data.BrandID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, image := range data.Images {
		productM.Images = append(productM.Images, model.ProductImageModel{
			ProductID: data.ID,
			URL:       image.URL,
		})
	}
	for _, variant := range data.Variants {
		productM.Variants = append(productM.Variants, model.ProductVariantModel{
			ProductID: data.ID,
			Color:     variant.Color,
			ColorHex:  variant.ColorHex,
			Size:      variant.Size,
			Stock:     variant.Stock,
		})
	}

	return productM
}
