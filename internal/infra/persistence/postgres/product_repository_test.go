package postgres

import (
	"context"
	"testing"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateLoadsAssociations(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	brand := &entity.Brand{Name: "Otaku Wear"}
	require.NoError(t, NewBrandRepository(db).CreateBrand(ctx, brand))

	product := &entity.Product{
		Name:       "Polo Naruto",
		Price:      decimal.RequireFromString("59.9"),
		Discount:   10,
		Gender:     entity.GenderMale,
		CategoryID: category.ID,
		BrandID:    &brand.ID,
		Images: []entity.ProductImage{
			{URL: "https://cdn.example.com/a.png"},
			{URL: "https://cdn.example.com/b.png"},
		},
		Variants: []entity.ProductVariant{
			{Color: "NEGRO", ColorHex: "#000000", Size: "M", Stock: 5},
			{Color: "BLANCO", ColorHex: "#FFFFFF", Size: "L", Stock: 3},
		},
	}
	require.NoError(t, repo.CreateProduct(ctx, product))
	require.NotZero(t, product.ID)
	require.NotZero(t, product.Variants[0].ID)

	found, err := repo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Polo Naruto", found.Name)
	assert.Equal(t, "59.90", found.Price.StringFixed(2))
	assert.Equal(t, "53.91", found.FinalPrice().StringFixed(2))
	require.NotNil(t, found.Category)
	assert.Equal(t, "Polos", found.Category.Name)
	require.NotNil(t, found.Brand)
	assert.Equal(t, "Otaku Wear", found.Brand.Name)
	assert.Len(t, found.Images, 2)
	assert.Equal(t, "https://cdn.example.com/a.png", found.MainImageURL())
	assert.Equal(t, 8, found.TotalStock())

	_, err = repo.FindProductByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_SearchFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	polos := seedCategory(t, db, "Polos")
	figuras := seedCategory(t, db, "Figuras")
	seedProduct(t, db, "Polo Goku", polos.ID, 1)
	seedProduct(t, db, "Polo Luffy", polos.ID, 1)
	seedProduct(t, db, "Figura Goku", figuras.ID, 1)

	page, err := repo.SearchProducts(ctx, repository.ProductFilter{Keyword: "goku"}, repository.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, repository.DefaultProductPageSize, page.Size)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Figura Goku", page.Items[0].Name)
	assert.Equal(t, "Polo Goku", page.Items[1].Name)

	page, err = repo.SearchProducts(ctx, repository.ProductFilter{Keyword: "goku", CategoryID: polos.ID}, repository.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Polo Goku", page.Items[0].Name)

	page, err = repo.SearchProducts(ctx, repository.ProductFilter{Gender: entity.GenderFemale}, repository.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestProductRepository_ResetFeatured(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	product := seedProduct(t, db, "Polo Goku", category.ID, 1)
	product.Featured = true
	require.NoError(t, repo.UpdateProduct(ctx, product))

	featured, err := repo.FindFeaturedProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.ID, featured.ID)

	require.NoError(t, repo.ResetFeatured(ctx))

	_, err = repo.FindFeaturedProduct(ctx)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_UpdateReplacesVariants(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	product := seedProduct(t, db, "Polo Goku", category.ID, 4)

	product.Name = "Polo Goku SSJ"
	product.Images = []entity.ProductImage{{URL: "https://cdn.example.com/new.png"}}
	product.Variants = []entity.ProductVariant{
		{Color: "ROJO", ColorHex: "#FF0000", Size: "S", Stock: 2},
		{Color: "AZUL", ColorHex: "#0000FF", Size: "S", Stock: 6},
	}
	require.NoError(t, repo.UpdateProduct(ctx, product))

	found, err := repo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Polo Goku SSJ", found.Name)
	require.Len(t, found.Images, 1)
	assert.Equal(t, "https://cdn.example.com/new.png", found.Images[0].URL)
	require.Len(t, found.Variants, 2)
	assert.Equal(t, "ROJO", found.Variants[0].Color)
	assert.Equal(t, 8, found.TotalStock())
}

func TestProductRepository_DecrementVariantStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	product := seedProduct(t, db, "Polo Goku", category.ID, 5)
	variantID := product.Variants[0].ID

	require.NoError(t, repo.DecrementVariantStock(ctx, product.ID, variantID, 3))

	err := repo.DecrementVariantStock(ctx, product.ID, variantID, 3)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	found, err := repo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Variants[0].Stock)
}

func TestProductRepository_DecrementVariantStock_WrongProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	first := seedProduct(t, db, "Polo Goku", category.ID, 5)
	second := seedProduct(t, db, "Polo Luffy", category.ID, 5)

	err := repo.DecrementVariantStock(ctx, second.ID, first.Variants[0].ID, 1)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
}

func TestProductRepository_FindProductsByIDsKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	category := seedCategory(t, db, "Polos")
	first := seedProduct(t, db, "Polo A", category.ID, 1)
	second := seedProduct(t, db, "Polo B", category.ID, 1)

	products, err := repo.FindProductsByIDs(context.Background(), []uint64{second.ID, 9999, first.ID})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID)
	assert.Equal(t, first.ID, products[1].ID)
}

func TestCategoryRepository_DeleteInUse(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Polos")
	product := seedProduct(t, db, "Polo Goku", category.ID, 1)

	count, err := productRepo.CountProductsByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = categoryRepo.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, repository.ErrStillReferenced)

	require.NoError(t, productRepo.DeleteProduct(ctx, product.ID))
	require.NoError(t, categoryRepo.DeleteCategory(ctx, category.ID))

	_, err = categoryRepo.FindCategoryByID(ctx, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "Polos")

	err := NewCategoryRepository(db).CreateCategory(context.Background(), &entity.Category{Name: "Polos"})
	assert.ErrorIs(t, err, repository.ErrDuplicateName)
}

func TestBrandRepository_ExistsByNameIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBrand(ctx, &entity.Brand{Name: "Bandai"}))

	exists, err := repo.ExistsBrandByName(ctx, "BANDAI")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBrandByName(ctx, "Funko")
	require.NoError(t, err)
	assert.False(t, exists)
}
