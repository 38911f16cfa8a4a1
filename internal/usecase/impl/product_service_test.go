package impl

import (
	"context"
	"testing"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	mockRepo "geekstore/internal/mocks/repository"
	"geekstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *testStore) {
	store := newTestStore(t)

	srv := NewProductService(ProductServiceParams{
		TxManager:    store.txManager,
		ProductRepo:  store.products,
		CategoryRepo: store.categories,
		Logger:       newDiscardLogger(),
	})

	return srv, store
}

func productInput(name string, categoryID uint64) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:       name,
		Price:      decimal.RequireFromString("59.9"),
		Gender:     "Men",
		CategoryID: categoryID,
		ImageURLs:  []string{"https://cdn.example.com/a.png", "  ", "https://cdn.example.com/b.png"},
		Variants: []usecase.VariantInput{
			{Color: "rojo", ColorHex: "#ff0000", Size: "m", Stock: 4},
			{Stock: 2},
		},
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	srv, store := createTestProductService(t)
	ctx := context.Background()
	category := store.seedCategory(t, "Polos")
	brand := store.seedBrand(t, "Marvel")

	input := productInput("Polo Spider-Man", category.ID)
	input.BrandID = brand.ID
	product, err := srv.CreateProduct(ctx, input)
	require.NoError(t, err)

	stored, err := srv.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GenderMale, stored.Gender)
	require.NotNil(t, stored.BrandID)
	assert.Equal(t, brand.ID, *stored.BrandID)
	assert.Len(t, stored.Images, 2)
	require.Len(t, stored.Variants, 2)
	assert.Equal(t, 6, stored.TotalStock())

	labels := []string{stored.Variants[0].Color + "/" + stored.Variants[0].Size, stored.Variants[1].Color + "/" + stored.Variants[1].Size}
	assert.ElementsMatch(t, []string{"ROJO/M", "S/C/S/T"}, labels)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	srv, store := createTestProductService(t)
	ctx := context.Background()
	category := store.seedCategory(t, "Polos")

	badGender := productInput("Polo", category.ID)
	badGender.Gender = "otro"
	_, err := srv.CreateProduct(ctx, badGender)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.CreateProduct(ctx, productInput("Polo", 999))
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	missingBrand := productInput("Polo", category.ID)
	missingBrand.BrandID = 999
	_, err = srv.CreateProduct(ctx, missingBrand)
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestProductService_FeaturedIsExclusive(t *testing.T) {
	srv, store := createTestProductService(t)
	ctx := context.Background()
	category := store.seedCategory(t, "Figuras")

	featured, err := srv.GetFeaturedProduct(ctx)
	require.NoError(t, err)
	assert.Nil(t, featured)

	first := productInput("Figura Goku", category.ID)
	first.Featured = true
	goku, err := srv.CreateProduct(ctx, first)
	require.NoError(t, err)

	second := productInput("Figura Luffy", category.ID)
	luffy, err := srv.CreateProduct(ctx, second)
	require.NoError(t, err)

	featured, err = srv.GetFeaturedProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, goku.ID, featured.ID)

	second.Featured = true
	_, err = srv.UpdateProduct(ctx, luffy.ID, second)
	require.NoError(t, err)

	featured, err = srv.GetFeaturedProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, luffy.ID, featured.ID)

	reloaded, err := srv.GetProduct(ctx, goku.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Featured)
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	srv, store := createTestProductService(t)
	ctx := context.Background()
	category := store.seedCategory(t, "Tazas")
	product := store.seedProduct(t, "Taza Zelda", category.ID, 35, 10)

	input := productInput("Taza Zelda Edición", category.ID)
	input.Variants = []usecase.VariantInput{{Color: "blanco", Size: "unica", Stock: 7}}
	updated, err := srv.UpdateProduct(ctx, product.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Taza Zelda Edición", updated.Name)

	stored, err := srv.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, stored.Variants, 1)
	assert.Equal(t, "BLANCO", stored.Variants[0].Color)
	assert.Equal(t, 7, stored.Variants[0].Stock)

	_, err = srv.UpdateProduct(ctx, 999, input)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	require.NoError(t, srv.DeleteProduct(ctx, product.ID))
	_, err = srv.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = srv.DeleteProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProductsByCategory(t *testing.T) {
	srv, store := createTestProductService(t)
	ctx := context.Background()
	polos := store.seedCategory(t, "Polos")
	tazas := store.seedCategory(t, "Tazas")
	store.seedProduct(t, "Polo Naruto", polos.ID, 50, 1)
	store.seedProduct(t, "Taza Naruto", tazas.ID, 25, 1)

	products, err := srv.ListProductsByCategory(ctx, polos.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Polo Naruto", products[0].Name)

	_, err = srv.ListProductsByCategory(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_ListProducts_BuildsFilter(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	srv := NewProductService(ProductServiceParams{ProductRepo: mockProductRepo, Logger: newDiscardLogger()})

	tests := []struct {
		name       string
		query      usecase.ProductQuery
		wantFilter repository.ProductFilter
		wantPage   repository.PageRequest
	}{
		{
			name:       "keyword and gender alias",
			query:      usecase.ProductQuery{Keyword: "  goku ", Gender: "women", Page: repository.PageRequest{Page: 2, Size: 5}},
			wantFilter: repository.ProductFilter{Keyword: "goku", Gender: entity.GenderFemale},
			wantPage:   repository.PageRequest{Page: 2, Size: 5},
		},
		{
			name:       "unknown gender ignored",
			query:      usecase.ProductQuery{CategoryID: 3, BrandID: 4, Gender: "alien"},
			wantFilter: repository.ProductFilter{CategoryID: 3, BrandID: 4},
			wantPage:   repository.PageRequest{Page: 0, Size: repository.DefaultProductPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProductRepo.EXPECT().SearchProducts(mock.Anything, tt.wantFilter, tt.wantPage).
				Return(&repository.Page[*entity.Product]{}, nil).Once()

			_, err := srv.ListProducts(context.Background(), &tt.query)
			require.NoError(t, err)
		})
	}
}
