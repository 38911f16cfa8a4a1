package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	mocks "geekstore/internal/mocks/usecase"
	"geekstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mocks.MockProductUsecase) {
	productUC := mocks.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func sampleProduct() *entity.Product {
	brandID := uint64(3)

	return &entity.Product{
		ID:         11,
		Name:       "Polo Zelda",
		Price:      decimal.NewFromInt(100),
		Discount:   15,
		Gender:     entity.GenderUnisex,
		CategoryID: 2,
		Category:   &entity.Category{ID: 2, Name: "Polos"},
		BrandID:    &brandID,
		Images: []entity.ProductImage{
			{ID: 1, URL: "https://cdn.example/zelda-1.png"},
			{ID: 2, URL: "https://cdn.example/zelda-2.png"},
		},
		Variants: []entity.ProductVariant{
			{ID: 21, Color: "NEGRO", ColorHex: "#000000", Size: "M", Stock: 4},
			{ID: 22, Color: "NEGRO", ColorHex: "#000000", Size: "L", Stock: 1},
		},
	}
}

func TestProductHandler_ListProducts_PassesFilters(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().ListProducts(mock.Anything, &usecase.ProductQuery{
		Page:       repository.PageRequest{Page: 1, Size: 5},
		Keyword:    "zelda",
		CategoryID: 2,
		BrandID:    3,
		Gender:     "Men",
	}).Return(&repository.Page[*entity.Product]{
		Items: []*entity.Product{sampleProduct()},
		Page:  1,
		Size:  5,
		Total: 6,
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products?page=1&size=5&keyword=zelda&categoryId=2&brandId=3&gender=Men", nil, 0)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode[PageResponse[ProductResponse]](t, rec)
	assert.Equal(t, int64(6), body.Data.TotalElements)
	assert.Equal(t, 2, body.Data.TotalPages)
	require.Len(t, body.Data.Content, 1)

	product := body.Data.Content[0]
	assert.Equal(t, "85.00", product.FinalPrice.String())
	assert.Equal(t, 5, product.TotalStock)
	assert.Equal(t, "https://cdn.example/zelda-1.png", product.ImageURL)
	assert.Equal(t, "Polos", product.CategoryName)
	assert.Equal(t, "Sin Marca", product.BrandName)
	assert.Len(t, product.Variants, 2)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().GetProduct(mock.Anything, uint64(99)).
		Return(nil, domainerrors.ErrProductNotFound.WithMessage("Producto no encontrado con id: 99"))

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products/99", nil, 0)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Producto no encontrado con id: 99", decode[any](t, rec).Error.Message)
}

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	h, _ := createTestProductHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products/abc", nil, 0)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetFeaturedProduct(t *testing.T) {
	t.Run("none featured", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		productUC.EXPECT().GetFeaturedProduct(mock.Anything).Return(nil, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products/featured", nil, 0)

		require.NoError(t, h.GetFeaturedProduct(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("featured", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		featured := sampleProduct()
		featured.Featured = true
		productUC.EXPECT().GetFeaturedProduct(mock.Anything).Return(featured, nil)

		c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products/featured", nil, 0)

		require.NoError(t, h.GetFeaturedProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[ProductResponse](t, rec).Data.Featured)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().CreateProduct(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.ProductInput) {
			assert.Equal(t, "Polo Zelda", input.Name)
			assert.True(t, decimal.RequireFromString("59.90").Equal(input.Price))
			assert.Equal(t, uint64(0), input.BrandID)
			assert.Equal(t, []string{"https://cdn.example/zelda-1.png"}, input.ImageURLs)
			require.Len(t, input.Variants, 1)
			assert.Equal(t, 0, input.Variants[0].Stock)
		}).
		Return(sampleProduct(), nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/products", map[string]any{
		"nombre":     "Polo Zelda",
		"precio":     59.90,
		"descuento":  15,
		"images":     []string{"https://cdn.example/zelda-1.png"},
		"categoryId": 2,
		"brandId":    -1,
		"genero":     "Men",
		"variantes": []map[string]any{
			{"color": "negro", "colorHex": "#000000", "talla": "m", "stock": 0},
		},
	}, 0)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_CreateProduct_Validation(t *testing.T) {
	h, _ := createTestProductHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/products", map[string]any{
		"nombre":     "Polo",
		"precio":     0,
		"descuento":  120,
		"images":     []string{},
		"categoryId": 2,
		"variantes":  []map[string]any{{"color": "", "colorHex": "#000000", "talla": "M"}},
	}, 0)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode[any](t, rec).Error.Details
	assert.Contains(t, details, "precio")
	assert.Contains(t, details, "descuento")
	assert.Contains(t, details, "images")
	assert.Contains(t, details, "variantes[0].color")
	assert.Contains(t, details, "variantes[0].stock")
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().DeleteProduct(mock.Anything, uint64(11)).Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/products/11", nil, 0)
	c.SetParamNames("id")
	c.SetParamValues("11")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductHandler_ListProductsByCategory(t *testing.T) {
	h, productUC := createTestProductHandler(t)

	productUC.EXPECT().ListProductsByCategory(mock.Anything, uint64(2)).Return([]*entity.Product{}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/products/category/2", nil, 0)
	c.SetParamNames("categoryId")
	c.SetParamValues("2")

	require.NoError(t, h.ListProductsByCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(decode[json.RawMessage](t, rec).Data))
}
