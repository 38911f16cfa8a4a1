package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog and its administration.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// VariantRequest is one color/size combination of a product
type VariantRequest struct {
	Color    string `json:"color" validate:"required,notblank"`
	ColorHex string `json:"colorHex" validate:"required,notblank"`
	Size     string `json:"talla" validate:"required,notblank"`
	Stock    *int   `json:"stock" validate:"required,gte=0"`
}

// ProductRequest represents the request body for creating or replacing a product
type ProductRequest struct {
	Name        string           `json:"nombre" validate:"required,notblank,max=255"`
	Description string           `json:"descripcion" validate:"max=2000"`
	Price       decimal.Decimal  `json:"precio" validate:"gt=0"`
	Discount    int              `json:"descuento" validate:"gte=0,lte=100"`
	Images      []string         `json:"images" validate:"min=1"`
	CategoryID  uint64           `json:"categoryId" validate:"required"`
	BrandID     int64            `json:"brandId"`
	Gender      string           `json:"genero"`
	Featured    bool             `json:"featured"`
	Variants    []VariantRequest `json:"variantes" validate:"min=1,dive"`
}

// ProductQuery holds the filters of the catalog listing
type ProductQuery struct {
	Page       int    `query:"page"`
	Size       int    `query:"size"`
	Keyword    string `query:"keyword"`
	CategoryID uint64 `query:"categoryId"`
	BrandID    uint64 `query:"brandId"`
	Gender     string `query:"gender"`
}

// ListProducts returns a filtered page of products sorted by name
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var query ProductQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return invalidInput(c)
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), &usecase.ProductQuery{
		Page:       repository.PageRequest{Page: query.Page, Size: query.Size},
		Keyword:    query.Keyword,
		CategoryID: query.CategoryID,
		BrandID:    query.BrandID,
		Gender:     query.Gender,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, toProductResponse))
}

// GetProduct returns one product with images, variants, category and brand
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetFeaturedProduct returns the featured product or 204 when there is none
func (h *ProductHandler) GetFeaturedProduct(c echo.Context) error {
	product, err := h.productUC.GetFeaturedProduct(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if product == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// ListProductsByCategory returns every product of a category
func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return invalidID(c)
	}

	products, err := h.productUC.ListProductsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(products, toProductResponse))
}

// CreateProduct adds a product to the catalog
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct replaces a product, its images and its variants
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	input := &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Discount:    r.Discount,
		Featured:    r.Featured,
		Gender:      r.Gender,
		CategoryID:  r.CategoryID,
		ImageURLs:   r.Images,
		Variants:    make([]usecase.VariantInput, 0, len(r.Variants)),
	}
	// Zero or negative brand ids clear the brand.
	if r.BrandID > 0 {
		input.BrandID = uint64(r.BrandID)
	}
	for _, v := range r.Variants {
		input.Variants = append(input.Variants, usecase.VariantInput{
			Color:    v.Color,
			ColorHex: v.ColorHex,
			Size:     v.Size,
			Stock:    *v.Stock,
		})
	}

	return input
}
