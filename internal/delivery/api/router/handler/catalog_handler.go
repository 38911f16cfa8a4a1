package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	BrandUC    usecase.BrandUsecase
	Logger     *slog.Logger
}

// CatalogHandler serves categories and brands.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	brandUC    usecase.BrandUsecase
	logger     *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		brandUC:    params.BrandUC,
		logger:     params.Logger,
	}
}

// CategoryRequest represents the request body for a category
type CategoryRequest struct {
	Name        string `json:"nombre" validate:"required,notblank,min=3,max=50"`
	Description string `json:"descripcion" validate:"max=200"`
}

// BrandRequest represents the request body for a brand
type BrandRequest struct {
	Name string `json:"nombre" validate:"required,notblank"`
}

// ListCategories returns every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(categories, toCategoryResponse))
}

// GetCategory returns one category
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// CreateCategory adds a category
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

// UpdateCategory renames or redescribes a category
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory removes a category without products
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListBrands returns every brand
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(brands, toBrandResponse))
}

// GetBrand returns one brand
func (h *CatalogHandler) GetBrand(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	brand, err := h.brandUC.GetBrand(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(brand))
}

// CreateBrand adds a brand
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	brand, err := h.brandUC.CreateBrand(c.Request().Context(), &usecase.BrandInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBrandResponse(brand))
}

// UpdateBrand renames a brand
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	brand, err := h.brandUC.UpdateBrand(c.Request().Context(), id, &usecase.BrandInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(brand))
}

// DeleteBrand removes a brand without products
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.brandUC.DeleteBrand(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
