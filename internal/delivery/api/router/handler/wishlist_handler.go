package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/response"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves favorite products.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// ToggleResponse reports whether the product ended up in the wishlist
type ToggleResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// ToggleProduct adds the product to the wishlist or removes it when present
func (h *WishlistHandler) ToggleProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return invalidID(c)
	}

	added, err := h.wishlistUC.ToggleProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Producto eliminado de favoritos"
	if added {
		message = "Producto agregado a favoritos"
	}

	return response.Success(c, http.StatusOK, ToggleResponse{Message: message, Added: added})
}

// ListWishlist returns the caller's favorite products
func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	products, err := h.wishlistUC.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(products, toProductResponse))
}
