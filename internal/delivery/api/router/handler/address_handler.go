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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's saved addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for a saved address
type AddressRequest struct {
	Alias      string `json:"alias" validate:"required,notblank"`
	Department string `json:"departamento" validate:"required,notblank"`
	Province   string `json:"provincia" validate:"required,notblank"`
	District   string `json:"distrito" validate:"required,notblank"`
	Street     string `json:"direccion" validate:"required,notblank"`
	Reference  string `json:"referencia"`
	PostalCode string `json:"codigoPostal" validate:"required,notblank"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Alias:      r.Alias,
		Department: r.Department,
		Province:   r.Province,
		District:   r.District,
		Street:     r.Street,
		Reference:  r.Reference,
		PostalCode: r.PostalCode,
	}
}

// ListAddresses returns the caller's addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(addresses, toAddressResponse))
}

// CreateAddress saves a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// UpdateAddress edits one of the caller's addresses
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// DeleteAddress removes one of the caller's addresses
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
