package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/response"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	orderFormField = "order"
	fileFormField  = "file"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order placement and fulfilment.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line of an order
type OrderItemRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	VariantID uint64 `json:"variantId" validate:"required"`
	Quantity  int    `json:"cantidad" validate:"gt=0"`
}

// ShippingAddressRequest is the destination of an order
type ShippingAddressRequest struct {
	Street     string `json:"calle" validate:"required,notblank"`
	City       string `json:"ciudad" validate:"required,notblank"`
	State      string `json:"estado" validate:"required,notblank"`
	PostalCode string `json:"codigoPostal" validate:"required,min=3,max=10"`
	Country    string `json:"pais" validate:"required,notblank"`
}

// ManualOrderRequest is the JSON part of a manual order upload
type ManualOrderRequest struct {
	Items         []OrderItemRequest      `json:"items" validate:"min=1,dive"`
	Shipping      *ShippingAddressRequest `json:"direccion" validate:"required"`
	PaymentMethod string                  `json:"metodoPago" validate:"omitempty,oneof=YAPE_QR"`
	OperationCode string                  `json:"codOperacion" validate:"max=50"`
}

// TrackingRequest carries the courier data of a shipment
type TrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required,notblank"`
	CourierName    string `json:"courierName"`
}

// CreateManualOrder places an order paid by wallet transfer; the proof screenshot is optional
func (h *OrderHandler) CreateManualOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	raw, err := readOrderPart(c)
	if err != nil {
		return response.InvalidInput(c, "Falta la parte 'order' del formulario")
	}

	var req ManualOrderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	proof, closeProof, err := openProof(c)
	if err != nil {
		return response.InvalidInput(c, "No se pudo leer el comprobante")
	}
	defer closeProof()

	order, err := h.orderUC.CreateManualOrder(c.Request().Context(), userID, &usecase.ManualOrderInput{
		Items:         toOrderItemInputs(req.Items),
		Shipping:      req.Shipping.toEntity(),
		OperationCode: req.OperationCode,
		Proof:         proof,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}

// ListMyOrders returns the caller's orders
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(orders, toOrderResponse))
}

// ListAllOrders returns every order, newest first
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(orders, toOrderResponse))
}

// UpdateStatus sets the status given in the status query parameter
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// AddTracking stores courier data and ships the order
func (h *OrderHandler) AddTracking(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req TrackingRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.AddTracking(c.Request().Context(), id, &usecase.TrackingInput{
		TrackingNumber: req.TrackingNumber,
		CourierName:    req.CourierName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// readOrderPart accepts the order JSON either as a form value or as a file part.
func readOrderPart(c echo.Context) ([]byte, error) {
	if value := c.FormValue(orderFormField); value != "" {
		return []byte(value), nil
	}

	header, err := c.FormFile(orderFormField)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// openProof returns the optional payment proof. The returned func closes it.
func openProof(c echo.Context) (*service.UploadFile, func(), error) {
	header, err := c.FormFile(fileFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, errors.WithStack(err)
	}

	upload, f, err := toUploadFile(header)
	if err != nil {
		return nil, func() {}, err
	}

	return upload, func() { _ = f.Close() }, nil
}

func toUploadFile(header *multipart.FileHeader) (*service.UploadFile, multipart.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return &service.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     f,
	}, f, nil
}

func toOrderItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.OrderItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return out
}

func (r *ShippingAddressRequest) toEntity() *entity.ShippingAddress {
	if r == nil {
		return nil
	}

	return &entity.ShippingAddress{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}
