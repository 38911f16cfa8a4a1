package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/response"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves card payments and the wallet QR.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PaymentRequest is a card payment together with the order it pays for
type PaymentRequest struct {
	Token           string                  `json:"token" validate:"required,notblank"`
	Amount          decimal.Decimal         `json:"transactionAmount" validate:"gt=0"`
	PaymentMethodID string                  `json:"paymentMethodId" validate:"required,notblank"`
	PayerEmail      string                  `json:"payerEmail" validate:"required,email"`
	Installments    int                     `json:"installments" validate:"gte=0"`
	Items           []OrderItemRequest      `json:"items" validate:"dive"`
	Shipping        *ShippingAddressRequest `json:"direccion" validate:"required"`
}

// PaymentResponse reports the charge and, when relevant, the order sync state
type PaymentResponse struct {
	Status       string `json:"status"`
	ID           int64  `json:"id"`
	StatusDetail string `json:"status_detail,omitempty"`
	OrderStatus  string `json:"order_status,omitempty"`
	OrderID      uint64 `json:"order_id,omitempty"`
	Message      string `json:"message,omitempty"`
}

// ProcessPayment charges the card and creates the order when approved
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	installments := req.Installments
	if installments <= 0 {
		installments = 1
	}

	result, err := h.paymentUC.ProcessPayment(c.Request().Context(), userID, &usecase.ProcessPaymentInput{
		Token:           req.Token,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		PayerEmail:      req.PayerEmail,
		Installments:    installments,
		Items:           toOrderItemInputs(req.Items),
		Shipping:        req.Shipping.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Approved {
		return response.PaymentNotApproved(c, PaymentResponse{
			Status:       result.Status,
			ID:           result.PaymentID,
			StatusDetail: result.StatusDetail,
		})
	}

	resp := PaymentResponse{
		Status:       result.Status,
		ID:           result.PaymentID,
		StatusDetail: result.StatusDetail,
	}
	if result.OrderStatus == usecase.OrderStatusPendingSync {
		resp.StatusDetail = ""
		resp.OrderStatus = usecase.OrderStatusPendingSync
		resp.Message = "Pago procesado, estamos validando tu orden."
	}
	if result.Order != nil {
		resp.OrderID = result.Order.ID
	}

	return response.Success(c, http.StatusOK, resp)
}

// GenerateYapeQR returns a PNG QR to pay the amount query parameter with the store wallet
func (h *PaymentHandler) GenerateYapeQR(c echo.Context) error {
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return response.InvalidField(c, "amount", "debe ser un número")
	}

	png, err := h.paymentUC.GeneratePaymentQR(c.Request().Context(), amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
