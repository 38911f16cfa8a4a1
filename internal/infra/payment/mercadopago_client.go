package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"geekstore/config"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.mercadopago.com"
	defaultTimeout = 20 * time.Second
	paymentsPath   = "/v1/payments"
)

type payerRequest struct {
	Email string `json:"email"`
}

type paymentRequest struct {
	TransactionAmount json.Number  `json:"transaction_amount"`
	Token             string       `json:"token"`
	Description       string       `json:"description"`
	Installments      int          `json:"installments"`
	PaymentMethodID   string       `json:"payment_method_id"`
	Payer             payerRequest `json:"payer"`
}

type paymentResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

type mercadoPagoGateway struct {
	client *resty.Client
	logger *slog.Logger
}

// GatewayParams holds dependencies for the payment gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMercadoPagoGateway creates a PaymentGateway backed by the Mercado Pago REST API
func NewMercadoPagoGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil || strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("payment.accessToken is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	params.Logger.Info("Payment gateway initialized", slog.String("base_url", baseURL))

	return &mercadoPagoGateway{
		client: client,
		logger: params.Logger,
	}, nil
}

// Charge creates a payment. Each call carries a fresh idempotency key.
func (g *mercadoPagoGateway) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	amount := entity.RoundMoney(req.Amount)
	body := paymentRequest{
		TransactionAmount: json.Number(amount.StringFixed(2)),
		Token:             req.Token,
		Description:       req.Description,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		Payer:             payerRequest{Email: req.PayerEmail},
	}

	g.logger.Info("Starting card payment",
		slog.String("payer_email", req.PayerEmail),
		slog.String("amount", amount.StringFixed(2)),
	)

	var result paymentResponse
	var apiErr apiError
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("X-Idempotency-Key", uuid.NewString()).
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post(paymentsPath)
	if err != nil {
		g.logger.Error("Payment gateway unreachable", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrPaymentGatewayUnavailable, err.Error())
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		g.logger.Error("Payment gateway failed",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)

		return nil, errors.Wrapf(service.ErrPaymentGatewayUnavailable, "status %d", resp.StatusCode())

	case resp.IsError():
		g.logger.Error("Payment rejected by gateway",
			slog.Int("status", resp.StatusCode()),
			slog.String("message", apiErr.Message),
		)

		return nil, errors.Wrapf(service.ErrPaymentRejected, "status %d: %s", resp.StatusCode(), apiErr.Message)
	}

	g.logger.Info("Payment processed",
		slog.Int64("payment_id", result.ID),
		slog.String("status", result.Status),
	)

	return &service.ChargeResult{
		ID:           result.ID,
		Status:       result.Status,
		StatusDetail: result.StatusDetail,
	}, nil
}
