package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geekstore/config"
	"geekstore/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) service.PaymentGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewMercadoPagoGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{
			BaseURL:     server.URL,
			AccessToken: "TEST-token",
			Timeout:     5 * time.Second,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return gateway
}

func newChargeRequest() *service.ChargeRequest {
	return &service.ChargeRequest{
		Token:           "card-token",
		Amount:          decimal.RequireFromString("50.125"),
		Description:     "Geek Store Order",
		Installments:    1,
		PaymentMethodID: "visa",
		PayerEmail:      "ana@example.com",
	}
}

func TestCharge_Approved(t *testing.T) {
	var body paymentRequest
	var idempotencyKey, auth string

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, paymentsPath, r.URL.Path)
		idempotencyKey = r.Header.Get("X-Idempotency-Key")
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1234,"status":"approved","status_detail":"accredited"}`))
	})

	result, err := gateway.Charge(context.Background(), newChargeRequest())
	require.NoError(t, err)

	assert.True(t, result.Approved())
	assert.Equal(t, int64(1234), result.ID)
	assert.Equal(t, "accredited", result.StatusDetail)

	assert.NotEmpty(t, idempotencyKey)
	assert.Equal(t, "Bearer TEST-token", auth)
	assert.Equal(t, json.Number("50.13"), body.TransactionAmount)
	assert.Equal(t, "ana@example.com", body.Payer.Email)
	assert.Equal(t, "visa", body.PaymentMethodID)
}

func TestCharge_UniqueIdempotencyKeys(t *testing.T) {
	keys := map[string]bool{}
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		keys[r.Header.Get("X-Idempotency-Key")] = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"status":"rejected","status_detail":"cc_rejected_other_reason"}`))
	})

	for i := 0; i < 3; i++ {
		result, err := gateway.Charge(context.Background(), newChargeRequest())
		require.NoError(t, err)
		assert.False(t, result.Approved())
	}
	assert.Len(t, keys, 3)
}

func TestCharge_ClientErrorIsRejection(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid card token","error":"bad_request","status":400}`))
	})

	_, err := gateway.Charge(context.Background(), newChargeRequest())
	assert.ErrorIs(t, err, service.ErrPaymentRejected)
	assert.Contains(t, err.Error(), "invalid card token")
}

func TestCharge_ServerErrorIsUnavailable(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := gateway.Charge(context.Background(), newChargeRequest())
	assert.ErrorIs(t, err, service.ErrPaymentGatewayUnavailable)
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{}},
		Logger: slog.Default(),
	})
	assert.Error(t, err)
}
