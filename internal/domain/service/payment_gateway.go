package service

import (
	"context"

	"geekstore/internal/errors"

	"github.com/shopspring/decimal"
)

// Payment statuses reported by the gateway.
const (
	PaymentStatusApproved = "approved"
)

var (
	// ErrPaymentRejected is returned when the gateway refuses the charge request.
	ErrPaymentRejected = errors.New("payment rejected by gateway")
	// ErrPaymentGatewayUnavailable is returned when the gateway cannot be reached or fails.
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
)

// ChargeRequest describes a card charge.
type ChargeRequest struct {
	Token           string
	Amount          decimal.Decimal
	Description     string
	Installments    int
	PaymentMethodID string
	PayerEmail      string
}

// ChargeResult is the gateway's view of a charge.
type ChargeResult struct {
	ID           int64
	Status       string
	StatusDetail string
}

// Approved reports whether the charge succeeded.
func (r *ChargeResult) Approved() bool {
	return r.Status == PaymentStatusApproved
}

// PaymentGateway charges cards through an external processor.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
