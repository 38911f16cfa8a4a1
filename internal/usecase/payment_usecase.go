package usecase

import (
	"context"

	"geekstore/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderStatusPendingSync marks a charge whose order could not be stored.
const OrderStatusPendingSync = "pending_sync"

// ProcessPaymentInput is a card payment together with the order it pays for.
type ProcessPaymentInput struct {
	Token           string
	Amount          decimal.Decimal
	PaymentMethodID string
	PayerEmail      string
	Installments    int
	Items           []OrderItemInput
	Shipping        *entity.ShippingAddress
}

// PaymentResult tells the caller how the charge and the order went.
type PaymentResult struct {
	PaymentID    int64
	Status       string
	StatusDetail string
	Approved     bool
	// Order is set when the charge was approved and the order stored.
	Order *entity.Order
	// OrderStatus is OrderStatusPendingSync when the charge went through but the order did not.
	OrderStatus string
}

// PaymentUsecase defines card payments and the manual payment QR.
type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, userID uint64, input *ProcessPaymentInput) (*PaymentResult, error)
	// GeneratePaymentQR returns a PNG to pay amount with the store's wallet.
	GeneratePaymentQR(ctx context.Context, amount decimal.Decimal) ([]byte, error)
}
