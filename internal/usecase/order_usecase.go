package usecase

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line of an order.
type OrderItemInput struct {
	ProductID uint64
	VariantID uint64
	Quantity  int
}

// ManualOrderInput is an order paid by wallet transfer and confirmed by an administrator.
type ManualOrderInput struct {
	Items         []OrderItemInput
	Shipping      *entity.ShippingAddress
	OperationCode string
	// Proof is the optional payment screenshot.
	Proof *service.UploadFile
}

// PaidOrderInput is an order whose card charge was already approved.
type PaidOrderInput struct {
	Items    []OrderItemInput
	Shipping *entity.ShippingAddress
	// TotalPaid is the amount charged, stored as the order total.
	TotalPaid decimal.Decimal
}

// TrackingInput carries the courier data of a shipment.
type TrackingInput struct {
	TrackingNumber string
	CourierName    string
}

// OrderUsecase defines order placement and fulfilment.
type OrderUsecase interface {
	CreateManualOrder(ctx context.Context, userID uint64, input *ManualOrderInput) (*entity.Order, error)
	CreatePaidOrder(ctx context.Context, userID uint64, input *PaidOrderInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uint64) ([]*entity.Order, error)
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
	// UpdateStatus stores the upper-cased status and mails the buyer only when it changed.
	UpdateStatus(ctx context.Context, orderID uint64, status string) (*entity.Order, error)
	// AddTracking stores courier data, ships paid or pending orders and always mails the buyer.
	AddTracking(ctx context.Context, orderID uint64, input *TrackingInput) (*entity.Order, error)
}
