package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence. Returned orders carry their items
// and the buyer's email and name.
type OrderRepository interface {
	// CreateOrder inserts the order and its items.
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uint64) (*entity.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*entity.Order, error)
	// ListAllOrders returns every order, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
	// UpdateOrderFulfillment persists status and tracking fields.
	UpdateOrderFulfillment(ctx context.Context, order *entity.Order) error
}
