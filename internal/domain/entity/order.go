package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle tag of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDIENTE"
	OrderStatusAwaitingReview OrderStatus = "POR_CONFIRMAR"
	OrderStatusPaid           OrderStatus = "PAGADO"
	OrderStatusShipped        OrderStatus = "ENVIADO"
	OrderStatusDelivered      OrderStatus = "ENTREGADO"
	OrderStatusCancelled      OrderStatus = "CANCELADO"
)

// PaymentMethod records how the order was paid.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "MERCADO_PAGO"
	PaymentMethodManual PaymentMethod = "YAPE_QR"
)

// ShippingAddress is the destination copied onto the order.
type ShippingAddress struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// String renders the address the way it is shown to customers.
func (a ShippingAddress) String() string {
	return fmt.Sprintf("%s, %s, %s - %s (%s)", a.Street, a.City, a.State, a.PostalCode, a.Country)
}

// Order is a purchase. Items snapshot product data at purchase time.
type Order struct {
	ID             uint64
	UserID         uint64
	UserEmail      string
	UserName       string
	CreatedAt      time.Time
	Status         OrderStatus
	Total          decimal.Decimal
	TrackingNumber string
	CourierName    string
	PaymentMethod  PaymentMethod
	OperationCode  string
	ProofURL       string
	Shipping       *ShippingAddress
	Items          []OrderItem
}

// OrderItem is a purchased line. Name, color, size and unit price are snapshots.
type OrderItem struct {
	ID          uint64
	OrderID     uint64
	ProductID   *uint64 // nil once the product is deleted
	VariantID   uint64
	Quantity    int
	UnitPrice   decimal.Decimal
	ProductName string
	Color       string
	Size        string
}

// Subtotal is UnitPrice times Quantity, rounded to cents.
func (i OrderItem) Subtotal() decimal.Decimal {
	return RoundMoney(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
}

// ShippingLabel renders the shipping address or the store pickup label.
func (o *Order) ShippingLabel() string {
	if o.Shipping == nil {
		return "Recojo en tienda"
	}

	return o.Shipping.String()
}

// ApplyTracking stores tracking data and moves a paid or pending order to shipped.
func (o *Order) ApplyTracking(trackingNumber, courierName string) {
	o.TrackingNumber = trackingNumber
	o.CourierName = courierName

	if o.Status == OrderStatusPaid || o.Status == OrderStatusPending {
		o.Status = OrderStatusShipped
	}
}
