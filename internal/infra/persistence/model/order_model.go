package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The shipping address is embedded as nullable columns.
type OrderModel struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	UserID         uint64          `gorm:"not null;index"`
	User           *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	CreatedAt      time.Time       `gorm:"index"`
	Status         string          `gorm:"type:varchar(20);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TrackingNumber string          `gorm:"type:varchar(100)"`
	CourierName    string          `gorm:"type:varchar(100)"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null"`
	OperationCode  string          `gorm:"type:varchar(100)"`
	ProofURL       string          `gorm:"type:varchar(1024)"`

	ShippingStreet     *string `gorm:"type:varchar(255)"`
	ShippingCity       *string `gorm:"type:varchar(100)"`
	ShippingState      *string `gorm:"type:varchar(100)"`
	ShippingPostalCode *string `gorm:"type:varchar(20)"`
	ShippingCountry    *string `gorm:"type:varchar(100)"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name, price, color and size are snapshots.
type OrderItemModel struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `gorm:"not null;index"`
	ProductID   *uint64         `gorm:"index"`
	Product     *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	VariantID   uint64          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ProductName string          `gorm:"type:varchar(255)"`
	Color       string          `gorm:"type:varchar(50)"`
	Size        string          `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
