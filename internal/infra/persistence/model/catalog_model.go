package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:varchar(200)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uint64                `gorm:"primaryKey;autoIncrement"`
	Name        string                `gorm:"type:varchar(255);not null;index"`
	Description string                `gorm:"type:varchar(2000)"`
	Price       decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
	Discount    int                   `gorm:"not null"`
	Featured    bool                  `gorm:"not null;index"`
	Gender      string                `gorm:"type:varchar(20)"`
	CategoryID  uint64                `gorm:"not null;index"`
	Category    *CategoryModel        `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	BrandID     *uint64               `gorm:"index"`
	Brand       *BrandModel           `gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	Images      []ProductImageModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProductID uint64 `gorm:"not null;index"`
	URL       string `gorm:"column:url;type:varchar(1024);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductVariantModel mirrors the 'product_variants' table.
type ProductVariantModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProductID uint64 `gorm:"not null;index"`
	Color     string `gorm:"type:varchar(50);not null"`
	ColorHex  string `gorm:"type:varchar(20);not null"`
	Size      string `gorm:"type:varchar(20);not null"`
	Stock     int    `gorm:"not null;check:stock >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
