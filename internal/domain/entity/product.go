package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Gender is the target audience of a product.
type Gender string

const (
	GenderMale   Gender = "HOMBRE"
	GenderFemale Gender = "MUJER"
	GenderUnisex Gender = "UNISEX"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	default:
		return false
	}
}

// ParseGender accepts the storefront's "Men"/"Women" labels as well as the enum names.
func ParseGender(s string) (Gender, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "Men"):
		return GenderMale, true
	case strings.EqualFold(s, "Women"):
		return GenderFemale, true
	}

	g := Gender(strings.ToUpper(s))

	return g, g.IsValid()
}

// Default labels for variants created without color or size.
const (
	DefaultVariantColor = "S/C"
	DefaultVariantSize  = "S/T"
)

// Product is a catalog item. Stock lives on its variants.
type Product struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Discount    int // percentage, 0..100
	Featured    bool
	Gender      Gender
	CategoryID  uint64
	BrandID     *uint64
	Category    *Category
	Brand       *Brand
	Images      []ProductImage
	Variants    []ProductVariant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductImage is one picture of a product.
type ProductImage struct {
	ID        uint64
	ProductID uint64
	URL       string
}

// ProductVariant is a color/size combination, the unit at which stock is tracked.
type ProductVariant struct {
	ID        uint64
	ProductID uint64
	Color     string
	ColorHex  string
	Size      string
	Stock     int
}

var hundred = decimal.NewFromInt(100)

// FinalPrice is the price after discount, the discount amount rounded half up to cents.
func (p *Product) FinalPrice() decimal.Decimal {
	if p.Discount <= 0 {
		return RoundMoney(p.Price)
	}

	discount := RoundMoney(p.Price.Mul(decimal.NewFromInt(int64(p.Discount))).Div(hundred))

	return RoundMoney(p.Price.Sub(discount))
}

// TotalStock sums stock across variants.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}

	return total
}

// MainImageURL returns the first image URL or "".
func (p *Product) MainImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0].URL
}

// FindVariant returns the variant with id, if it belongs to this product.
func (p *Product) FindVariant(id uint64) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}

	return nil, false
}

// RoundMoney rounds half up to cents.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
