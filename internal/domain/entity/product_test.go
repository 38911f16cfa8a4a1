package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_FinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{"no discount", "59.90", 0, "59.90"},
		{"negative discount ignored", "59.90", -5, "59.90"},
		{"discount amount rounds half up", "10.05", 10, "9.04"},
		{"half discount", "10.03", 50, "5.01"},
		{"discount of 1.015", "10.15", 10, "9.13"},
		{"full discount", "35.00", 100, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: decimal.RequireFromString(tt.price), Discount: tt.discount}
			assert.Equal(t, tt.want, p.FinalPrice().StringFixed(2))
		})
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "1.01", RoundMoney(decimal.RequireFromString("1.005")).StringFixed(2))
	assert.Equal(t, "2.68", RoundMoney(decimal.RequireFromString("2.675")).StringFixed(2))
	assert.Equal(t, "-1.01", RoundMoney(decimal.RequireFromString("-1.005")).StringFixed(2))
	assert.Equal(t, "139.99", RoundMoney(decimal.RequireFromString("139.994")).StringFixed(2))
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{UnitPrice: decimal.RequireFromString("10.05"), Quantity: 3}

	assert.Equal(t, "30.15", item.Subtotal().StringFixed(2))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{" role_admin ", RoleAdmin},
		{"ROLE_USER", RoleUser},
		{"", RoleUser},
		{"superuser", RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, []string{"ROLE_USER"}, (&User{}).Roles().ToStrings())
	assert.Equal(t, []string{"ROLE_ADMIN"}, (&User{Role: RoleAdmin}).Roles().ToStrings())
}
