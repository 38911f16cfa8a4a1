package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type variantRequest struct {
	Color string `json:"color" validate:"notblank"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type productRequest struct {
	Name     string           `json:"nombre" validate:"required,notblank,max=10"`
	Email    string           `json:"email" validate:"omitempty,email"`
	Role     string           `json:"rol" validate:"omitempty,rol"`
	Price    decimal.Decimal  `json:"precio" validate:"gt=0"`
	Variants []variantRequest `json:"variantes" validate:"min=1,dive"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&productRequest{
		Name:     "Polo",
		Role:     "role_admin",
		Price:    decimal.NewFromInt(10),
		Variants: []variantRequest{{Color: "Rojo"}},
	})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&productRequest{
		Name:     "   ",
		Email:    "not-an-email",
		Role:     "SUPERUSER",
		Price:    decimal.Zero,
		Variants: []variantRequest{{Color: " ", Stock: -1}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "es obligatorio", verr.Fields["nombre"])
	assert.Equal(t, "formato de email inválido", verr.Fields["email"])
	assert.Equal(t, "el rol debe ser ADMIN o USER", verr.Fields["rol"])
	assert.Equal(t, "debe ser mayor que 0", verr.Fields["precio"])
	assert.Equal(t, "es obligatorio", verr.Fields["variantes[0].color"])
	assert.Equal(t, "debe ser mayor o igual a 0", verr.Fields["variantes[0].stock"])
}

func TestValidate_EmptyCollection(t *testing.T) {
	v := New()

	err := v.Validate(&productRequest{Name: "Polo", Price: decimal.NewFromInt(1)})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debe tener al menos 1 elemento(s)", verr.Fields["variantes"])
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"precio": "debe ser mayor que 0",
		"email":  "formato de email inválido",
	}}

	assert.Equal(t, "email: formato de email inválido; precio: debe ser mayor que 0", err.Error())
}

type claimRequest struct {
	Amount *decimal.Decimal `json:"monto" validate:"required,gte=0"`
}

func TestValidate_DecimalAmounts(t *testing.T) {
	v := New()
	zero := decimal.Zero
	negative := decimal.RequireFromString("-0.01")

	assert.NoError(t, v.Validate(&claimRequest{Amount: &zero}))

	var verr *ValidationError
	require.ErrorAs(t, v.Validate(&claimRequest{}), &verr)
	assert.Equal(t, "es obligatorio", verr.Fields["monto"])

	require.ErrorAs(t, v.Validate(&claimRequest{Amount: &negative}), &verr)
	assert.Equal(t, "debe ser mayor o igual a 0", verr.Fields["monto"])
}
