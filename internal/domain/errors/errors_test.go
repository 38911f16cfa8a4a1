package errors

import (
	"net/http"
	"testing"

	"geekstore/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	custom := ErrProductNotFound.WithMessage("Producto no encontrado con id: 7")
	wrapped := errors.Wrap(custom, "lookup failed")

	assert.ErrorIs(t, wrapped, ErrProductNotFound)
	assert.NotErrorIs(t, wrapped, ErrCategoryNotFound)
	assert.Equal(t, "Producto no encontrado con id: 7", custom.Message())
	assert.Equal(t, http.StatusNotFound, custom.HTTPCode())
	assert.Equal(t, ErrProductNotFound.ErrorCode(), custom.ErrorCode())

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "Producto no encontrado con id: 7", appErr.Message())
}

func TestBaseError_SharedCodesStayDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, ErrWrongPassword.WithDetails("x").WithMessage("y"), ErrWrongPassword)
}
