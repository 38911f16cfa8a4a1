package qrcode

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "987654321")
			qrBytes, err := service.GeneratePaymentQR(decimal.RequireFromString("120.5"))
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{0, 128, 512} {
		service := NewQRCodeService(size, "M", "987654321")

		qrBytes, err := service.GeneratePaymentQR(decimal.RequireFromString("49.9"))
		require.NoError(t, err)
		assertPNG(t, qrBytes)
	}
}

func TestQRCodeService_GeneratePaymentQR_MissingPhone(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GeneratePaymentQR(decimal.NewFromInt(10))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
}

func TestQRCodeService_GeneratePaymentQR_InvalidAmount(t *testing.T) {
	service := NewQRCodeService(256, "M", "987654321")

	_, err := service.GeneratePaymentQR(decimal.Zero)
	assert.Error(t, err)

	_, err = service.GeneratePaymentQR(decimal.RequireFromString("-5"))
	assert.ErrorContains(t, err, "-5.00")
}
