package service

import "github.com/shopspring/decimal"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code that lets the buyer pay amount to the store wallet
	GeneratePaymentQR(amount decimal.Decimal) ([]byte, error)
}
