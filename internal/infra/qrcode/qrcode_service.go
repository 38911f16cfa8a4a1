package qrcode

import (
	"encoding/json"

	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	paymentWallet   = "yape"
	paymentCurrency = "PEN"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	phone                string
}

// PaymentQRData is the payload encoded in the manual payment QR
type PaymentQRData struct {
	Wallet   string `json:"wallet"`
	Phone    string `json:"phone"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, phone string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		phone:                phone,
	}
}

// GeneratePaymentQR renders a PNG the customer scans with the wallet app to pay amount
func (s *qrcodeService) GeneratePaymentQR(amount decimal.Decimal) ([]byte, error) {
	if s.phone == "" {
		return nil, errors.New("payment phone is not configured")
	}
	if !amount.IsPositive() {
		return nil, errors.Errorf("invalid payment amount: %s", amount.StringFixed(2))
	}

	jsonData, err := json.Marshal(PaymentQRData{
		Wallet:   paymentWallet,
		Phone:    s.phone,
		Amount:   amount.StringFixed(2),
		Currency: paymentCurrency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
