package impl

import (
	"context"
	"testing"

	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	mockSvc "geekstore/internal/mocks/service"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testPaymentService struct {
	service usecase.PaymentUsecase
	orders  *testOrderService
	gateway *mockSvc.MockPaymentGateway
	qrCode  *mockSvc.MockQRCodeService
}

func createTestPaymentService(t *testing.T) *testPaymentService {
	orders := createTestOrderService(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	return &testPaymentService{
		service: NewPaymentService(PaymentServiceParams{
			Gateway: gateway,
			Orders:  orders.service,
			QRCode:  qrCode,
			Logger:  newDiscardLogger(),
		}),
		orders:  orders,
		gateway: gateway,
		qrCode:  qrCode,
	}
}

func paymentInput(items ...usecase.OrderItemInput) *usecase.ProcessPaymentInput {
	return &usecase.ProcessPaymentInput{
		Token:           "card-token",
		Amount:          decimal.RequireFromString("199.999"),
		PaymentMethodID: "visa",
		PayerEmail:      "buyer@example.com",
		Installments:    1,
		Items:           items,
	}
}

func TestPaymentService_ProcessPayment_ApprovedCreatesOrder(t *testing.T) {
	s := createTestPaymentService(t)
	product := s.orders.store.seedProduct(t, "Figura Sanji", s.orders.category.ID, 200, 3)

	s.gateway.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(req *service.ChargeRequest) bool {
		return req.Token == "card-token" &&
			req.Amount.Equal(decimal.NewFromInt(200)) &&
			req.Description == chargeDescription &&
			req.Installments == 1 &&
			req.PaymentMethodID == "visa" &&
			req.PayerEmail == "buyer@example.com"
	})).Return(&service.ChargeResult{ID: 555, Status: service.PaymentStatusApproved, StatusDetail: "accredited"}, nil)

	result, err := s.service.ProcessPayment(context.Background(), s.orders.buyer.ID, paymentInput(itemFor(product, 1)))
	require.NoError(t, err)

	assert.True(t, result.Approved)
	assert.Equal(t, int64(555), result.PaymentID)
	require.NotNil(t, result.Order)
	assert.Equal(t, "200.00", result.Order.Total.StringFixed(2))
	assert.Empty(t, result.OrderStatus)
	assert.Equal(t, 2, s.orders.store.variantStock(t, product.ID))
}

func TestPaymentService_ProcessPayment_NotApproved(t *testing.T) {
	s := createTestPaymentService(t)
	product := s.orders.store.seedProduct(t, "Figura Robin", s.orders.category.ID, 200, 3)

	s.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(&service.ChargeResult{ID: 556, Status: "rejected", StatusDetail: "cc_rejected_insufficient_amount"}, nil)

	result, err := s.service.ProcessPayment(context.Background(), s.orders.buyer.ID, paymentInput(itemFor(product, 1)))
	require.NoError(t, err)

	assert.False(t, result.Approved)
	assert.Equal(t, "cc_rejected_insufficient_amount", result.StatusDetail)
	assert.Nil(t, result.Order)
	assert.Equal(t, 3, s.orders.store.variantStock(t, product.ID))
}

func TestPaymentService_ProcessPayment_ApprovedButOrderFails(t *testing.T) {
	s := createTestPaymentService(t)
	product := s.orders.store.seedProduct(t, "Figura Chopper", s.orders.category.ID, 200, 1)

	s.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(&service.ChargeResult{ID: 557, Status: service.PaymentStatusApproved}, nil)

	result, err := s.service.ProcessPayment(context.Background(), s.orders.buyer.ID, paymentInput(itemFor(product, 2)))
	require.NoError(t, err)

	assert.True(t, result.Approved)
	assert.Nil(t, result.Order)
	assert.Equal(t, usecase.OrderStatusPendingSync, result.OrderStatus)
	assert.Equal(t, 1, s.orders.store.variantStock(t, product.ID))
}

func TestPaymentService_ProcessPayment_GatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		gatewayErr error
		wantErr    error
	}{
		{"gateway unreachable", errors.Wrap(service.ErrPaymentGatewayUnavailable, "dial tcp"), domainerrors.ErrPaymentGatewayUnavailable},
		{"charge refused", errors.Wrap(service.ErrPaymentRejected, "bad token"), domainerrors.ErrPaymentRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mockSvc.NewMockPaymentGateway(t)
			gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(nil, tt.gatewayErr)

			srv := NewPaymentService(PaymentServiceParams{Gateway: gateway, Logger: newDiscardLogger()})

			_, err := srv.ProcessPayment(context.Background(), 1, paymentInput())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_GeneratePaymentQR(t *testing.T) {
	qrCode := mockSvc.NewMockQRCodeService(t)
	srv := NewPaymentService(PaymentServiceParams{QRCode: qrCode, Logger: newDiscardLogger()})
	ctx := context.Background()

	qrCode.EXPECT().GeneratePaymentQR(mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.RequireFromString("45.50"))
	})).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
	png, err := srv.GeneratePaymentQR(ctx, decimal.RequireFromString("45.499"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = srv.GeneratePaymentQR(ctx, decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	qrCode.EXPECT().GeneratePaymentQR(mock.Anything).Return(nil, errors.New("encoder failed")).Once()
	_, err = srv.GeneratePaymentQR(ctx, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
