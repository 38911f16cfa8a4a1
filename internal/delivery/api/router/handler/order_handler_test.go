package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	mocks "geekstore/internal/mocks/usecase"
	"geekstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const manualOrderJSON = `{
	"items": [{"productId": 11, "variantId": 21, "cantidad": 2}],
	"direccion": {"calle": "Av. Arequipa 123", "ciudad": "Lima", "estado": "Lima", "codigoPostal": "15001", "pais": "Peru"},
	"metodoPago": "YAPE_QR",
	"codOperacion": "OP-778899"
}`

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mocks.MockOrderUsecase) {
	orderUC := mocks.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func sampleOrder(status entity.OrderStatus) *entity.Order {
	productID := uint64(11)

	return &entity.Order{
		ID:            501,
		UserID:        7,
		UserEmail:     "ana@example.com",
		CreatedAt:     time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC),
		Status:        status,
		Total:         decimal.NewFromInt(170),
		PaymentMethod: entity.PaymentMethodManual,
		OperationCode: "OP-778899",
		Shipping: &entity.ShippingAddress{
			Street:     "Av. Arequipa 123",
			City:       "Lima",
			State:      "Lima",
			PostalCode: "15001",
			Country:    "Peru",
		},
		Items: []entity.OrderItem{
			{ID: 1, ProductID: &productID, VariantID: 21, Quantity: 2, UnitPrice: decimal.NewFromInt(85), ProductName: "Polo Zelda", Color: "NEGRO", Size: "M"},
		},
	}
}

func TestOrderHandler_CreateManualOrder_WithProof(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().CreateManualOrder(mock.Anything, uint64(7), mock.Anything).
		Run(func(_ context.Context, _ uint64, input *usecase.ManualOrderInput) {
			require.Len(t, input.Items, 1)
			assert.Equal(t, usecase.OrderItemInput{ProductID: 11, VariantID: 21, Quantity: 2}, input.Items[0])
			assert.Equal(t, "Lima", input.Shipping.City)
			assert.Equal(t, "OP-778899", input.OperationCode)

			require.NotNil(t, input.Proof)
			assert.Equal(t, "voucher.png", input.Proof.Filename)
			content, err := io.ReadAll(input.Proof.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), content)
		}).
		Return(sampleOrder(entity.OrderStatusAwaitingReview), nil)

	c, rec := newMultipartContext(t, "/api/v1/orders/create-manual",
		map[string]string{orderFormField: manualOrderJSON},
		[]formFile{{field: fileFormField, filename: "voucher.png", content: []byte("png-bytes")}},
		7,
	)

	require.NoError(t, h.CreateManualOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode[OrderResponse](t, rec)
	assert.Equal(t, "POR_CONFIRMAR", body.Data.Status)
	assert.Equal(t, "YAPE_QR", body.Data.PaymentMethod)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Polo Zelda", body.Data.Items[0].ProductName)
}

func TestOrderHandler_CreateManualOrder_OrderAsFilePartWithoutProof(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().CreateManualOrder(mock.Anything, uint64(7), mock.Anything).
		Run(func(_ context.Context, _ uint64, input *usecase.ManualOrderInput) {
			assert.Nil(t, input.Proof)
		}).
		Return(sampleOrder(entity.OrderStatusPending), nil)

	c, rec := newMultipartContext(t, "/api/v1/orders/create-manual", nil,
		[]formFile{{field: orderFormField, filename: "order.json", content: []byte(manualOrderJSON)}},
		7,
	)

	require.NoError(t, h.CreateManualOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_CreateManualOrder_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		userID     uint64
		setup      func(orderUC *mocks.MockOrderUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "anonymous",
			values:     map[string]string{orderFormField: manualOrderJSON},
			setup:      func(*mocks.MockOrderUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "missing order part",
			values:     map[string]string{"other": "x"},
			userID:     7,
			setup:      func(*mocks.MockOrderUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "no items",
			values:     map[string]string{orderFormField: `{"items": [], "direccion": {"calle": "a", "ciudad": "b", "estado": "c", "codigoPostal": "15001", "pais": "d"}}`},
			userID:     7,
			setup:      func(*mocks.MockOrderUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "card payment method on manual endpoint",
			values:     map[string]string{orderFormField: strings.Replace(manualOrderJSON, `"YAPE_QR"`, `"MERCADO_PAGO"`, 1)},
			userID:     7,
			setup:      func(*mocks.MockOrderUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:   "insufficient stock",
			values: map[string]string{orderFormField: manualOrderJSON},
			userID: 7,
			setup: func(orderUC *mocks.MockOrderUsecase) {
				orderUC.EXPECT().CreateManualOrder(mock.Anything, uint64(7), mock.Anything).
					Return(nil, domainerrors.ErrInsufficientStock.WithMessage("Stock insuficiente para Polo Zelda (M)"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INSUFFICIENT_STOCK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderUC := createTestOrderHandler(t)
			tt.setup(orderUC)

			c, rec := newMultipartContext(t, "/api/v1/orders/create-manual", tt.values, nil, tt.userID)

			require.NoError(t, h.CreateManualOrder(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode[any](t, rec).Error.Code)
		})
	}
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().ListMyOrders(mock.Anything, uint64(7)).
		Return([]*entity.Order{sampleOrder(entity.OrderStatusPaid)}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/orders/me", nil, 7)

	require.NoError(t, h.ListMyOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":170.00`)
	assert.Contains(t, rec.Body.String(), `"precioUnitario":85.00`)

	body := decode[[]OrderResponse](t, rec)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Av. Arequipa 123, Lima, Lima - 15001 (Peru)", body.Data[0].ShippingAddress)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	h, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().UpdateStatus(mock.Anything, uint64(501), "pagado").
		Return(sampleOrder(entity.OrderStatusPaid), nil)

	c, rec := newJSONContext(t, http.MethodPut, "/api/v1/orders/501/status?status=pagado", nil, 1)
	c.SetParamNames("id")
	c.SetParamValues("501")

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PAGADO", decode[OrderResponse](t, rec).Data.Status)
}

func TestOrderHandler_AddTracking(t *testing.T) {
	t.Run("shipped", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)

		shipped := sampleOrder(entity.OrderStatusShipped)
		shipped.TrackingNumber = "OLV-123"
		shipped.CourierName = "Olva"
		orderUC.EXPECT().AddTracking(mock.Anything, uint64(501), &usecase.TrackingInput{
			TrackingNumber: "OLV-123",
			CourierName:    "Olva",
		}).Return(shipped, nil)

		c, rec := newJSONContext(t, http.MethodPut, "/api/v1/orders/501/tracking", map[string]string{
			"trackingNumber": "OLV-123",
			"courierName":    "Olva",
		}, 1)
		c.SetParamNames("id")
		c.SetParamValues("501")

		require.NoError(t, h.AddTracking(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode[OrderResponse](t, rec)
		assert.Equal(t, "ENVIADO", body.Data.Status)
		assert.Equal(t, "OLV-123", body.Data.TrackingNumber)
	})

	t.Run("unknown order", func(t *testing.T) {
		h, orderUC := createTestOrderHandler(t)
		orderUC.EXPECT().AddTracking(mock.Anything, uint64(9), mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)

		c, rec := newJSONContext(t, http.MethodPut, "/api/v1/orders/9/tracking", map[string]string{
			"trackingNumber": "OLV-123",
		}, 1)
		c.SetParamNames("id")
		c.SetParamValues("9")

		require.NoError(t, h.AddTracking(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
