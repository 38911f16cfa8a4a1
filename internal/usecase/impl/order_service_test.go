package impl

import (
	"bytes"
	"context"
	"testing"

	"geekstore/internal/domain/constants"
	"geekstore/internal/domain/entity"
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

type testOrderService struct {
	service   usecase.OrderUsecase
	store     *testStore
	storage   *mockSvc.MockFileStorage
	published *[]*entity.MailEvent
	buyer     *entity.User
	category  *entity.Category
}

func createTestOrderService(t *testing.T) *testOrderService {
	store := newTestStore(t)
	storage := mockSvc.NewMockFileStorage(t)
	publisher, published := recordingPublisher(t)

	srv := NewOrderService(OrderServiceParams{
		TxManager: store.txManager,
		OrderRepo: store.orders,
		Storage:   storage,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return &testOrderService{
		service:   srv,
		store:     store,
		storage:   storage,
		published: published,
		buyer:     store.seedUser(t, "buyer@example.com", true),
		category:  store.seedCategory(t, "Polos"),
	}
}

func itemFor(product *entity.Product, quantity int) usecase.OrderItemInput {
	return usecase.OrderItemInput{ProductID: product.ID, VariantID: product.Variants[0].ID, Quantity: quantity}
}

func appErrorMessage(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)

	return appErr.Message()
}

func TestOrderService_CreateManualOrder(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Polo Goku", s.category.ID, 100, 5)

	proof := &service.UploadFile{Filename: "yape.png", ContentType: "image/png", Size: 4, Content: bytes.NewReader([]byte("png!"))}
	s.storage.EXPECT().Upload(mock.Anything, constants.FolderPaymentProofs, proof).Return("https://cdn.example.com/comprobantes/yape.png", nil)

	order, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{
		Items:         []usecase.OrderItemInput{itemFor(product, 3)},
		OperationCode: " OP-778 ",
		Proof:         proof,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusAwaitingReview, order.Status)
	assert.Equal(t, entity.PaymentMethodManual, order.PaymentMethod)
	assert.Equal(t, "OP-778", order.OperationCode)
	assert.Equal(t, "https://cdn.example.com/comprobantes/yape.png", order.ProofURL)
	assert.Equal(t, "360.00", order.Total.StringFixed(2))
	assert.Equal(t, "Ana Quispe", order.UserName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Polo Goku", order.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(100).Equal(order.Items[0].UnitPrice))

	assert.Equal(t, 2, s.store.variantStock(t, product.ID))

	require.Len(t, *s.published, 1)
	event := (*s.published)[0]
	assert.Equal(t, entity.MailEventOrderConfirmation, event.Type)
	assert.Equal(t, "buyer@example.com", event.To)
	assert.Equal(t, order.ID, event.Order.ID)
}

func TestOrderService_CreateManualOrder_InsufficientStockLeavesStock(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Taza Link", s.category.ID, 30, 2)

	_, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(product, 3)},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, "Stock insuficiente: Taza Link", appErrorMessage(t, err))

	assert.Equal(t, 2, s.store.variantStock(t, product.ID))
	assert.Empty(t, *s.published)

	orders, err := s.service.ListMyOrders(ctx, s.buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateManualOrder_RollsBackEarlierItems(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	plenty := s.store.seedProduct(t, "Polo Vegeta", s.category.ID, 90, 10)
	scarce := s.store.seedProduct(t, "Polo Broly", s.category.ID, 90, 1)

	_, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(plenty, 4), itemFor(scarce, 2)},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	assert.Equal(t, 10, s.store.variantStock(t, plenty.ID))
	assert.Equal(t, 1, s.store.variantStock(t, scarce.ID))
}

func TestOrderService_CreateManualOrder_SameVariantTwice(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Polo Gohan", s.category.ID, 50, 3)

	_, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(product, 2), itemFor(product, 2)},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, 3, s.store.variantStock(t, product.ID))
}

func TestOrderService_CreateManualOrder_Rejections(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Polo Piccolo", s.category.ID, 50, 3)

	tests := []struct {
		name    string
		items   []usecase.OrderItemInput
		wantErr error
	}{
		{"no items", nil, domainerrors.ErrValidationFailed},
		{"zero quantity", []usecase.OrderItemInput{itemFor(product, 0)}, domainerrors.ErrValidationFailed},
		{"unknown product", []usecase.OrderItemInput{{ProductID: 999, VariantID: 1, Quantity: 1}}, domainerrors.ErrProductNotFound},
		{"unknown variant", []usecase.OrderItemInput{{ProductID: product.ID, VariantID: 999, Quantity: 1}}, domainerrors.ErrVariantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{Items: tt.items})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 3, s.store.variantStock(t, product.ID))
}

func TestOrderService_CreateManualOrder_UploadFailure(t *testing.T) {
	s := createTestOrderService(t)
	product := s.store.seedProduct(t, "Polo Trunks", s.category.ID, 50, 3)

	proof := &service.UploadFile{Filename: "yape.png", Size: 4, Content: bytes.NewReader([]byte("png!"))}
	s.storage.EXPECT().Upload(mock.Anything, constants.FolderPaymentProofs, proof).Return("", errors.New("bucket offline"))

	_, err := s.service.CreateManualOrder(context.Background(), s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(product, 1)},
		Proof: proof,
	})
	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Equal(t, "Error al subir el comprobante de pago", appErrorMessage(t, err))
	assert.Equal(t, 3, s.store.variantStock(t, product.ID))
}

func TestOrderService_CreateManualOrder_StockFailureKeepsProofLocal(t *testing.T) {
	s := createTestOrderService(t)
	product := s.store.seedProduct(t, "Polo Bulma", s.category.ID, 50, 2)

	proof := &service.UploadFile{Filename: "yape.png", Size: 4, Content: bytes.NewReader([]byte("png!"))}

	_, err := s.service.CreateManualOrder(context.Background(), s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(product, 3)},
		Proof: proof,
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	s.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 2, s.store.variantStock(t, product.ID))
	assert.Empty(t, *s.published)
}

func TestOrderService_CreateManualOrder_TotalInExactCents(t *testing.T) {
	s := createTestOrderService(t)
	product := s.store.seedPricedProduct(t, "Sticker Kirby", s.category.ID, decimal.RequireFromString("10.05"), 10)

	order, err := s.service.CreateManualOrder(context.Background(), s.buyer.ID, &usecase.ManualOrderInput{
		Items: []usecase.OrderItemInput{itemFor(product, 3)},
	})
	require.NoError(t, err)

	// 3 x 10.05 plus 3 x 20.00 shipping
	assert.Equal(t, "90.15", order.Total.StringFixed(2))

	stored, err := s.store.orders.FindOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("90.15").Equal(stored.Total))
	assert.True(t, decimal.RequireFromString("10.05").Equal(stored.Items[0].UnitPrice))
}

func TestOrderService_CreatePaidOrder(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Figura Zoro", s.category.ID, 120, 4)

	order, err := s.service.CreatePaidOrder(ctx, s.buyer.ID, &usecase.PaidOrderInput{
		Items:     []usecase.OrderItemInput{itemFor(product, 1)},
		Shipping:  &entity.ShippingAddress{Street: "Jr. Cusco 50", City: "Lima", State: "Lima", PostalCode: "15001", Country: "Peru"},
		TotalPaid: decimal.RequireFromString("139.999"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, "140.00", order.Total.StringFixed(2))
	assert.Equal(t, 3, s.store.variantStock(t, product.ID))

	stored, err := s.store.orders.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jr. Cusco 50, Lima, Lima - 15001 (Peru)", stored.ShippingLabel())
}

func TestOrderService_UpdateStatus(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Polo Nami", s.category.ID, 60, 5)

	order, err := s.service.CreateManualOrder(ctx, s.buyer.ID, &usecase.ManualOrderInput{Items: []usecase.OrderItemInput{itemFor(product, 1)}})
	require.NoError(t, err)
	require.Len(t, *s.published, 1)

	updated, err := s.service.UpdateStatus(ctx, order.ID, "pagado")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, updated.Status)
	require.Len(t, *s.published, 2)
	assert.Equal(t, entity.MailEventOrderStatusUpdate, (*s.published)[1].Type)

	_, err = s.service.UpdateStatus(ctx, order.ID, "PAGADO")
	require.NoError(t, err)
	assert.Len(t, *s.published, 2)

	_, err = s.service.UpdateStatus(ctx, order.ID, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = s.service.UpdateStatus(ctx, 999, "ENVIADO")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_AddTracking(t *testing.T) {
	s := createTestOrderService(t)
	ctx := context.Background()
	product := s.store.seedProduct(t, "Polo Usopp", s.category.ID, 60, 5)

	order, err := s.service.CreatePaidOrder(ctx, s.buyer.ID, &usecase.PaidOrderInput{
		Items:     []usecase.OrderItemInput{itemFor(product, 1)},
		TotalPaid: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	updated, err := s.service.AddTracking(ctx, order.ID, &usecase.TrackingInput{TrackingNumber: " TRK-1 ", CourierName: "Olva"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	assert.Equal(t, "TRK-1", updated.TrackingNumber)

	all, err := s.service.ListAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Olva", all[0].CourierName)

	require.Len(t, *s.published, 2)
	assert.Equal(t, entity.MailEventOrderStatusUpdate, (*s.published)[1].Type)
}
