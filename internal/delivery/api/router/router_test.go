package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/router/handler"
	"geekstore/internal/delivery/api/validator"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	servicemocks "geekstore/internal/mocks/service"
	mocks "geekstore/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testRouter struct {
	echo       *echo.Echo
	tokenSvc   *servicemocks.MockTokenService
	productUC  *mocks.MockProductUsecase
	orderUC    *mocks.MockOrderUsecase
	userUC     *mocks.MockUserUsecase
	accounts   *mocks.MockUserUsecase
	complaints *mocks.MockComplaintUsecase
}

func newTestRouter(t *testing.T) *testRouter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tr := &testRouter{
		echo:       echo.New(),
		tokenSvc:   servicemocks.NewMockTokenService(t),
		productUC:  mocks.NewMockProductUsecase(t),
		orderUC:    mocks.NewMockOrderUsecase(t),
		userUC:     mocks.NewMockUserUsecase(t),
		accounts:   mocks.NewMockUserUsecase(t),
		complaints: mocks.NewMockComplaintUsecase(t),
	}
	tr.echo.Validator = validator.New()

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mocks.NewMockAuthUsecase(t), Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: tr.userUC, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: tr.productUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CategoryUC: mocks.NewMockCategoryUsecase(t),
			BrandUC:    mocks.NewMockBrandUsecase(t),
			Logger:     logger,
		}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: tr.orderUC, Logger: logger}),
		PaymentHandler:   handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: mocks.NewMockPaymentUsecase(t), Logger: logger}),
		AddressHandler:   handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: mocks.NewMockAddressUsecase(t), Logger: logger}),
		WishlistHandler:  handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: mocks.NewMockWishlistUsecase(t), Logger: logger}),
		ComplaintHandler: handler.NewComplaintHandler(handler.ComplaintHandlerParams{ComplaintUC: tr.complaints, Logger: logger}),
		MediaHandler:     handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: mocks.NewMockMediaUsecase(t), Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tr.tokenSvc, UserUC: tr.accounts, Logger: logger}),
	}).RegisterRoutes(tr.echo)

	tr.tokenSvc.EXPECT().ValidateToken("user-token").Return(&service.Claims{UserID: 7, Roles: []string{entity.RoleUser.String()}}, nil).Maybe()
	tr.tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{UserID: 1, Roles: []string{entity.RoleAdmin.String()}}, nil).Maybe()
	tr.accounts.EXPECT().GetProfile(mock.Anything, uint64(7)).
		Return(&entity.User{ID: 7, Email: "ana@example.com", Role: entity.RoleUser, Enabled: true}, nil).Maybe()
	tr.accounts.EXPECT().GetProfile(mock.Anything, uint64(1)).
		Return(&entity.User{ID: 1, Email: "admin@example.com", Role: entity.RoleAdmin, Enabled: true}, nil).Maybe()
	tr.tokenSvc.EXPECT().ValidateToken("ghost-token").Return(&service.Claims{UserID: 9, Roles: []string{entity.RoleAdmin.String()}}, nil).Maybe()
	tr.accounts.EXPECT().GetProfile(mock.Anything, uint64(9)).Return(nil, domainerrors.ErrUserNotFound).Maybe()
	tr.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid")).Maybe()

	return tr
}

func (tr *testRouter) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	tr.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_CatalogReadsArePublic(t *testing.T) {
	tr := newTestRouter(t)
	tr.productUC.EXPECT().GetFeaturedProduct(mock.Anything).Return(nil, nil)

	rec := tr.do(http.MethodGet, "/api/v1/products/featured", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_AccessControl(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{name: "product write without token", method: http.MethodDelete, target: "/api/v1/products/1", wantStatus: http.StatusUnauthorized},
		{name: "product write as user", method: http.MethodDelete, target: "/api/v1/products/1", token: "user-token", wantStatus: http.StatusForbidden},
		{name: "forged token", method: http.MethodGet, target: "/api/v1/orders/me", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "admin users as user", method: http.MethodGet, target: "/api/v1/admin/users", token: "user-token", wantStatus: http.StatusForbidden},
		{name: "all orders as user", method: http.MethodGet, target: "/api/v1/orders/admin/all", token: "user-token", wantStatus: http.StatusForbidden},
		{name: "complaints list without token", method: http.MethodGet, target: "/api/v1/complaints", wantStatus: http.StatusUnauthorized},
		{name: "media upload as user", method: http.MethodPost, target: "/api/v1/media/upload", token: "user-token", wantStatus: http.StatusForbidden},
		{name: "wishlist without token", method: http.MethodGet, target: "/api/v1/wishlist", wantStatus: http.StatusUnauthorized},
		{name: "token of a deleted account", method: http.MethodGet, target: "/api/v1/orders/me", token: "ghost-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t)

			rec := tr.do(tt.method, tt.target, tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_AuthenticatedAccess(t *testing.T) {
	t.Run("user reads own orders", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.orderUC.EXPECT().ListMyOrders(mock.Anything, uint64(7)).Return([]*entity.Order{}, nil)

		rec := tr.do(http.MethodGet, "/api/v1/orders/me", "user-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin deletes product", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.productUC.EXPECT().DeleteProduct(mock.Anything, uint64(1)).Return(nil)

		rec := tr.do(http.MethodDelete, "/api/v1/products/1", "admin-token")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("admin lists complaints", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.complaints.EXPECT().ListComplaints(mock.Anything).Return([]*entity.Complaint{}, nil)

		rec := tr.do(http.MethodGet, "/api/v1/complaints", "admin-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
