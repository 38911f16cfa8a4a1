package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	mocks "geekstore/internal/mocks/service"
	usecasemocks "geekstore/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mocks.MockTokenService, *usecasemocks.MockUserUsecase) {
	tokenSvc := mocks.NewMockTokenService(t)
	userUC := usecasemocks.NewMockUserUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		UserUC:       userUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc, userUC
}

func goodClaims() *service.Claims {
	return &service.Claims{
		UserID:           7,
		Roles:            []string{"ROLE_ADMIN"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "old@example.com"},
	}
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		m, tokenSvc, userUC := createTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(goodClaims(), nil)
		userUC.EXPECT().GetProfile(mock.Anything, uint64(7)).Return(&entity.User{
			ID:      7,
			Email:   "ana@example.com",
			Role:    entity.RoleUser,
			Enabled: true,
		}, nil)

		c, rec := newAuthContext("Bearer good")

		var principal deliverycontext.Principal
		require.NoError(t, m.Authenticate(func(c echo.Context) error {
			principal, _ = deliverycontext.GetPrincipal(c.Request().Context())

			return okHandler(c)
		})(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		userID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, uint64(7), userID)
		// Email and roles follow the stored account: the admin role in the token was revoked.
		email, _ := GetEmail(c)
		assert.Equal(t, "ana@example.com", email)
		roles, _ := GetRoles(c)
		assert.Equal(t, []string{"ROLE_USER"}, roles)
		assert.Equal(t, uint64(7), principal.UserID)
	})

	t.Run("deleted account", func(t *testing.T) {
		m, tokenSvc, userUC := createTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(goodClaims(), nil)
		userUC.EXPECT().GetProfile(mock.Anything, uint64(7)).
			Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

		c, rec := newAuthContext("Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("disabled account", func(t *testing.T) {
		m, tokenSvc, userUC := createTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(goodClaims(), nil)
		userUC.EXPECT().GetProfile(mock.Anything, uint64(7)).
			Return(&entity.User{ID: 7, Email: "ana@example.com", Enabled: false}, nil)

		c, rec := newAuthContext("Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("account lookup fails", func(t *testing.T) {
		m, tokenSvc, userUC := createTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(goodClaims(), nil)
		userUC.EXPECT().GetProfile(mock.Anything, uint64(7)).Return(nil, errors.New("connection refused"))

		c, _ := newAuthContext("Bearer good")

		err := m.Authenticate(okHandler)(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("missing header", func(t *testing.T) {
		m, _, _ := createTestAuthMiddleware(t)
		c, rec := newAuthContext("")

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _, _ := createTestAuthMiddleware(t)
		c, rec := newAuthContext("Basic YWRtaW46YWRtaW4=")

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, tokenSvc, _ := createTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		c, rec := newAuthContext("Bearer expired")

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "No autorizado")
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "admin", roles: []string{"ROLE_ADMIN"}, wantStatus: http.StatusOK},
		{name: "regular user", roles: []string{"ROLE_USER"}, wantStatus: http.StatusForbidden},
		{name: "not authenticated", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := createTestAuthMiddleware(t)
			c, rec := newAuthContext("")
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
				c.Set(ContextKeyUserID, uint64(7))
			}

			require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "Acceso Denegado")
			}
		})
	}
}
