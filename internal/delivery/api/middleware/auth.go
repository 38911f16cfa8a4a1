package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"geekstore/internal/delivery/api/response"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	"geekstore/internal/errors"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Context keys set by Authenticate.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRoles  = "roles"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserUC       usecase.UserUsecase
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer access token, then reloads the account so a deleted
// or disabled user is refused even while the token is unexpired. Email and roles come
// from the stored account, not from the token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthenticated(c)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil || claims.UserID == 0 {
			logger.Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthenticated(c)
		}

		user, err := m.userUC.GetProfile(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				logger.Info("Token of a deleted account", slog.Uint64("userID", claims.UserID))

				return response.Unauthenticated(c)
			}

			return response.HandleAppError(c, err)
		}
		if !user.Enabled {
			logger.Info("Token of a disabled account", slog.Uint64("userID", user.ID))

			return response.Unauthenticated(c)
		}

		roles := user.Roles().ToStrings()
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyEmail, user.Email)
		c.Set(ContextKeyRoles, roles)

		ctx = deliverycontext.WithPrincipal(ctx, deliverycontext.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Roles:  roles,
		}, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers that lack role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !slices.Contains(roles, role.String()) {
				userID, _ := GetUserID(c)
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Access denied",
					slog.Uint64("userID", userID),
					slog.String("requiredRole", role.String()),
					slog.String("path", c.Path()),
				)

				return response.Forbidden(c)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uint64, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uint64)

	return userID, ok && userID != 0
}

// GetEmail returns the email of the authenticated account.
func GetEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(ContextKeyEmail).(string)

	return email, ok
}

// GetRoles returns the roles of the authenticated account.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(ContextKeyRoles).([]string)

	return roles, ok
}
