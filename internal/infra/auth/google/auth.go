// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"geekstore/config"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks an ID token's signature, expiry and audience.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google ID tokens
type AuthServiceImpl struct {
	clientID string
	validate tokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	email := claimString(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("token has no email claim")
	}

	emailVerified, _ := payload.Claims["email_verified"].(bool)

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		GivenName:     claimString(payload.Claims, "given_name"),
		FamilyName:    claimString(payload.Claims, "family_name"),
		Provider:      entity.AuthProviderGoogle,
		EmailVerified: emailVerified,
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("userID", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.AuthProvider {
	return entity.AuthProviderGoogle
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)
	return value
}
