package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"geekstore/config"
	"geekstore/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate tokenValidator) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestAuthService(func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "ana@gmail.com",
				"email_verified": true,
				"given_name":     "Ana",
				"family_name":    "Quispe",
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)

	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "ana@gmail.com", user.Email)
	assert.Equal(t, "Ana", user.GivenName)
	assert.Equal(t, "Quispe", user.FamilyName)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.AuthProviderGoogle, user.Provider)
}

func TestAuthService_VerifyIDToken_ValidatorError(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: audience provided does not match aud claim in the JWT")
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_MissingEmail(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{}}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_NoClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := newTestAuthService(nil)

	assert.Equal(t, entity.AuthProviderGoogle, svc.GetProvider())
}
