package auth

import (
	"testing"
	"time"

	"geekstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(42, "ana@example.com", []string{"ROLE_ADMIN"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Roles)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.GetTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(time.Hour)
	otherCfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1, "ana@example.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := impl.GenerateToken(1, "ana@example.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.Error(t, err)
}
