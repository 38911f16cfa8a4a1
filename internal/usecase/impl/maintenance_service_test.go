package impl

import (
	"context"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_PurgeExpiredTokens(t *testing.T) {
	store := newTestStore(t)
	srv := NewMaintenanceService(MaintenanceServiceParams{
		TxManager: store.txManager,
		Logger:    newDiscardLogger(),
	}).(*maintenanceService)
	ctx := context.Background()

	now := time.Now()
	srv.now = func() time.Time { return now }

	stale := store.seedUser(t, "stale@example.com", false)
	fresh := store.seedUser(t, "fresh@example.com", false)

	require.NoError(t, store.tokens.CreateConfirmationToken(ctx, &entity.ConfirmationToken{
		Token: "expired-token", UserID: stale.ID, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-45 * time.Minute),
	}))
	require.NoError(t, store.tokens.CreateConfirmationToken(ctx, &entity.ConfirmationToken{
		Token: "live-token", UserID: fresh.ID, CreatedAt: now, ExpiresAt: now.Add(15 * time.Minute),
	}))
	require.NoError(t, store.tokens.CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
		Code: "111111", UserID: stale.ID, ExpirationTime: now.Add(-time.Minute),
	}))
	require.NoError(t, store.tokens.CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
		Code: "222222", UserID: fresh.ID, ExpirationTime: now.Add(10 * time.Minute),
	}))

	confirmations, recoveryCodes, err := srv.PurgeExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmations)
	assert.Equal(t, int64(1), recoveryCodes)

	_, err = store.tokens.FindConfirmationToken(ctx, "expired-token")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	_, err = store.tokens.FindConfirmationToken(ctx, "live-token")
	assert.NoError(t, err)

	_, err = store.tokens.FindPasswordResetTokenByUser(ctx, stale.ID)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	_, err = store.tokens.FindPasswordResetTokenByUser(ctx, fresh.ID)
	assert.NoError(t, err)
}
