package postgres

import (
	"context"
	"testing"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_ConfirmationLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	now := fixedTime()

	user := seedUser(t, db, "new@example.com")
	token := &entity.ConfirmationToken{
		Token:     "abc-123",
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
	require.NoError(t, repo.CreateConfirmationToken(ctx, token))

	found, err := repo.FindConfirmationToken(ctx, "abc-123")
	require.NoError(t, err)
	assert.False(t, found.IsConfirmed())
	assert.False(t, found.IsExpired(now))

	require.NoError(t, repo.MarkConfirmationTokenConfirmed(ctx, found.ID, now.Add(time.Minute)))

	found, err = repo.FindConfirmationToken(ctx, "abc-123")
	require.NoError(t, err)
	assert.True(t, found.IsConfirmed())

	_, err = repo.FindConfirmationToken(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTokenRepository_DeleteExpiredConfirmationTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	now := fixedTime()

	user := seedUser(t, db, "new@example.com")
	confirmedAt := now.Add(-time.Hour)

	tokens := []*entity.ConfirmationToken{
		{Token: "expired", UserID: user.ID, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{Token: "confirmed", UserID: user.ID, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour), ConfirmedAt: &confirmedAt},
		{Token: "fresh", UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	for _, token := range tokens {
		require.NoError(t, repo.CreateConfirmationToken(ctx, token))
	}

	deleted, err := repo.DeleteExpiredConfirmationTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindConfirmationToken(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	_, err = repo.FindConfirmationToken(ctx, "confirmed")
	assert.NoError(t, err)
}

func TestTokenRepository_PasswordResetTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	now := fixedTime()

	user := seedUser(t, db, "reset@example.com")
	require.NoError(t, repo.CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
		Code:           "123456",
		UserID:         user.ID,
		ExpirationTime: now.Add(10 * time.Minute),
	}))

	found, err := repo.FindPasswordResetTokenByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", found.Code)

	deleted, err := repo.DeleteExpiredPasswordResetTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	require.NoError(t, repo.DeletePasswordResetTokensByUser(ctx, user.ID))

	_, err = repo.FindPasswordResetTokenByUser(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
