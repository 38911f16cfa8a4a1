package repository

import (
	"context"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

// ErrTokenNotFound is returned when a confirmation token or recovery code does not exist.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository stores email confirmation tokens and password recovery codes.
type TokenRepository interface {
	CreateConfirmationToken(ctx context.Context, token *entity.ConfirmationToken) error
	FindConfirmationToken(ctx context.Context, token string) (*entity.ConfirmationToken, error)
	MarkConfirmationTokenConfirmed(ctx context.Context, id uint64, confirmedAt time.Time) error
	// DeleteExpiredConfirmationTokens removes unconfirmed tokens that expired before the given time.
	DeleteExpiredConfirmationTokens(ctx context.Context, before time.Time) (int64, error)

	CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error
	FindPasswordResetTokenByUser(ctx context.Context, userID uint64) (*entity.PasswordResetToken, error)
	DeletePasswordResetTokensByUser(ctx context.Context, userID uint64) error
	DeleteExpiredPasswordResetTokens(ctx context.Context, before time.Time) (int64, error)
}
