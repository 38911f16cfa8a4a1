package postgres

import (
	"context"
	"time"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (repo *tokenRepository) CreateConfirmationToken(ctx context.Context, token *entity.ConfirmationToken) error {
	tokenM := &model.ConfirmationTokenModel{
		Token:       token.Token,
		UserID:      token.UserID,
		CreatedAt:   token.CreatedAt,
		ExpiresAt:   token.ExpiresAt,
		ConfirmedAt: token.ConfirmedAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create confirmation token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *tokenRepository) FindConfirmationToken(ctx context.Context, token string) (*entity.ConfirmationToken, error) {
	var tokenM model.ConfirmationTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirmation token")
	}

	return &entity.ConfirmationToken{
		ID:          tokenM.ID,
		Token:       tokenM.Token,
		UserID:      tokenM.UserID,
		CreatedAt:   tokenM.CreatedAt,
		ExpiresAt:   tokenM.ExpiresAt,
		ConfirmedAt: tokenM.ConfirmedAt,
	}, nil
}

func (repo *tokenRepository) MarkConfirmationTokenConfirmed(ctx context.Context, id uint64, confirmedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConfirmationTokenModel{}).
		Where("id = ?", id).
		Update("confirmed_at", confirmedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

func (repo *tokenRepository) DeleteExpiredConfirmationTokens(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("confirmed_at IS NULL AND expires_at < ?", before).
		Delete(&model.ConfirmationTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired confirmation tokens")
	}

	return result.RowsAffected, nil
}

func (repo *tokenRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := &model.PasswordResetTokenModel{
		Code:           token.Code,
		UserID:         token.UserID,
		ExpirationTime: token.ExpirationTime,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	token.ID = tokenM.ID

	return nil
}

// FindPasswordResetTokenByUser returns the newest code of the user.
func (repo *tokenRepository) FindPasswordResetTokenByUser(ctx context.Context, userID uint64) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return &entity.PasswordResetToken{
		ID:             tokenM.ID,
		Code:           tokenM.Code,
		UserID:         tokenM.UserID,
		ExpirationTime: tokenM.ExpirationTime,
	}, nil
}

func (repo *tokenRepository) DeletePasswordResetTokensByUser(ctx context.Context, userID uint64) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete password reset tokens")
	}

	return nil
}

func (repo *tokenRepository) DeleteExpiredPasswordResetTokens(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expiration_time < ?", before).
		Delete(&model.PasswordResetTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired password reset tokens")
	}

	return result.RowsAffected, nil
}
