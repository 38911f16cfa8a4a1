// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"geekstore/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a local account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RecoveryCodeInput identifies a pending password recovery.
type RecoveryCodeInput struct {
	Email string
	Code  string
}

// ResetPasswordInput defines the data required to set a new password with a recovery code.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// AuthUsecase defines registration, login and password recovery.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a disabled account, or refreshes a pending one, and mails a confirmation link.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	// ConfirmAccount consumes a confirmation token and enables its user.
	ConfirmAccount(ctx context.Context, token string) error
	// Login returns a signed access token.
	Login(ctx context.Context, input *LoginInput) (string, error)
	// LoginWithGoogle verifies a Google ID token, upserts the user and returns an access token.
	LoginWithGoogle(ctx context.Context, idToken string) (string, error)
	// RequestPasswordRecovery replaces any previous recovery code of the user and mails a new one.
	RequestPasswordRecovery(ctx context.Context, email string) error
	VerifyRecoveryCode(ctx context.Context, input *RecoveryCodeInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
