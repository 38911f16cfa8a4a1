package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultConfirmationTokenTTL = 15 * time.Minute
	defaultRecoveryCodeTTL      = 10 * time.Minute

	recoveryCodeMin   = 100000
	recoveryCodeRange = 900000
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager            repository.TransactionManager
	userRepo             repository.UserRepository
	hasher               service.PasswordHasher
	tokenService         service.TokenService
	googleAuthService    service.OAuthAuthService
	notifier             *mailNotifier
	confirmationTokenTTL time.Duration
	recoveryCodeTTL      time.Duration
	now                  func() time.Time
	logger               *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	confirmationTTL := defaultConfirmationTokenTTL
	recoveryTTL := defaultRecoveryCodeTTL
	if params.Config != nil && params.Config.Store != nil {
		if params.Config.Store.ConfirmationTokenTTL > 0 {
			confirmationTTL = params.Config.Store.ConfirmationTokenTTL
		}
		if params.Config.Store.RecoveryCodeTTL > 0 {
			recoveryTTL = params.Config.Store.RecoveryCodeTTL
		}
	}

	return &authService{
		txManager:            params.TxManager,
		userRepo:             params.UserRepo,
		hasher:               params.Hasher,
		tokenService:         params.TokenService,
		googleAuthService:    params.GoogleAuthService,
		notifier:             newMailNotifier(params.Publisher, params.Logger),
		confirmationTokenTTL: confirmationTTL,
		recoveryCodeTTL:      recoveryTTL,
		now:                  time.Now,
		logger:               params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, or overwrites a registration that was never confirmed.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var (
		registered *entity.User
		token      string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewTokenRepository()

		user, err := userRepo.FindUserByEmail(ctx, email)
		switch {
		case err == nil:
			if user.Enabled {
				srv.log(ctx).Warn("Registration attempt with confirmed email", slog.String("email", email))

				return errors.Wrap(domainerrors.ErrEmailAlreadyConfirmed, "email already confirmed")
			}

			user.FirstName = input.FirstName
			user.LastName = input.LastName
			user.PasswordHash = hashedPassword
			if err := userRepo.UpdateUser(ctx, user); err != nil {
				return errors.Wrap(err, "failed to refresh pending registration")
			}
		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				Email:        email,
				PasswordHash: hashedPassword,
				Role:         entity.RoleUser,
				Enabled:      false,
				AuthProvider: entity.AuthProviderLocal,
			}
			if err := userRepo.CreateUser(ctx, user); err != nil {
				if errors.Is(err, repository.ErrUserConflict) {
					return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email registered concurrently")
				}

				return errors.Wrap(err, "failed to create user")
			}
		default:
			return errors.Wrap(err, "failed to find user by email")
		}

		now := srv.now()
		confirmation := &entity.ConfirmationToken{
			Token:     uuid.NewString(),
			UserID:    user.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(srv.confirmationTokenTTL),
		}
		if err := tokenRepo.CreateConfirmationToken(ctx, confirmation); err != nil {
			return errors.Wrap(err, "failed to create confirmation token")
		}

		registered = user
		token = confirmation.Token

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.notifier.accountVerification(ctx, registered, token)
	srv.log(ctx).Info("Registration completed", slog.Uint64("userID", registered.ID))

	return registered, nil
}

// ConfirmAccount enables the user behind a valid confirmation token.
func (srv *authService) ConfirmAccount(ctx context.Context, token string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewTokenRepository()

		confirmation, err := tokenRepo.FindConfirmationToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return errors.Wrap(domainerrors.ErrConfirmationTokenInvalid, "unknown confirmation token")
			}

			return errors.Wrap(err, "failed to find confirmation token")
		}

		now := srv.now()
		if confirmation.IsConfirmed() {
			return errors.Wrap(domainerrors.ErrConfirmationTokenUsed, "confirmation token already used")
		}
		if confirmation.IsExpired(now) {
			return errors.Wrap(domainerrors.ErrConfirmationTokenExpired, "confirmation token expired")
		}

		if err := tokenRepo.MarkConfirmationTokenConfirmed(ctx, confirmation.ID, now); err != nil {
			return errors.Wrap(err, "failed to mark token confirmed")
		}

		user, err := userRepo.FindUserByID(ctx, confirmation.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find token owner")
		}

		user.Enabled = true
		if err := userRepo.UpdateUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to enable user")
		}

		srv.log(ctx).Info("Account confirmed", slog.String("email", user.Email))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to confirm account")
	}

	return nil
}

// Login validates local credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (string, error) {
	email := strings.TrimSpace(input.Email)

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return "", errors.Wrap(err, "failed to find user by email")
	}

	if !user.Enabled {
		srv.log(ctx).Warn("Login attempt on unverified account", slog.String("email", email))

		return "", errors.Wrap(domainerrors.ErrAccountDisabled, "account not confirmed")
	}

	if !srv.hasher.Matches(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", email))

		return "", errors.Wrap(domainerrors.ErrWrongPassword, "password mismatch")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.upgradePasswordHash(ctx, user, input.Password)
	}

	return srv.issueToken(ctx, user)
}

// upgradePasswordHash re-hashes with the current bcrypt cost. A failure only costs
// another attempt at the next login, so it never blocks the sign in.
func (srv *authService) upgradePasswordHash(ctx context.Context, user *entity.User, password string) {
	hash, err := srv.hasher.Hash(password)
	if err == nil {
		previous := user.PasswordHash
		user.PasswordHash = hash
		if err = srv.userRepo.UpdateUser(ctx, user); err != nil {
			user.PasswordHash = previous
		}
	}
	if err != nil {
		srv.log(ctx).Warn("Password hash upgrade failed", slog.Uint64("userID", user.ID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Password hash upgraded", slog.Uint64("userID", user.ID))
}

// LoginWithGoogle signs in with a Google ID token, registering the account on first use.
func (srv *authService) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Error("Google ID token verification failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindUserByEmail(ctx, oauthUser.Email)
		if err == nil {
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		srv.log(ctx).Info("Registering user through Google", slog.String("email", oauthUser.Email))

		user = &entity.User{
			FirstName:    oauthUser.GivenName,
			LastName:     oauthUser.FamilyName,
			Email:        oauthUser.Email,
			Role:         entity.RoleUser,
			Enabled:      true,
			AuthProvider: entity.AuthProviderGoogle,
		}

		return userRepo.CreateUser(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Google login failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.issueToken(ctx, user)
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Email, user.Roles().ToStrings())
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Uint64("userID", user.ID))

	return token, nil
}

// RequestPasswordRecovery issues a fresh 6-digit code. Any previous code stops working.
func (srv *authService) RequestPasswordRecovery(ctx context.Context, email string) error {
	code, err := generateRecoveryCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate recovery code")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewTokenRepository()

		found, err := userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "recovery for unknown email")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if found.AuthProvider == entity.AuthProviderGoogle {
			return errors.Wrap(domainerrors.ErrGoogleAccountRecovery, "google account has no password")
		}

		if err := tokenRepo.DeletePasswordResetTokensByUser(ctx, found.ID); err != nil {
			return errors.Wrap(err, "failed to delete previous recovery codes")
		}

		if err := tokenRepo.CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
			Code:           code,
			UserID:         found.ID,
			ExpirationTime: srv.now().Add(srv.recoveryCodeTTL),
		}); err != nil {
			return errors.Wrap(err, "failed to save recovery code")
		}

		user = found

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to request password recovery")
	}

	srv.notifier.recoveryCode(ctx, user, code)
	srv.log(ctx).Info("Recovery code issued", slog.Uint64("userID", user.ID))

	return nil
}

// VerifyRecoveryCode checks a code without consuming it.
func (srv *authService) VerifyRecoveryCode(ctx context.Context, input *usecase.RecoveryCodeInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := srv.checkRecoveryCode(ctx, repoFactory, input.Email, input.Code)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify recovery code")
	}

	return nil
}

// ResetPassword sets a new password and consumes the recovery code.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.checkRecoveryCode(ctx, repoFactory, input.Email, input.Code)
		if err != nil {
			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user.PasswordHash = hashedPassword
		if err := repoFactory.NewUserRepository().UpdateUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.NewTokenRepository().DeletePasswordResetTokensByUser(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete recovery code")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset", slog.String("email", input.Email))

	return nil
}

func (srv *authService) checkRecoveryCode(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	email, code string,
) (*entity.User, error) {
	user, err := repoFactory.NewUserRepository().FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "recovery for unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	token, err := repoFactory.NewTokenRepository().FindPasswordResetTokenByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoPendingRecovery, "no recovery code")
		}

		return nil, errors.Wrap(err, "failed to find recovery code")
	}

	if token.Code != strings.TrimSpace(code) {
		srv.log(ctx).Warn("Recovery code mismatch", slog.String("email", user.Email))

		return nil, errors.Wrap(domainerrors.ErrRecoveryCodeMismatch, "recovery code mismatch")
	}

	if token.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrRecoveryCodeExpired, "recovery code expired")
	}

	return user, nil
}

// generateRecoveryCode returns a uniformly random number in [100000, 999999].
func generateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(recoveryCodeRange))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+recoveryCodeMin, 10), nil
}
