package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minAdminPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's account.
func (srv *userService) GetProfile(ctx context.Context, userID uint64) (*entity.User, error) {
	return srv.GetUser(ctx, userID)
}

// UpdateProfile applies the non-nil fields of input.
func (srv *userService) UpdateProfile(ctx context.Context, userID uint64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Uint64("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.DNI != nil {
			dni := strings.TrimSpace(*input.DNI)
			if dni == "" {
				user.DNI = nil
			} else {
				user.DNI = &dni
			}
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.BirthDate != nil {
			birthDate := *input.BirthDate
			user.BirthDate = &birthDate
		}

		if err := userRepo.UpdateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return errors.Wrap(domainerrors.ErrDNIAlreadyExists, "dni already registered")
			}

			return errors.Wrap(err, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// ChangePassword replaces the password after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, userID uint64, input *usecase.ChangePasswordInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if user.PasswordHash == "" || !srv.hasher.Matches(input.OldPassword, user.PasswordHash) {
			srv.log(ctx).Warn("Password change with wrong old password", slog.Uint64("userID", userID))

			return errors.Wrap(domainerrors.ErrOldPasswordIncorrect, "old password mismatch")
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user.PasswordHash = hashedPassword

		return userRepo.UpdateUser(ctx, user)
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.Uint64("userID", userID))

	return nil
}

// ListUsers returns one page of users sorted by email.
func (srv *userService) ListUsers(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.User], error) {
	result, err := srv.userRepo.ListUsers(ctx, page.Normalize(repository.DefaultUserPageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return result, nil
}

// GetUser returns a user by id.
func (srv *userService) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := findUser(ctx, srv.userRepo, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUser registers an enabled local account on behalf of an administrator.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.AdminUserInput) (*entity.User, error) {
	if len(input.Password) < minAdminPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrPasswordRequired, "password missing or too short")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hashedPassword,
		Role:         entity.ParseRole(input.Role),
		Enabled:      true,
		AuthProvider: entity.AuthProviderLocal,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}

		if err := userRepo.CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin", slog.Uint64("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// UpdateUser edits an account. An empty password keeps the current one.
func (srv *userService) UpdateUser(ctx context.Context, id uint64, input *usecase.AdminUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, id)
		if err != nil {
			return err
		}

		email := strings.TrimSpace(input.Email)
		if email != "" && email != user.Email {
			exists, err := userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return errors.Wrap(err, "failed to check email")
			}
			if exists {
				return errors.Wrap(domainerrors.ErrEmailInUse, "email belongs to another user")
			}
			user.Email = email
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		if input.Role != "" {
			user.Role = entity.ParseRole(input.Role)
		}

		if input.Password != "" {
			hashedPassword, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.UpdateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return errors.Wrap(domainerrors.ErrEmailInUse, "email belongs to another user")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return updated, nil
}

// DeleteUser removes an account.
func (srv *userService) DeleteUser(ctx context.Context, id uint64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().DeleteUser(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			case errors.Is(err, repository.ErrStillReferenced):
				return errors.Wrap(domainerrors.ErrConflict.WithMessage("No se puede eliminar el usuario porque tiene pedidos registrados."), "user has orders")
			default:
				return errors.Wrap(err, "failed to delete user")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("userID", id))

	return nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, id uint64) (*entity.User, error) {
	user, err := userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
