package usecase

import (
	"context"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"
)

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	DNI       *string
	Phone     *string
	Gender    *string
	BirthDate *time.Time
}

// ChangePasswordInput defines the data required to change one's own password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// AdminUserInput is what an administrator sends to create or edit an account.
type AdminUserInput struct {
	FirstName string
	LastName  string
	Email     string
	// Password is required on create; on update an empty value keeps the current one.
	Password string
	// Role accepts ADMIN, USER or the ROLE_ prefixed names.
	Role string
}

// UserUsecase defines self-service profile operations and admin user management.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint64, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint64, input *ChangePasswordInput) error

	ListUsers(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.User], error)
	GetUser(ctx context.Context, id uint64) (*entity.User, error)
	CreateUser(ctx context.Context, input *AdminUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint64, input *AdminUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}
