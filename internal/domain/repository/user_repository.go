// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when email or dni already belongs to another user.
	ErrUserConflict = errors.New("user email or dni already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id uint64) error

	// FindUserByID returns ErrUserNotFound when no row matches.
	FindUserByID(ctx context.Context, id uint64) (*entity.User, error)
	// FindUserByEmail returns ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListUsers returns users sorted by email.
	ListUsers(ctx context.Context, page PageRequest) (*Page[*entity.User], error)
}
