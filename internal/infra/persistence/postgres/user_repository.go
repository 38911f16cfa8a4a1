// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user and fills in the generated ID and timestamps.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserConflict, "failed to create user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateUser overwrites every column of an existing user.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserConflict, "failed to update user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// DeleteUser removes a user by ID.
func (repo *userRepository) DeleteUser(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrStillReferenced, "user has orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindUserByID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a single user by their email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether any user owns the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// ListUsers returns one page of users sorted by email.
func (repo *userRepository) ListUsers(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.User], error) {
	page = page.Normalize(repository.DefaultUserPageSize)

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("email ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return &repository.Page[*entity.User]{
		Items: users,
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Enabled:      data.Enabled,
		AuthProvider: entity.AuthProvider(data.AuthProvider),
		DNI:          data.DNI,
		Phone:        data.Phone,
		Gender:       data.Gender,
		BirthDate:    data.BirthDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Enabled:      data.Enabled,
		AuthProvider: string(data.AuthProvider),
		DNI:          data.DNI,
		Phone:        data.Phone,
		Gender:       data.Gender,
		BirthDate:    data.BirthDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
