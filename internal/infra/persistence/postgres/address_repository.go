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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a user.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit("User").Create(addressM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid address owner")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).First(&addressM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all addresses of a user, oldest first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uint64) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit("User").Save(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	// Update the entity with updated timestamp
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func (repo *addressRepository) CountAddressesByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Alias:      data.Alias,
		Department: data.Department,
		Province:   data.Province,
		District:   data.District,
		Street:     data.Street,
		Reference:  data.Reference,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Alias:      data.Alias,
		Department: data.Department,
		Province:   data.Province,
		District:   data.District,
		Street:     data.Street,
		Reference:  data.Reference,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
