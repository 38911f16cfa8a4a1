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

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) FindWishlistItem(ctx context.Context, userID, productID uint64) (*entity.WishlistItem, error) {
	var itemM model.WishlistItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item")
	}

	return &entity.WishlistItem{
		ID:        itemM.ID,
		UserID:    itemM.UserID,
		ProductID: itemM.ProductID,
		AddedAt:   itemM.AddedAt,
	}, nil
}

func (repo *wishlistRepository) CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	}

	if err := repo.db.WithContext(ctx).Omit("User", "Product").Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already in wishlist")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid wishlist product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = itemM.ID
	item.AddedAt = itemM.AddedAt

	return nil
}

func (repo *wishlistRepository) DeleteWishlistItem(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(&model.WishlistItemModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func (repo *wishlistRepository) ListWishlistProductIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var productIDs []uint64
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Order("id ASC").
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return productIDs, nil
}
