package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager    repository.TransactionManager
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		txManager:    params.TxManager,
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) ToggleProduct(ctx context.Context, userID, productID uint64) (bool, error) {
	var added bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.NewWishlistRepository()

		if _, err := repoFactory.NewProductRepository().FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(productNotFound(productID), "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		item, err := wishlistRepo.FindWishlistItem(ctx, userID, productID)
		switch {
		case err == nil:
			added = false

			return wishlistRepo.DeleteWishlistItem(ctx, item.ID)
		case errors.Is(err, repository.ErrWishlistItemNotFound):
			added = true

			return wishlistRepo.CreateWishlistItem(ctx, &entity.WishlistItem{
				UserID:    userID,
				ProductID: productID,
				AddedAt:   time.Now(),
			})
		default:
			return errors.Wrap(err, "failed to find wishlist item")
		}
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle wishlist")
	}

	srv.log(ctx).Info("Wishlist toggled", slog.Uint64("userID", userID), slog.Uint64("productID", productID), slog.Bool("added", added))

	return added, nil
}

// ListWishlist returns the favorite products in the order they were added.
func (srv *wishlistService) ListWishlist(ctx context.Context, userID uint64) ([]*entity.Product, error) {
	ids, err := srv.wishlistRepo.ListWishlistProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	// FindProductsByIDs keeps the order of ids, oldest favorite first.
	products, err := srv.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist products")
	}

	return products, nil
}
