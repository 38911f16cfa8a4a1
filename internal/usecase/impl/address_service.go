package impl

import (
	"context"
	"fmt"
	"log/slog"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxAddressesPerUser = 10

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager    repository.TransactionManager
	addressRepo  repository.AddressRepository
	maxAddresses int
	logger       *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxAddresses := defaultMaxAddressesPerUser
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.MaxAddressesPerUser > 0 {
		maxAddresses = params.Config.Store.MaxAddressesPerUser
	}

	return &addressService{
		txManager:    params.TxManager,
		addressRepo:  params.AddressRepo,
		maxAddresses: maxAddresses,
		logger:       params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) ListAddresses(ctx context.Context, userID uint64) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress saves a new address unless the user already reached the limit.
func (srv *addressService) CreateAddress(ctx context.Context, userID uint64, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{UserID: userID}
	applyAddressInput(address, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		count, err := addressRepo.CountAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count >= int64(srv.maxAddresses) {
			srv.log(ctx).Warn("Address limit reached", slog.Uint64("userID", userID), slog.Int("limit", srv.maxAddresses))

			message := fmt.Sprintf("Has alcanzado el límite máximo de %d direcciones permitidas.", srv.maxAddresses)

			return errors.Wrap(domainerrors.ErrAddressLimitReached.WithMessage(message), "address limit reached")
		}

		return addressRepo.CreateAddress(ctx, address)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created", slog.Uint64("userID", userID), slog.Uint64("addressID", address.ID))

	return address, nil
}

func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uint64, input *usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID, "update")
		if err != nil {
			return err
		}

		applyAddressInput(address, input)
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	srv.log(ctx).Info("Address updated", slog.Uint64("userID", userID), slog.Uint64("addressID", addressID))

	return updated, nil
}

func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uint64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID, "delete"); err != nil {
			return err
		}

		return addressRepo.DeleteAddress(ctx, addressID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.Uint64("userID", userID), slog.Uint64("addressID", addressID))

	return nil
}

func (srv *addressService) findOwnedAddress(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	userID, addressID uint64,
	action string,
) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	if !address.IsOwnedBy(userID) {
		srv.log(ctx).Warn("SECURITY: attempt to modify another user's address",
			slog.String("action", action),
			slog.Uint64("userID", userID),
			slog.Uint64("addressID", addressID),
			slog.Uint64("ownerID", address.UserID),
		)

		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	return address, nil
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.Alias = input.Alias
	address.Department = input.Department
	address.Province = input.Province
	address.District = input.District
	address.Street = input.Street
	address.Reference = input.Reference
	address.PostalCode = input.PostalCode
}
