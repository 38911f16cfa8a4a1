package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *maintenanceService) PurgeExpiredTokens(ctx context.Context) (confirmations, recoveryCodes int64, err error) {
	now := srv.now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		var err error
		if confirmations, err = tokenRepo.DeleteExpiredConfirmationTokens(ctx, now); err != nil {
			return errors.Wrap(err, "failed to purge confirmation tokens")
		}
		if recoveryCodes, err = tokenRepo.DeleteExpiredPasswordResetTokens(ctx, now); err != nil {
			return errors.Wrap(err, "failed to purge recovery codes")
		}

		return nil
	})
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to purge expired tokens")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Expired tokens purged",
		slog.Int64("confirmationTokens", confirmations),
		slog.Int64("recoveryCodes", recoveryCodes),
	)

	return confirmations, recoveryCodes, nil
}
