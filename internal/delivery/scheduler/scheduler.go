// Package scheduler runs periodic housekeeping jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"geekstore/config"
	"geekstore/internal/delivery"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/lifecycle"
	"geekstore/internal/usecase"
	"geekstore/internal/util"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultTokenCleanupSpec = "@every 1h"
	jobTimeout              = 5 * time.Minute
)

type scheduler struct {
	cron          *cron.Cron
	maintenanceUC usecase.MaintenanceUsecase
	logger        *slog.Logger
	enabled       bool
	cleanupSpec   string
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	MaintenanceUC usecase.MaintenanceUsecase
}

// NewScheduler creates a Delivery that triggers maintenance jobs.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cron:          cron.New(),
		maintenanceUC: params.MaintenanceUC,
		logger:        params.Logger,
		cleanupSpec:   defaultTokenCleanupSpec,
	}
	if cfg := params.Cfg.Scheduler; cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.TokenCleanupSpec != "" {
			s.cleanupSpec = cfg.TokenCleanupSpec
		}
	}

	if _, err := s.cron.AddFunc(s.cleanupSpec, s.purgeExpiredTokens); err != nil {
		return nil, errors.Wrapf(err, "invalid token cleanup schedule %q", s.cleanupSpec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron runner. It returns immediately; jobs run in the background.
func (s *scheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Scheduler disabled")

		return nil
	}

	s.logger.Info("Starting scheduler", slog.String("tokenCleanupSpec", s.cleanupSpec))
	s.cron.Start()

	return nil
}

func (s *scheduler) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	ctx, logger := deliverycontext.Scope(ctx, s.logger, deliverycontext.NewRequestID(),
		slog.String("job", "purge_expired_tokens"))

	start := time.Now()
	confirmations, recoveryCodes, err := s.maintenanceUC.PurgeExpiredTokens(ctx)
	if err != nil {
		logger.Error("Job failed", slog.Any("error", err), slog.String("elapsed", util.FormatDuration(time.Since(start))))

		return
	}

	logger.Info("Job finished",
		slog.Int64("confirmationTokens", confirmations),
		slog.Int64("recoveryCodes", recoveryCodes),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}

// stop waits for running jobs to finish, bounded by the shutdown timeout.
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "scheduler jobs did not finish in time")
	}
}
