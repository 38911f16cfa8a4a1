package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"geekstore/config"
	"geekstore/internal/domain/lifecycle"
	"geekstore/internal/errors"
	"geekstore/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store database. The schema is migrated on start when env.autoMigrate is set,
// and pool waits are sampled until shutdown.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique and foreign key violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
	db.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	settings := params.Config.DatabaseSettings()
	monitor := &poolMonitor{
		stats:         sqlDB.Stats,
		logger:        params.Logger,
		interval:      settings.PoolMonitorInterval,
		warnThreshold: settings.PoolWaitWarnThreshold,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the store schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// poolMonitor reports requests that had to wait for a free connection,
// typically checkouts queuing behind stock reservations under load.
type poolMonitor struct {
	stats         func() sql.DBStats
	logger        *slog.Logger
	interval      time.Duration
	warnThreshold time.Duration
}

func (p *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	prev := p.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := p.stats()
			p.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits between two samples: Warn once their total reaches warnThreshold.
func (p *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= p.warnThreshold {
		level = slog.LevelWarn
	}

	p.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
