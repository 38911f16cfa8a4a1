package storage

import (
	"context"
	"log/slog"

	"geekstore/config"
	"geekstore/internal/domain/constants"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage creates a FileStorage based on configuration
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}

	switch cfg.Provider {
	case "", constants.StorageProviderBlob:
		storage, err := NewBlobStorage(params.Ctx, cfg.BucketURL, cfg.RootFolder, cfg.PublicBaseURL, params.Logger)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return storage.Close()
			},
		})

		return storage, nil

	case constants.StorageProviderS3:
		return NewS3Storage(params.Ctx, S3Options{
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
			CDNDomain: cfg.S3.CDNDomain,
			Root:      cfg.RootFolder,
		}, params.Logger)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
