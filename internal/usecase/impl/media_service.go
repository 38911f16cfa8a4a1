package impl

import (
	"context"
	"log/slog"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/constants"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"
	"geekstore/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *mediaService) UploadProductImage(ctx context.Context, file *service.UploadFile) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if file == nil || file.Size <= 0 || file.Content == nil {
		return "", errors.Wrap(domainerrors.ErrEmptyFile, "empty upload")
	}

	url, err := srv.storage.Upload(ctx, constants.FolderProducts, file)
	if err != nil {
		logger.Error("Failed to upload product image", slog.String("filename", file.Filename), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("Error al subir la imagen al servidor de archivos."), err.Error())
	}

	logger.Info("Product image uploaded",
		slog.String("url", url),
		slog.String("size", util.FormatBytes(file.Size)),
	)

	return url, nil
}
