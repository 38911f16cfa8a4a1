package usecase

import (
	"context"

	"geekstore/internal/domain/service"
)

// MediaUsecase uploads catalog images.
type MediaUsecase interface {
	// UploadProductImage stores the file and returns its public URL.
	UploadProductImage(ctx context.Context, file *service.UploadFile) (string, error)
}
