package handler

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/response"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler serves catalog image uploads.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadResponse carries the public URL of a stored file
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage stores the multipart file field and returns its URL
func (h *MediaHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile(fileFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrEmptyFile)
	}

	upload, f, err := toUploadFile(header)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer f.Close()

	url, err := h.mediaUC.UploadProductImage(c.Request().Context(), upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UploadResponse{URL: url})
}
