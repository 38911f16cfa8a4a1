package middleware

import (
	"log/slog"
	"net/http"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/delivery/api/validator"
	deliverycontext "geekstore/internal/delivery/context"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is echo's HTTPErrorHandler. It maps whatever a handler returned
// onto the JSON envelope and never exposes internal detail for 5xx.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, response.CodeHTTP, message, nil)

		return
	}

	m.logFailure(c, "Unhandled error", err)
	_ = response.Internal(c)
}

// logFailure logs err with the frames where it was first wrapped.
func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error, attrs ...slog.Attr) {
	req := c.Request()
	ctx := req.Context()

	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
	)
	if frames := errors.Frames(err, errors.DefaultFrameLimit); len(frames) > 0 {
		attrs = append(attrs, slog.Any("stack", frames))
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
