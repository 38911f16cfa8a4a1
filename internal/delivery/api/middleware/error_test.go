package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"geekstore/internal/delivery/api/response"
	"geekstore/internal/delivery/api/validator"
	deliverycontext "geekstore/internal/delivery/context"
	domainerrors "geekstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrProductNotFound, "find product"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "PRODUCT_NOT_FOUND",
			wantMessage: "Producto no encontrado",
		},
		{
			name:        "server side app error",
			err:         domainerrors.ErrUploadFailed,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "UPLOAD_FAILED",
			wantMessage: "Error al subir el archivo",
		},
		{
			name:        "echo error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "validation error",
			err:         &validator.ValidationError{Fields: map[string]string{"email": "es obligatorio"}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "email: es obligatorio",
		},
		{
			name:        "unexpected error",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: response.GenericErrorMessage,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, c.String(http.StatusTeapot, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestErrorMiddleware_LogsStackOfUnhandledError(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/manual", nil)
	ctx, _ := deliverycontext.Scope(req.Context(), slog.New(slog.NewJSONHandler(&buf, nil)), "req-42")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req.WithContext(ctx), rec)

	m.HandleHTTPError(errors.Wrap(errors.New("deadlock detected"), "reserve stock"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Unhandled error", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Contains(t, entry["error"], "deadlock detected")

	stack, ok := entry["stack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, stack)
	assert.Contains(t, stack[0], "TestErrorMiddleware_LogsStackOfUnhandledError")
}
