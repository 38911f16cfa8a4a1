package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, buf *bytes.Buffer) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.CORS = &config.CORSConfig{AllowedOrigins: "https://store.example"}

	e := newEcho(cfg, slog.New(slog.NewTextHandler(buf, nil)))
	e.POST("/api/v1/orders/manual", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	e.GET("/api/v1/boom", func(c echo.Context) error {
		panic("nil variant")
	})

	return e
}

func TestAPIServer_PreflightAllowsRequestID(t *testing.T) {
	e := newTestEcho(t, &bytes.Buffer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders/manual", nil)
	req.Header.Set(echo.HeaderOrigin, "https://store.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "authorization,x-request-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://store.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), deliverycontext.HeaderXRequestID)
}

func TestAPIServer_SecurityHeadersAndRequestID(t *testing.T) {
	e := newTestEcho(t, &bytes.Buffer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/manual", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\r\nx")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "DENY", rec.Header().Get(echo.HeaderXFrameOptions))

	id := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, id)
	assert.NotContains(t, id, "bad id")
}

func TestAPIServer_BodyLimit(t *testing.T) {
	e := newTestEcho(t, &bytes.Buffer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/manual", strings.NewReader(strings.Repeat("x", 4096)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestAPIServer_PanicIsRecoveredWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-boom")
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { e.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.Contains(t, rec.Body.String(), `"request_id":"req-boom"`)
	assert.Contains(t, buf.String(), "Recovered from panic")
	assert.Contains(t, buf.String(), "request_id=req-boom")
}
