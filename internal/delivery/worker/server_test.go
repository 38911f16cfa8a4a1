package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/delivery/worker/handler"
	mocks "geekstore/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorkerServer(t *testing.T) *workerServer {
	t.Helper()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		MailUC: mocks.NewMockMailUsecase(t),
	})

	d, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: pushHandler,
	})
	require.NoError(t, err)

	srv, ok := d.(*workerServer)
	require.True(t, ok)

	return srv
}

func TestWorkerServer_Health(t *testing.T) {
	srv := newTestWorkerServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-health")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-health", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorkerServer_PushRejectsMalformedBody(t *testing.T) {
	srv := newTestWorkerServer(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkerServer_HealthNamesService(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "geekstore-mailworker"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config: cfg,
			Logger: logger,
			MailUC: mocks.NewMockMailUsecase(t),
		}),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	d.(*workerServer).echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.JSONEq(t, `{"status":"ok","service":"geekstore-mailworker"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
