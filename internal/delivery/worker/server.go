package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"geekstore/config"
	"geekstore/internal/delivery"
	"geekstore/internal/delivery/middleware"
	"geekstore/internal/delivery/worker/handler"
	"geekstore/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWorkerPort = 8081

// PushPath receives Pub/Sub push deliveries and the local HTTP publisher.
const PushPath = "/push"

type workerServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the mail worker, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the mail worker: a health check and the push endpoint.
// It carries no CORS or auth; the push endpoint checks the Pub/Sub OIDC token itself.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	middleware.UseCommon(e, params.Logger, params.Cfg)

	service := params.Cfg.Env.ServiceName
	e.GET(middleware.HealthPath, func(c echo.Context) error {
		body := map[string]string{"status": "ok"}
		if service != "" {
			body["service"] = service
		}

		return c.JSON(http.StatusOK, body)
	})
	e.POST(PushPath, params.PushHandler.HandlePush)

	port := defaultWorkerPort
	if params.Cfg.Worker != nil && params.Cfg.Worker.Port != 0 {
		port = params.Cfg.Worker.Port
	}

	srv := &workerServer{
		port:   port,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
