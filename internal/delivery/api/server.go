package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"geekstore/config"
	"geekstore/internal/delivery"
	apimiddleware "geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/router"
	"geekstore/internal/delivery/api/validator"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/delivery/middleware"
	"geekstore/internal/domain/lifecycle"
	"geekstore/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const corsMaxAgeSeconds = 3600

type apiServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for the storefront API, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the storefront API and registers every /api/v1 route.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho applies the shared middleware, browser-facing headers and the JSON error envelope.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	middleware.UseCommon(e, logger, cfg)
	e.Use(storefrontCORS(cfg.CORS.Origins()))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	// Multipart payment proofs count against the same limit.
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func storefrontCORS(origins []string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderAuthorization, echo.HeaderContentType,
			echo.HeaderXRequestedWith, deliverycontext.HeaderXRequestID,
		},
		ExposeHeaders:    []string{deliverycontext.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSeconds,
	})
}

// Serve speaks h2c so Cloud Run can keep HTTP/2 end to end.
func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	err := s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.idleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
