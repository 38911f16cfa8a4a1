// Package middleware holds the echo middleware shared by the API and mail worker servers.
package middleware

import (
	"log/slog"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// HealthPath is served by both processes and kept out of the access log.
const HealthPath = "/health"

// UseCommon installs request scoping, panic recovery and the access log. Panics are logged with the request id of the request
// that raised them.
func UseCommon(e *echo.Echo, logger *slog.Logger, cfg *config.Config) {
	e.HideBanner = true
	e.HidePort = true
	if cfg.HTTP.BehindProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(RequestScope(logger))
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, logger).ErrorContext(ctx, "Recovered from panic",
				slog.Any("error", err),
				slog.String("stack", string(stack)),
			)

			return err
		},
	}))
	e.Use(AccessLog(logger, AccessLogConfig{
		Verbose:   cfg.Env.Debug,
		SkipPaths: []string{HealthPath},
	}))
}
