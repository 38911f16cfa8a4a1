package middleware

import (
	"log/slog"
	"time"

	deliverycontext "geekstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLogConfig controls which requests reach the access log.
type AccessLogConfig struct {
	// Verbose logs every request. Otherwise only server failures are logged.
	Verbose bool
	// SkipPaths are never logged, e.g. the load balancer health check.
	SkipPaths []string
}

// AccessLog writes one line per request through the request-scoped logger,
// so request_id, user_id and role are attached when known.
func AccessLog(base *slog.Logger, cfg AccessLogConfig) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error handler has not written yet; report what it will send.
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = 500
				}
			}
			if !cfg.Verbose && status < 500 {
				return err
			}

			logAccess(c, base, start, status, err)

			return err
		}
	}
}

func logAccess(c echo.Context, base *slog.Logger, start time.Time, status int, err error) {
	req := c.Request()
	ctx := req.Context()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(ctx, base).LogAttrs(ctx, level, "HTTP request", attrs...)
}
