// Package context carries request-scoped values from the HTTP, Pub/Sub, Kafka and cron
// entry points down to the usecases: the request id, a logger tagged with it, and the
// authenticated shopper or administrator.
package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is echoed back to the storefront and forwarded to the mail worker.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength caps ids accepted from clients and message attributes.
	MaxRequestIDLength = 64
)

// NewRequestID returns a fresh id for a request, message or job.
func NewRequestID() string {
	return uuid.NewString()
}

// SanitizeRequestID returns id trimmed, or "" when it is too long or carries
// characters that do not belong in a log line or header.
func SanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxRequestIDLength {
		return ""
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return ""
		}
	}

	return id
}

// Scope tags ctx with requestID and a child of base that logs it alongside attrs.
func Scope(ctx context.Context, base *slog.Logger, requestID string, attrs ...slog.Attr) (context.Context, *slog.Logger) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("request_id", requestID))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger := base.With(args...)

	ctx = WithRequestID(ctx, requestID)
	ctx = WithLogger(ctx, logger)

	return ctx, logger
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
