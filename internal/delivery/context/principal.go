package context

import (
	"context"
	"log/slog"
)

// Principal is the account behind an authenticated request.
type Principal struct {
	UserID uint64
	Email  string
	Roles  []string
}

// LogAttrs describes the principal for access and usecase logs. The email is left out.
func (p Principal) LogAttrs() []slog.Attr {
	role := ""
	if len(p.Roles) > 0 {
		role = p.Roles[0]
	}

	return []slog.Attr{
		slog.Uint64("user_id", p.UserID),
		slog.String("role", role),
	}
}

// WithPrincipal stores p on ctx and tags the request logger with it.
func WithPrincipal(ctx context.Context, p Principal, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyPrincipal, p)

	logger := GetLoggerOrDefault(ctx, fallback)
	if logger == nil {
		return ctx
	}
	attrs := p.LogAttrs()
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}

	return WithLogger(ctx, logger.With(args...))
}

// GetPrincipal returns the authenticated account, if any.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(KeyPrincipal).(Principal)

	return p, ok && p.UserID != 0
}
