package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// queryLogger routes gorm's trace through the request-scoped logger, so a slow
// stock reservation shows up with the request_id and user_id of the checkout.
type queryLogger struct {
	base          *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	logNotFound   bool
	maxSQL        int
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	level := gormlogger.Warn
	if cfg.Env.Debug {
		level = gormlogger.Info
	}
	db := cfg.DatabaseSettings()

	return &queryLogger{
		base:          base,
		level:         level,
		slowThreshold: db.SlowQueryThreshold,
		logNotFound:   db.LogNotFound,
		maxSQL:        db.MaxLoggedSQL,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min {
		return
	}
	l.logger(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, then slow ones, then every query in debug.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && (l.logNotFound || !errors.Is(err, gorm.ErrRecordNotFound)):
		attrs := append(l.queryAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.logger(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(l.queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.logger(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= gormlogger.Info:
		l.logger(ctx).LogAttrs(ctx, slog.LevelDebug, "Query", l.queryAttrs(fc, elapsed)...)
	}
}

func (l *queryLogger) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *queryLogger) queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("operation", sqlOperation(sql)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", truncateSQL(sql, l.maxSQL)),
	}
}

// sqlOperation returns the leading keyword, e.g. "UPDATE" for a stock decrement.
func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return ""
	}

	return strings.ToUpper(fields[0])
}

// truncateSQL keeps bulk inserts of order items from flooding the log.
func truncateSQL(sql string, limit int) string {
	if limit <= 0 || len(sql) <= limit {
		return sql
	}

	return sql[:limit] + fmt.Sprintf("... (%d bytes)", len(sql))
}
