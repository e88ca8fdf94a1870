package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"examadda/config"
	deliverycontext "examadda/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// maxLoggedSQLLength truncates statements so bulk dashboard reads do not flood the log.
const maxLoggedSQLLength = 2048

// queryLogger routes GORM output to the request-scoped slog logger when the
// query context carries one, so SQL lines share the request_id of the HTTP call.
type queryLogger struct {
	fallback      *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	ql := &queryLogger{
		fallback: baseLogger.With(slog.String("component", "gorm")),
		level:    gormlogger.Warn,
	}
	if cfg == nil {
		return ql
	}

	if cfg.Env.Debug {
		ql.level = gormlogger.Info
	}
	if cfg.Postgres != nil {
		ql.slowThreshold = cfg.Postgres.SlowQueryThreshold
	}

	return ql
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) message(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < enabledAt {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "Database message", slog.String("detail", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements at error level, slow ones at warn, and everything else only in info mode.
// Not-found lookups are expected control flow for the repositories and are never logged.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent || errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error:
		attrs := append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow database query", attrs...)
	case l.level >= gormlogger.Info:
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelDebug, "Database query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQLLength {
		sql = sql[:maxLoggedSQLLength] + "..."
	}

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
