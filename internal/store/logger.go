package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger adapts slog to gorm's logger.Interface. SQL is logged at debug,
// so it only shows up with --verbose.
type gormLogger struct {
	log           *slog.Logger
	slowThreshold time.Duration
}

func newGormLogger(l *slog.Logger, slowThreshold time.Duration) *gormLogger {
	return &gormLogger{log: l.With("module", "store"), slowThreshold: slowThreshold}
}

// LogMode returns the adapter itself; the level is owned by the slog handler.
func (g *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return g
}

func (g *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	g.log.DebugContext(ctx, fmt.Sprintf(msg, data...))
}

func (g *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	g.log.WarnContext(ctx, fmt.Sprintf(msg, data...))
}

func (g *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	g.log.ErrorContext(ctx, fmt.Sprintf(msg, data...))
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows_affected", rows),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		g.log.WarnContext(ctx, "query error", append(attrs, slog.Any("error", err))...)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold:
		g.log.WarnContext(ctx, "slow query", append(attrs, slog.Duration("threshold", g.slowThreshold))...)
	default:
		g.log.DebugContext(ctx, "query", attrs...)
	}
}
