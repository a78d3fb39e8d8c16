// Package log carries a zap logger through a context.
//
// A logger is installed once per scope with WithZapLogger and every caller
// below emits through Emit, so library code never reaches for a global.
// Without an installed logger Emit is a no-op.
package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

type loggerKey struct{}

// WithZapLogger installs logger into ctx.
// The teardown flushes the logger and returns the parent context.
func WithZapLogger(
	ctx context.Context,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return context.WithValue(ctx, loggerKey{}, logger), func() context.Context {
		if err := logger.Sync(); err != nil {
			logger.Debug("failed to sync logger", zap.Error(err))
		}
		return ctx
	}
}

// FromContext returns the installed logger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

// Emit writes a structured log entry through the logger in ctx.
func Emit(ctx context.Context, level LogLevel, msg string, fields map[string]any) {
	logger := FromContext(ctx)

	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zfields...)
	case LogWarn:
		logger.Warn(msg, zfields...)
	case LogError:
		logger.Error(msg, zfields...)
	case LogDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}

// Check reports whether New would accept level and format.
func Check(level LogLevel, format string) error {
	_, _, err := parse(level, format)
	return err
}

// New builds a logger writing to stderr at level, with a "console" or
// "json" encoder.
func New(level LogLevel, format string) (*zap.Logger, error) {
	lvl, cfg, err := parse(level, format)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func parse(level LogLevel, format string) (zapcore.Level, zap.Config, error) {
	lvl, err := zapcore.ParseLevel(string(level))
	if err != nil {
		return lvl, zap.Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "console", "":
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		return lvl, cfg, nil
	case "json":
		return lvl, zap.NewProductionConfig(), nil
	}
	return lvl, zap.Config{}, fmt.Errorf("invalid log format %q: must be console or json", format)
}
