package dcontext

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
)

var defaultLogger = logrus.StandardLogger().WithField("go.version", runtime.Version())

// Logger is the leveled-logging surface isccsum's CLI actually calls.
type Logger interface {
	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)
}

type loggerKey struct{}

// WithLogger creates a new context with provided logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger from the current context, falling back to the
// package default. A CLI invocation carries exactly one logger end to end,
// so there is no per-request field resolution here.
func GetLogger(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return defaultLogger
}
