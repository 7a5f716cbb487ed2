// Package log holds the process-wide logr logger, backed by zap.
package log

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger logr.Logger
)

func init() {
	if err := Configure(false, 0); err != nil {
		panic(err)
	}
}

// Configure replaces the global logger. Development mode switches zap to its
// console encoder. Verbosity maps onto logr V-levels: 0 logs Info and Error,
// 1 adds Debug, higher values enable V(n) loggers up to n.
func Configure(development bool, verbosity int) error {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	if verbosity < 0 {
		verbosity = 0
	}
	// zapr logs V(n) at zap level -n.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.DisableStacktrace = !development

	zapLog, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = zapr.NewLogger(zapLog).WithName("fstree")
	return nil
}

// Logger returns the global logger
func Logger() logr.Logger {
	return logger
}

// SetLogger swaps the global logger, e.g. for logr.Discard() in tests.
func SetLogger(l logr.Logger) {
	logger = l
}

func Info(msg string, keysAndValues ...interface{}) {
	logger.Info(msg, keysAndValues...)
}

// Debug logs at V(1).
func Debug(msg string, keysAndValues ...interface{}) {
	logger.V(1).Info(msg, keysAndValues...)
}

func Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error(err, msg, keysAndValues...)
}

func V(level int) logr.Logger {
	return logger.V(level)
}

// WithName returns the global logger with name appended, for per-package
// loggers. Call it at log time so later calls to Configure take effect.
func WithName(name string) logr.Logger {
	return logger.WithName(name)
}

// WithValues adds some key-value pairs of context to a logger
func WithValues(keysAndValues ...interface{}) logr.Logger {
	return logger.WithValues(keysAndValues...)
}
