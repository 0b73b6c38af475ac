// Package rlog adapts go.uber.org/zap's structured logger to the
// core.Logger seam the renderer and loaders log through.
package rlog

import (
	"go.uber.org/zap"

	"github.com/corewave/pathtracer/pkg/core"
)

// Logger implements core.Logger by forwarding Printf-style calls to a zap
// sugared logger at Info level, while also exposing Warnf for
// recoverable-but-noteworthy conditions. The loaders log through the
// core.Logger seam, so they report skipped directives with Printf.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a production zap logger: JSON output, Info level and above.
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// NewDevelopment builds a human-readable console logger suited to local
// runs, with Debug level and above and stack traces on warnings.
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// Printf implements core.Logger at Info level.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a recoverable condition distinct from the core.Logger seam's
// Info-level Printf.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries; call before process exit.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*Logger)(nil)

// NopLogger discards everything, matching the teacher's own in-memory
// core.Logger test double.
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

var _ core.Logger = NopLogger{}
