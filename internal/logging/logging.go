// Package logging builds the zap logger used across kvocab.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps the interactive transcript free of log lines.
const DefaultLevel = "warn"

// ValidLevels lists the accepted level names.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// New returns a development-style logger writing to stderr at the given level.
// An empty level means DefaultLevel.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
