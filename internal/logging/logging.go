// Package logging builds the process-wide zap logger shared by the commands.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	inner = zap.NewNop()
)

// New builds a logger at the named level ("debug", "info", "warn", "error")
// with the given encoding ("console" or "json"), writing to outputs or to
// stderr when none are given. It also installs the logger as the process
// logger returned by Provide.
func New(level, encoding string, outputs ...string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	switch encoding {
	case "console", "json":
	default:
		return nil, fmt.Errorf("logging: unknown encoding %q", encoding)
	}

	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	Set(logger)
	return logger, nil
}

// Set installs l as the process logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	inner = l
	mu.Unlock()
}

// Provide returns the process logger. It is a no-op logger until New or Set
// has been called.
func Provide() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return inner
}
