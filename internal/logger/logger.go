// Package logger holds the zap logger used by the gin and gRPC adapters.
// It is built from config.Load on first use, never at import time, and
// writes to stdout.
package logger

import (
	"fmt"
	"sync"

	"github.com/banglin/go-ensure/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log      *zap.Logger
	initOnce sync.Once
)

// Initialize replaces the package logger. Mode "release" selects the JSON
// production encoder; anything else is the development console encoder.
func Initialize(cfg config.LogConfig) error {
	var zc zap.Config

	if cfg.Mode == "release" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = !cfg.DevelopmentStacks
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	zc.OutputPaths = []string{"stdout"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries.
// Errors are ignored because Sync often returns EINVAL on stdout/stderr
// (common on Linux containers and macOS).
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Named returns a named logger for subsystem identification. It never
// returns nil.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// L returns the underlying zap logger. The first call initializes it from
// the environment unless Initialize already ran. If that fails, L returns a
// no-op logger.
func L() *zap.Logger {
	initOnce.Do(func() {
		if Log != nil {
			return
		}
		cfg, err := config.Load()
		if err != nil {
			return
		}
		_ = Initialize(cfg.Log)
	})
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}
