// Package internallogger provides the zap-backed logger the library's
// components use for their own diagnostics. The formatting engine never logs
// through itself; emit-path failures are reported here instead.
package internallogger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures the adapter at construction time.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter adapts a zap.Logger to the types.Logger diagnostics
// interface.
type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 2

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		atomicLevel,
	)

	return &ZapLoggerAdapter{
		logger:      zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerDepth)),
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
	}
}

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		level := ConvertLevel(parseLogLevel(levelStr))
		cfg.Level = zap.NewAtomicLevelAt(level)
		*lvl = level
	}
}

// LoggerWithDevelopment enables or disables development mode in the logger
// configuration.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		cfg.Development = dev
	}
}

// LoggerWithCallerSkip adjusts the number of caller frames to skip.
func LoggerWithCallerSkip(skip int) LoggerOption {
	return func(cfg *zap.Config, lvl *zapcore.Level, callerDepth *int) {
		*callerDepth += skip
	}
}
