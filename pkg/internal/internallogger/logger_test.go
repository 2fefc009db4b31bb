package internallogger_test

import (
	"errors"
	"testing"

	"github.com/joeydtaylor/tracewire/pkg/internal/internallogger"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

func TestLoggerLevelRoundTrip(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("expected debug, got %v", got)
	}

	logger.SetLevel(types.ErrorLevel)
	if got := logger.GetLevel(); got != types.ErrorLevel {
		t.Fatalf("expected error after SetLevel, got %v", got)
	}
}

func TestLoggerDefaultsToInfo(t *testing.T) {
	logger := internallogger.NewLogger()
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected info default, got %v", got)
	}
}

func TestLoggerAcceptsStructuredArguments(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("error"))

	// None of these may panic, odd argument lists included.
	logger.Debug("below threshold", "k", 1)
	logger.Info("still below", "err", errors.New("ignored"))
	logger.Error("reported", "component", "formatter", "orphan")

	if err := logger.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}
