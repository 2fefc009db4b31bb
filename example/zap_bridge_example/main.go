package main

import (
	"errors"

	"github.com/joeydtaylor/tracewire/pkg/builder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// An existing zap-hosted application can keep its zap call sites and route
// every entry through the formatting engine instead of a zap encoder.
func main() {
	formatter := builder.NewJSONFormatter()
	defer formatter.Close()

	logger := zap.New(builder.NewZapCore(formatter, zapcore.DebugLevel))
	defer logger.Sync()

	request := logger.With(zap.String("request_id", "r-7731"))
	request.Info("request accepted", zap.Int("body_bytes", 2048))
	request.Error("upstream refused", zap.Error(errors.New("connection reset")))
}
