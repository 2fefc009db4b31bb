package builder

import (
	"github.com/joeydtaylor/tracewire/pkg/internal/formatter"
	"github.com/joeydtaylor/tracewire/pkg/internal/zapbridge"
	"go.uber.org/zap/zapcore"
)

// NewZapCore returns a zapcore.Core that routes zap entries at or above
// enab's level through the given formatter. Wrap it with zap.New to drive
// the engine from an existing zap-hosted application.
func NewZapCore(f *formatter.Formatter, enab zapcore.LevelEnabler) zapcore.Core {
	return zapbridge.NewCore(f, enab)
}
