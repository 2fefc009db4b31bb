// Package zapbridge adapts a zap-hosted application onto the formatting
// engine. The bridge is a zapcore.Core: fields accumulated with
// Logger.With become an unnamed field scope on the engine's span stack, so
// they inherit and merge exactly like span fields, and every entry written
// through zap is assembled and rendered by the engine.
package zapbridge

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/formatter"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// Core routes zap entries into a Formatter. Construct with NewCore; zero
// values are not usable.
type Core struct {
	zapcore.LevelEnabler
	f     *formatter.Formatter
	stack *spantrack.Stack
}

// NewCore returns a zapcore.Core that formats entries at or above enab's
// level through f.
func NewCore(f *formatter.Formatter, enab zapcore.LevelEnabler) zapcore.Core {
	return &Core{
		LevelEnabler: enab,
		f:            f,
		stack:        f.NewStack(),
	}
}

// With opens an unnamed field scope holding the given fields. The returned
// core owns a fork of the stack, so sibling loggers never see each other's
// fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	fork := c.stack.Fork()
	fork.Enter(spantrack.NewNode("", convertFields(fields)))
	return &Core{LevelEnabler: c.LevelEnabler, f: c.f, stack: fork}
}

// Check adds the core to the checked entry when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write assembles and emits one entry through the formatter.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	meta := formatter.Metadata{
		Level:   convertLevel(ent.Level),
		Module:  ent.LoggerName,
		Message: ent.Message,
		Time:    ent.Time,
	}
	if ent.Caller.Defined {
		meta.File = ent.Caller.File
		meta.Line = ent.Caller.Line
	}
	return c.f.Emit(c.stack, convertFields(fields), meta)
}

// Sync is a no-op; sinks manage their own durability.
func (c *Core) Sync() error { return nil }

func convertLevel(level zapcore.Level) types.LogLevel {
	switch level {
	case zapcore.DebugLevel:
		return types.DebugLevel
	case zapcore.InfoLevel:
		return types.InfoLevel
	case zapcore.WarnLevel:
		return types.WarnLevel
	case zapcore.ErrorLevel:
		return types.ErrorLevel
	case zapcore.DPanicLevel:
		return types.DPanicLevel
	case zapcore.PanicLevel:
		return types.PanicLevel
	case zapcore.FatalLevel:
		return types.FatalLevel
	default:
		return types.InfoLevel
	}
}

// convertFields maps zap fields onto the engine's Value union in order.
// Shapes with no scalar form degrade through zap's own object encoder and
// then to a debug string.
func convertFields(fields []zapcore.Field) *fieldmap.FieldMap {
	out := fieldmap.New()
	for _, field := range fields {
		out.Set(field.Key, convertField(field))
	}
	return out
}

func convertField(field zapcore.Field) fieldmap.Value {
	switch field.Type {
	case zapcore.StringType:
		return fieldmap.String(field.String)
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return fieldmap.Int64(field.Integer)
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		return fieldmap.Uint64(uint64(field.Integer))
	case zapcore.Float64Type:
		return fieldmap.Float64(math.Float64frombits(uint64(field.Integer)))
	case zapcore.Float32Type:
		return fieldmap.Float64(float64(math.Float32frombits(uint32(field.Integer))))
	case zapcore.BoolType:
		return fieldmap.Bool(field.Integer == 1)
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return fieldmap.Debug(err.Error())
		}
		return fieldmap.Null()
	case zapcore.StringerType:
		if s, ok := field.Interface.(fmt.Stringer); ok {
			return fieldmap.Debug(s.String())
		}
		return fieldmap.Null()
	default:
		enc := zapcore.NewMapObjectEncoder()
		field.AddTo(enc)
		return fieldmap.Any(enc.Fields[field.Key])
	}
}
