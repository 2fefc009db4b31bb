// Package builder is the public facade of the Tracewire library. It
// re-exports the constructors and configuration options of the internal
// components so applications depend on one import path.
package builder

import (
	"context"

	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/formatter"
	"github.com/joeydtaylor/tracewire/pkg/internal/meter"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

// Formatter is the structured-event formatting engine.
type Formatter = formatter.Formatter

// Metadata carries the per-event level, target, caller, message, and time.
type Metadata = formatter.Metadata

// NewFormatter creates a formatter with the pretty-output defaults.
func NewFormatter(options ...types.Option[*formatter.Formatter]) *formatter.Formatter {
	return formatter.NewFormatter(options...)
}

// NewJSONFormatter creates a formatter with the JSON profile.
func NewJSONFormatter(options ...types.Option[*formatter.Formatter]) *formatter.Formatter {
	return formatter.NewJSONFormatter(options...)
}

// FormatterWithWriter sets the sink that receives rendered records.
func FormatterWithWriter(sink types.Sink) types.Option[*formatter.Formatter] {
	return formatter.WithWriter(sink)
}

// FormatterWithFile toggles the "file" metadata field.
func FormatterWithFile(on bool) types.Option[*formatter.Formatter] {
	return formatter.WithFile(on)
}

// FormatterWithModule toggles the "module" metadata field.
func FormatterWithModule(on bool) types.Option[*formatter.Formatter] {
	return formatter.WithModule(on)
}

// FormatterWithSpanFormat sets the span-name composition policy.
func FormatterWithSpanFormat(format spantrack.Format) types.Option[*formatter.Formatter] {
	return formatter.WithSpanFormat(format)
}

// FormatterWithTimezone sets the timestamp zone.
func FormatterWithTimezone(tz formatter.Timezone) types.Option[*formatter.Formatter] {
	return formatter.WithTimezone(tz)
}

// FormatterWithTime sets the timestamp format.
func FormatterWithTime(tf formatter.TimeFormat) types.Option[*formatter.Formatter] {
	return formatter.WithTime(tf)
}

// FormatterWithCase applies a key casing convention to every output key.
func FormatterWithCase(mode casing.Mode) types.Option[*formatter.Formatter] {
	return formatter.WithCase(mode)
}

// FormatterWithJoinPolicy sets the field merge policy for nested spans and
// events.
func FormatterWithJoinPolicy(policy fieldmap.JoinPolicy) types.Option[*formatter.Formatter] {
	return formatter.WithJoinPolicy(policy)
}

// FormatterWithJSON switches between JSON records and the pretty block.
func FormatterWithJSON(on bool) types.Option[*formatter.Formatter] {
	return formatter.WithJSON(on)
}

// FormatterWithLevelFormat sets how the event level is rendered.
func FormatterWithLevelFormat(format formatter.LevelFormat) types.Option[*formatter.Formatter] {
	return formatter.WithLevelFormat(format)
}

// FormatterWithMessageKey sets the field key that overrides the message text.
func FormatterWithMessageKey(key string) types.Option[*formatter.Formatter] {
	return formatter.WithMessageKey(key)
}

// FormatterWithLogger attaches diagnostic loggers to the formatter.
func FormatterWithLogger(loggers ...types.Logger) types.Option[*formatter.Formatter] {
	return formatter.WithLogger(loggers...)
}

// FormatterWithMeter attaches an operational-counter meter.
func FormatterWithMeter(m *meter.Meter) types.Option[*formatter.Formatter] {
	return formatter.WithMeter(m)
}

// FormatterWithDerivedField adds an expression-computed field to every record.
func FormatterWithDerivedField(name string, expression string) types.Option[*formatter.Formatter] {
	return formatter.WithDerivedField(name, expression)
}

// FormatterWithComponentMetadata adds component metadata overrides.
func FormatterWithComponentMetadata(name string, id string) types.Option[*formatter.Formatter] {
	return formatter.WithComponentMetadata(name, id)
}

// Use installs f as the process-wide default formatter.
func Use(f *formatter.Formatter) error { return formatter.Use(f) }

// MustUse installs f as the process-wide default and panics if one is
// already installed.
func MustUse(f *formatter.Formatter) { formatter.MustUse(f) }

// UseScoped installs f as the default and returns a guard restoring the
// prior default on Release.
func UseScoped(f *formatter.Formatter) *formatter.Guard { return formatter.UseScoped(f) }

// Default returns the installed default formatter, or nil.
func Default() *formatter.Formatter { return formatter.Default() }

// ResetDefault uninstalls the default formatter.
func ResetDefault() { formatter.ResetDefault() }

// ContextWithFormatter returns a context carrying f.
func ContextWithFormatter(ctx context.Context, f *formatter.Formatter) context.Context {
	return formatter.ContextWithFormatter(ctx, f)
}

// FormatterFromContext returns the formatter carried by ctx, falling back to
// the installed default.
func FormatterFromContext(ctx context.Context) (*formatter.Formatter, bool) {
	return formatter.FromContext(ctx)
}
