// Options configuring the formatter at construction time. The configuration
// is frozen once NewFormatter returns; there are no runtime setters.

package formatter

import (
	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/meter"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

// WithWriter sets the sink that receives rendered records.
func WithWriter(sink types.Sink) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.sink = sink
	}
}

// WithFile toggles the "file" metadata field ("path:line").
func WithFile(on bool) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.File = on
	}
}

// WithModule toggles the "module" metadata field (the emitting target path).
func WithModule(on bool) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Module = on
	}
}

// WithSpanFormat sets the span-name composition policy for the "span" field.
func WithSpanFormat(format spantrack.Format) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Span = format
	}
}

// WithTimezone sets the zone timestamps are rendered in.
func WithTimezone(tz Timezone) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Timezone = tz
	}
}

// WithTime sets the timestamp format; TimeFormatOff() omits the field.
func WithTime(tf TimeFormat) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Time = tf
	}
}

// WithCase applies a key casing convention uniformly to every output key,
// metadata keys included.
func WithCase(mode casing.Mode) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Case = mode
	}
}

// WithJoinPolicy sets how a field present on both an ancestor span and a
// descendant span or event is resolved.
func WithJoinPolicy(policy fieldmap.JoinPolicy) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Join = policy
	}
}

// WithJSON switches between compact JSON records and the pretty block.
func WithJSON(on bool) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.JSON = on
	}
}

// WithLevelFormat sets how the event level is rendered.
func WithLevelFormat(format LevelFormat) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.cfg.Level = format
	}
}

// WithMessageKey sets the field key whose event-supplied value overrides the
// record's message text. Defaults to "message".
func WithMessageKey(key string) types.Option[*Formatter] {
	return func(f *Formatter) {
		if key != "" {
			f.cfg.MessageKey = key
		}
	}
}

// WithLogger attaches one or more diagnostic loggers to the formatter.
func WithLogger(loggers ...types.Logger) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.ConnectLogger(loggers...)
	}
}

// WithMeter attaches a meter that counts records, bytes, and failures.
func WithMeter(m *meter.Meter) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.meter = m
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata(name string, id string) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.componentMetadata.Name = name
		f.componentMetadata.ID = id
	}
}

// WithDerivedField adds a computed field evaluated per event. The expression
// runs against an environment holding "fields" (the merged field values),
// "message", "span", "module", and "level"; its result is appended under name
// before the metadata fields. Expressions that fail to compile are reported
// to the diagnostic loggers and dropped.
func WithDerivedField(name string, expression string) types.Option[*Formatter] {
	return func(f *Formatter) {
		f.pendingDerived = append(f.pendingDerived, pendingDerived{name: name, expression: expression})
	}
}
