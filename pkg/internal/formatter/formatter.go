// Package formatter implements the structured-event formatting engine: it
// merges span-inherited and per-event fields under the configured join
// policy, assembles the flat event record with its metadata, and renders it
// as compact JSON or as an aligned human-readable block before handing the
// bytes to the configured sink.
//
// The engine is synchronous and safe for concurrent use from any number of
// goroutines. Per-context span state lives in spantrack.Stack values owned by
// the callers; the only shared mutable resource is the sink, which serializes
// its own writes.
package formatter

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/meter"
	"github.com/joeydtaylor/tracewire/pkg/internal/sinks"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"github.com/joeydtaylor/tracewire/pkg/internal/utils"
)

// Formatter is the engine. Its configuration is frozen when NewFormatter
// returns; after that every method is safe to call concurrently.
type Formatter struct {
	componentMetadata types.ComponentMetadata
	cfg               Config
	sink              types.Sink
	registry          *spantrack.Registry
	meter             *meter.Meter
	derived           []derivedField
	pendingDerived    []pendingDerived

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewFormatter creates a formatter with the provided options. The defaults
// produce the pretty human-readable block on stdout with local HH:MM:SS
// timestamps, upper-case levels, "::"-concatenated span names, and
// overwrite-on-collision field merging.
func NewFormatter(options ...types.Option[*Formatter]) *Formatter {
	f := &Formatter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FORMATTER",
		},
		cfg: Config{
			Span:       spantrack.Concatenate("::"),
			Timezone:   TimezoneLocal,
			Time:       PrettyTime(),
			Case:       casing.None,
			Join:       fieldmap.OverwriteAll(),
			JSON:       false,
			Level:      LevelUppercase,
			MessageKey: "message",
		},
		sink:     sinks.NewStdoutSink(),
		registry: spantrack.NewRegistry(),
	}
	for _, opt := range options {
		opt(f)
	}
	f.compileDerived()
	return f
}

// NewJSONFormatter creates a formatter with the JSON profile: one compact
// JSON object per event on stdout, RFC3339 millisecond UTC timestamps with a
// Z suffix, numeric levels, and file/module/span metadata enabled. Options
// are applied on top of the profile.
func NewJSONFormatter(options ...types.Option[*Formatter]) *Formatter {
	profile := []types.Option[*Formatter]{
		WithJSON(true),
		WithFile(true),
		WithModule(true),
		WithSpanFormat(spantrack.Concatenate("::")),
		WithTimezone(TimezoneUTC),
		WithTime(RFC3339Options(PrecisionMillis, true)),
		WithLevelFormat(LevelNumber),
	}
	return NewFormatter(append(profile, options...)...)
}

// GetComponentMetadata returns the formatter's identifying metadata.
func (f *Formatter) GetComponentMetadata() types.ComponentMetadata {
	return f.componentMetadata
}

// Config returns the frozen configuration snapshot.
func (f *Formatter) Config() Config { return f.cfg }

// NewStack creates a span stack bound to this formatter's join policy and
// span-name composition. One stack serves exactly one execution context.
func (f *Formatter) NewStack() *spantrack.Stack {
	return spantrack.NewStack(
		spantrack.WithJoinPolicy(f.cfg.Join),
		spantrack.WithFormat(f.cfg.Span),
	)
}

// NewSpan creates and registers a span node with the given name and
// alternating key/value fields. The node stays registered until CloseSpan.
func (f *Formatter) NewSpan(name string, keysAndValues ...interface{}) *spantrack.Node {
	return f.registry.Create(name, fieldmap.FromPairs(keysAndValues...))
}

// LookupSpan returns the registered open span with the given id.
func (f *Formatter) LookupSpan(id string) (*spantrack.Node, bool) {
	return f.registry.Lookup(id)
}

// CloseSpan drops the registered span node. Closing a span that is still
// entered on some stack fails with a StackMisuseError.
func (f *Formatter) CloseSpan(id string) error {
	err := f.registry.Close(id)
	if err != nil {
		if f.meter != nil {
			f.meter.IncStackMisuse()
		}
		f.NotifyLoggers(types.WarnLevel, "span close refused", "span_id", id, "error", err)
	}
	return err
}

// Emit assembles, renders, and writes one event record. The stack may be nil
// for events emitted outside any span. A sink failure is returned to the
// caller and counted; it never affects subsequent events.
func (f *Formatter) Emit(stack *spantrack.Stack, eventFields *fieldmap.FieldMap, meta Metadata) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event record dropped: %v", r)
			f.NotifyLoggers(types.ErrorLevel, "event record dropped", "panic", fmt.Sprintf("%v", r))
		}
	}()

	rec := f.assemble(stack, eventFields, &meta)

	var buf = f.render(rec)
	defer buf.Free()

	format := "pretty"
	if f.cfg.JSON {
		format = "json"
	}
	if f.meter != nil {
		f.meter.IncRecord(format)
		f.meter.AddBytes(buf.Len())
	}

	if werr := f.sink.Write(buf.Bytes()); werr != nil {
		if f.meter != nil {
			f.meter.IncWriteFailure()
		}
		f.NotifyLoggers(types.ErrorLevel, "sink write failed", "error", werr)
		return werr
	}
	return nil
}

// Trace emits a trace-level event.
func (f *Formatter) Trace(stack *spantrack.Stack, msg string, keysAndValues ...interface{}) error {
	return f.event(stack, types.TraceLevel, msg, keysAndValues)
}

// Debug emits a debug-level event.
func (f *Formatter) Debug(stack *spantrack.Stack, msg string, keysAndValues ...interface{}) error {
	return f.event(stack, types.DebugLevel, msg, keysAndValues)
}

// Info emits an info-level event.
func (f *Formatter) Info(stack *spantrack.Stack, msg string, keysAndValues ...interface{}) error {
	return f.event(stack, types.InfoLevel, msg, keysAndValues)
}

// Warn emits a warn-level event.
func (f *Formatter) Warn(stack *spantrack.Stack, msg string, keysAndValues ...interface{}) error {
	return f.event(stack, types.WarnLevel, msg, keysAndValues)
}

// Error emits an error-level event.
func (f *Formatter) Error(stack *spantrack.Stack, msg string, keysAndValues ...interface{}) error {
	return f.event(stack, types.ErrorLevel, msg, keysAndValues)
}

func (f *Formatter) event(stack *spantrack.Stack, level types.LogLevel, msg string, keysAndValues []interface{}) error {
	meta := Metadata{Level: level, Message: msg, Time: time.Now()}
	meta.Module, meta.File, meta.Line = callerMeta(3)
	return f.Emit(stack, fieldmap.FromPairs(keysAndValues...), meta)
}

// Close closes the configured sink.
func (f *Formatter) Close() error {
	return f.sink.Close()
}

// callerMeta resolves the emitting package, file, and line. The module is the
// caller's package path segment, e.g. "worker" for
// "github.com/acme/app/worker".
func callerMeta(skip int) (module, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "."); i >= 0 {
			name = name[:i]
		}
		module = name
	}
	return module, file, line
}
