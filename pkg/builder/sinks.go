package builder

import (
	"io"

	"github.com/joeydtaylor/tracewire/pkg/internal/internallogger"
	"github.com/joeydtaylor/tracewire/pkg/internal/meter"
	"github.com/joeydtaylor/tracewire/pkg/internal/sinks"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"github.com/prometheus/client_golang/prometheus"
)

// NewStdoutSink returns a sink writing records to standard output.
func NewStdoutSink() types.Sink { return sinks.NewStdoutSink() }

// NewStderrSink returns a sink writing records to standard error.
func NewStderrSink() types.Sink { return sinks.NewStderrSink() }

// NewWriterSink wraps an arbitrary io.Writer as a record sink.
func NewWriterSink(name string, w io.Writer) types.Sink { return sinks.NewWriterSink(name, w) }

// NewFileSink appends records to the file at path, creating directories as
// needed.
func NewFileSink(path string) (types.Sink, error) { return sinks.NewFileSink(path) }

// NewCompressedFileSink gzip-compresses records into the file at path.
func NewCompressedFileSink(path string) (types.Sink, error) {
	return sinks.NewCompressedFileSink(path)
}

// NewBufferSink collects records in memory.
func NewBufferSink() *sinks.BufferSink { return sinks.NewBufferSink() }

// NewMultiSink duplicates every record to all children.
func NewMultiSink(children ...types.Sink) types.Sink { return sinks.NewMultiSink(children...) }

// NewLogger creates the library's zap-backed diagnostics logger.
func NewLogger(options ...internallogger.LoggerOption) types.Logger {
	return internallogger.NewLogger(options...)
}

// LoggerWithLevel sets the diagnostics logger level by name.
func LoggerWithLevel(level string) internallogger.LoggerOption {
	return internallogger.LoggerWithLevel(level)
}

// NewMeter creates an operational-counter meter.
func NewMeter(options ...types.Option[*meter.Meter]) *meter.Meter {
	return meter.NewMeter(options...)
}

// MeterWithRegistry registers the meter's collectors on an existing
// prometheus registry.
func MeterWithRegistry(registry *prometheus.Registry) types.Option[*meter.Meter] {
	return meter.MeterWithRegistry(registry)
}

// MeterWithNamespace overrides the meter's metric namespace.
func MeterWithNamespace(namespace string) types.Option[*meter.Meter] {
	return meter.MeterWithNamespace(namespace)
}
