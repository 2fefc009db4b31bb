// Package meter counts what the formatting engine does: records rendered,
// bytes written, sink write failures, and span stack misuse. Counters are
// exposed as prometheus collectors so a host process can scrape them; the
// engine itself performs no export.
package meter

import (
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"github.com/joeydtaylor/tracewire/pkg/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Meter aggregates the engine's operational counters.
type Meter struct {
	componentMetadata types.ComponentMetadata
	registry          *prometheus.Registry
	namespace         string

	recordsTotal  *prometheus.CounterVec
	bytesTotal    prometheus.Counter
	writeFailures prometheus.Counter
	stackMisuse   prometheus.Counter
}

// NewMeter creates a meter with the provided options. Without
// MeterWithRegistry, the meter owns a private registry reachable through
// Registry().
func NewMeter(options ...types.Option[*Meter]) *Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		namespace: "tracewire",
	}
	for _, opt := range options {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	factory := promauto.With(m.registry)
	m.recordsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "records_total",
		Help:      "The total number of event records rendered",
	}, []string{"format"})
	m.bytesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bytes_written_total",
		Help:      "Total record bytes handed to sinks",
	})
	m.writeFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "write_failures_total",
		Help:      "Total sink writes that returned an error",
	})
	m.stackMisuse = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "stack_misuse_total",
		Help:      "Total span exits or closes that violated stack discipline",
	})
	return m
}

// MeterWithRegistry registers the meter's collectors on an existing registry.
func MeterWithRegistry(registry *prometheus.Registry) types.Option[*Meter] {
	return func(m *Meter) {
		m.registry = registry
	}
}

// MeterWithNamespace overrides the metric namespace.
func MeterWithNamespace(namespace string) types.Option[*Meter] {
	return func(m *Meter) {
		m.namespace = namespace
	}
}

// MeterWithComponentMetadata overrides the meter's identifying metadata.
func MeterWithComponentMetadata(name string, id string) types.Option[*Meter] {
	return func(m *Meter) {
		m.componentMetadata.Name = name
		m.componentMetadata.ID = id
	}
}

// GetComponentMetadata returns the meter's identifying metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// Registry returns the registry the meter's collectors live on.
func (m *Meter) Registry() *prometheus.Registry { return m.registry }

// IncRecord counts one rendered record for the given format ("json" or
// "pretty").
func (m *Meter) IncRecord(format string) {
	m.recordsTotal.WithLabelValues(format).Inc()
}

// AddBytes counts record bytes handed to the sink.
func (m *Meter) AddBytes(n int) {
	m.bytesTotal.Add(float64(n))
}

// IncWriteFailure counts one failed sink write.
func (m *Meter) IncWriteFailure() {
	m.writeFailures.Inc()
}

// IncStackMisuse counts one span stack discipline violation.
func (m *Meter) IncStackMisuse() {
	m.stackMisuse.Inc()
}
