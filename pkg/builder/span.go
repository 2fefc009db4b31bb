package builder

import (
	"context"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
)

// SpanNode is the per-span field storage.
type SpanNode = spantrack.Node

// SpanStack is the per-context sequence of entered spans.
type SpanStack = spantrack.Stack

// EnteredSpan is the scoped handle returned by SpanStack.Enter.
type EnteredSpan = spantrack.Entered

// StackMisuseError reports an exit or close of a span that is not at the top
// of its stack.
type StackMisuseError = spantrack.StackMisuseError

// NewSpanNode creates a span node with the given name and fields.
func NewSpanNode(name string, fields *fieldmap.FieldMap) *spantrack.Node {
	return spantrack.NewNode(name, fields)
}

// ContextWithSpanStack returns a context carrying the given span stack.
func ContextWithSpanStack(ctx context.Context, stack *spantrack.Stack) context.Context {
	return spantrack.ContextWithStack(ctx, stack)
}

// SpanStackFromContext returns the span stack carried by ctx, if any.
func SpanStackFromContext(ctx context.Context) (*spantrack.Stack, bool) {
	return spantrack.StackFromContext(ctx)
}

// Fields builds a FieldMap from alternating key/value arguments.
func Fields(keysAndValues ...interface{}) *fieldmap.FieldMap {
	return fieldmap.FromPairs(keysAndValues...)
}
