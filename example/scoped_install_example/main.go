package main

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/tracewire/pkg/builder"
)

func main() {
	builder.MustUse(builder.NewFormatter())
	defer builder.ResetDefault()

	// A scoped install shadows the process default until released.
	buffer := builder.NewBufferSink()
	guard := builder.UseScoped(builder.NewJSONFormatter(
		builder.FormatterWithWriter(buffer),
	))

	scoped := builder.Default()
	scoped.Info(scoped.NewStack(), "captured while scoped")

	guard.Release()

	fmt.Printf("captured %d scoped record(s)\n", len(buffer.Lines()))

	// Context carriers select a formatter per request without touching the
	// process default.
	ctx := builder.ContextWithFormatter(context.Background(), builder.Default())
	if f, ok := builder.FormatterFromContext(ctx); ok {
		f.Info(f.NewStack(), "routed through the context formatter")
	}
}
