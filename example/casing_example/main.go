package main

import (
	"github.com/joeydtaylor/tracewire/pkg/builder"
)

// Key casing applies uniformly to every record key, metadata included.
func main() {
	formatter := builder.NewJSONFormatter(
		builder.FormatterWithCase(builder.CaseCamel),
	)
	defer formatter.Close()

	stack := formatter.NewStack()

	span := stack.Enter(builder.NewSpanNode("sync", builder.Fields("user_id", 42)))
	defer span.Exit()

	// Emits userId, retryCount, and camel-cased metadata keys.
	formatter.Info(stack, "sync complete", "retry_count", 0)
}
