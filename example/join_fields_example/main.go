package main

import (
	"github.com/joeydtaylor/tracewire/pkg/builder"
)

// With a join policy, string fields repeated in nested spans concatenate
// instead of overwriting, which keeps a breadcrumb of every value seen on
// the way down.
func main() {
	formatter := builder.NewJSONFormatter(
		builder.FormatterWithJoinPolicy(builder.JoinKeys("::", "path")),
	)
	defer formatter.Close()

	stack := formatter.NewStack()

	ingest := stack.Enter(builder.NewSpanNode("ingest", builder.Fields("path", "ingest")))
	defer ingest.Exit()

	decode := stack.Enter(builder.NewSpanNode("decode", builder.Fields("path", "decode")))
	defer decode.Exit()

	// path renders as "ingest::decode".
	formatter.Info(stack, "frame decoded", "bytes", 512)
}
