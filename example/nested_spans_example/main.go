package main

import (
	"github.com/joeydtaylor/tracewire/pkg/builder"
)

// Nested spans inherit the fields of their ancestors; with the default
// concatenated span format the record carries "outer::inner".
func main() {
	formatter := builder.NewJSONFormatter(
		builder.FormatterWithFile(false),
		builder.FormatterWithModule(false),
	)
	defer formatter.Close()

	stack := formatter.NewStack()

	outer := stack.Enter(builder.NewSpanNode("math", builder.Fields("a", 5)))
	defer outer.Exit()

	inner := stack.Enter(builder.NewSpanNode("add", builder.Fields("b", 10)))
	formatter.Info(stack, "result: 15")
	inner.Exit()

	formatter.Info(stack, "back in the outer span")
}
