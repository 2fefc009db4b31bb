package main

import (
	"github.com/joeydtaylor/tracewire/pkg/builder"
)

func main() {
	formatter := builder.NewJSONFormatter(
		builder.FormatterWithTime(builder.EpochMillis()),
	)
	defer formatter.Close()

	stack := formatter.NewStack()

	span := builder.NewSpanNode("checkout", builder.Fields("cart_id", "c-1931"))
	entered := stack.Enter(span)
	defer entered.Exit()

	formatter.Info(stack, "payment authorized", "amount", 42.50, "currency", "USD")
}
