package main

import (
	"github.com/joeydtaylor/tracewire/pkg/builder"
)

func main() {
	formatter := builder.NewFormatter()
	defer formatter.Close()

	stack := formatter.NewStack()

	formatter.Info(stack, "service starting", "port", 8080)
	formatter.Warn(stack, "cache miss", "key", "user:42")
	formatter.Error(stack, "request failed", "status", 502, "retries", 3)
}
