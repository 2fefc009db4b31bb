package main

import (
	"fmt"

	"github.com/joeydtaylor/tracewire/pkg/builder"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	plain, err := builder.NewFileSink("out/app.log")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return
	}
	compressed, err := builder.NewCompressedFileSink("out/app.log.gz")
	if err != nil {
		fmt.Printf("Error opening compressed log file: %v\n", err)
		return
	}

	registry := prometheus.NewRegistry()
	meter := builder.NewMeter(builder.MeterWithRegistry(registry))

	formatter := builder.NewJSONFormatter(
		builder.FormatterWithWriter(builder.NewMultiSink(plain, compressed)),
		builder.FormatterWithMeter(meter),
	)
	defer formatter.Close()

	stack := formatter.NewStack()
	for i := 0; i < 100; i++ {
		formatter.Info(stack, "batch item processed", "item", i)
	}

	families, err := registry.Gather()
	if err != nil {
		fmt.Printf("Error gathering metrics: %v\n", err)
		return
	}
	for _, family := range families {
		fmt.Println(family.GetName())
	}
}
