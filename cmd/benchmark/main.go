// Command benchmark runs the scan engine's scan-rate benchmark harness.
//
// Usage:
//
//	go run ./cmd/benchmark [flags]
//
// Flags:
//
//	-csv  Output results in CSV format (default: human-readable)
package main

import (
	"flag"
	"os"

	"github.com/go-plc/scanengine/benchmarks"
)

func main() {
	csvOutput := flag.Bool("csv", false, "Output results in CSV format")
	flag.Parse()

	config := benchmarks.DefaultConfig()
	config.Output = os.Stdout

	harness := benchmarks.NewHarness(config)
	harness.AddBenchmarks(benchmarks.GetMicrobenchmarks())

	results := harness.RunAll()

	if *csvOutput {
		benchmarks.PrintCSV(os.Stdout, results)
		return
	}
	benchmarks.PrintHuman(os.Stdout, results)
}
