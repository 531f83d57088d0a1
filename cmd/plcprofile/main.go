// Command plcprofile is a profiling wrapper around repeated scan
// execution, for identifying hot paths in the evaluator/instruction
// dispatch. Grounded on the teacher's cmd/profile: same flag surface,
// runtime/pprof wiring, but profiling scans instead of instruction steps.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/go-plc/scanengine/engine"
	"github.com/go-plc/scanengine/loader"
)

var (
	programPath = flag.String("program", "", "path to the ladder program file")
	tagsPath    = flag.String("tags", "", "path to the tag file")
	cpuProfile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile  = flag.String("memprofile", "", "write memory profile to file")
	duration    = flag.Duration("duration", 10*time.Second, "max duration to run")
	maxScans    = flag.Uint64("max-scans", 1_000_000, "max scans to execute (0 = unlimited)")
)

func main() {
	flag.Parse()

	if *programPath == "" || *tagsPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: plcprofile -program <file> -tags <file> [options]\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	prog, err := loader.LoadProgram(*programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}
	store, err := loader.LoadTags(*tagsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tags: %v\n", err)
		os.Exit(1)
	}

	e := engine.NewEngine(prog, store)

	start := time.Now()
	var scanCount uint64
	for time.Since(start) < *duration {
		if *maxScans != 0 && scanCount >= *maxScans {
			break
		}
		report := e.ExecuteOneScan()
		scanCount++
		if report.Ended {
			break
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("Ran %d scans in %s (%.0f scans/sec)\n", scanCount, elapsed, float64(scanCount)/elapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating memory profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing memory profile: %v\n", err)
			os.Exit(1)
		}
	}
}
