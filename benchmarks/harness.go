// Package benchmarks provides a repeatable scan-rate timing harness for
// the engine, grounded on the teacher's timing benchmark harness
// (benchmarks/timing_harness.go): a named set of runs, each producing a
// structured result, with CSV or human-readable reporting.
package benchmarks

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-plc/scanengine/engine"
	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

// Result holds the outcome of running one named benchmark.
type Result struct {
	Name         string
	Description  string
	ScansRun     uint64
	RungsRun     uint64
	Diagnostics  uint64
	WallTime     time.Duration
	ScansPerSec  float64
}

// Benchmark defines one program+tags+scan-count run.
type Benchmark struct {
	// Name identifies the benchmark.
	Name string

	// Description explains what the benchmark exercises.
	Description string

	// Setup builds the tag store the program runs against.
	Setup func() *tagstore.Store

	// Program is the ladder program to execute.
	Program ladder.Program

	// Scans is the number of scans to execute.
	Scans uint64
}

// Config configures the harness.
type Config struct {
	// Output is the writer recorded for results (default: os.Stdout).
	// RunAll does not write to it; PrintHuman and PrintCSV write to the
	// writer passed to them.
	Output io.Writer
}

// DefaultConfig returns a Config writing to os.Stdout.
func DefaultConfig() Config {
	return Config{Output: os.Stdout}
}

// Harness runs a set of Benchmarks and reports their scan rate.
type Harness struct {
	config     Config
	benchmarks []Benchmark
}

// NewHarness creates a Harness with the given config.
func NewHarness(config Config) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &Harness{config: config}
}

// AddBenchmark adds one benchmark to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple benchmarks to the harness.
func (h *Harness) AddBenchmarks(bs []Benchmark) {
	h.benchmarks = append(h.benchmarks, bs...)
}

// RunAll executes every registered benchmark and returns its results in
// registration order.
func (h *Harness) RunAll() []Result {
	results := make([]Result, 0, len(h.benchmarks))
	for _, b := range h.benchmarks {
		results = append(results, h.run(b))
	}
	return results
}

func (h *Harness) run(b Benchmark) Result {
	store := b.Setup()
	e := engine.NewEngine(b.Program, store)

	start := time.Now()
	var rungsRun, diagnostics uint64
	var scansRun uint64
	for i := uint64(0); i < b.Scans; i++ {
		report := e.ExecuteOneScan()
		scansRun++
		rungsRun += uint64(report.RungsRun)
		diagnostics += uint64(report.Diagnostics)
		if report.Ended {
			break
		}
	}
	wall := time.Since(start)

	return Result{
		Name:        b.Name,
		Description: b.Description,
		ScansRun:    scansRun,
		RungsRun:    rungsRun,
		Diagnostics: diagnostics,
		WallTime:    wall,
		ScansPerSec: float64(scansRun) / wall.Seconds(),
	}
}

// PrintHuman writes a human-readable results table to w.
func PrintHuman(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-24s %10d scans  %10d rungs  %8d diagnostics  %12.0f scans/sec  (%s)\n",
			r.Name, r.ScansRun, r.RungsRun, r.Diagnostics, r.ScansPerSec, r.WallTime)
	}
}

// PrintCSV writes a CSV results table to w.
func PrintCSV(w io.Writer, results []Result) {
	fmt.Fprintln(w, "name,description,scans_run,rungs_run,diagnostics,wall_time_ns,scans_per_sec")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%f\n",
			r.Name, r.Description, r.ScansRun, r.RungsRun, r.Diagnostics, r.WallTime.Nanoseconds(), r.ScansPerSec)
	}
}
