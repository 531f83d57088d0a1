// Command plcsim runs a ladder-logic program against a tag file for a
// requested number of scans, or until a scan reaches END.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-plc/scanengine/config"
	"github.com/go-plc/scanengine/engine"
	"github.com/go-plc/scanengine/loader"
)

var (
	programPath = flag.String("program", "", "path to the ladder program file")
	tagsPath    = flag.String("tags", "", "path to the tag file")
	configPath  = flag.String("config", "", "path to an engine config JSON file (optional)")
	scans       = flag.Uint64("scans", 1, "number of scans to run (0 = run until a scan reaches END, capped by the config's max_scans if set; a program without END then runs forever)")
	saveTags    = flag.String("save-tags", "", "path to write the final tag store to (optional)")
	verbose     = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	if *programPath == "" || *tagsPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: plcsim -program <file> -tags <file> [options]\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
			os.Exit(1)
		}
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

	if *verbose {
		fmt.Printf("Loaded: %s (%d rungs), %s (%d tags)\n", *programPath, len(prog.Rungs), *tagsPath, store.Len())
	}

	var trace engine.Trace = engine.NullTrace{}
	switch cfg.TraceLevel {
	case config.TraceVerbose:
		trace = engine.NewVerboseWriterTrace(os.Stderr)
	case config.TraceDiagnostics:
		trace = engine.NewWriterTrace(os.Stderr)
	}

	e := engine.NewEngine(prog, store,
		engine.WithTrace(trace),
		engine.WithScanTimeFloor(time.Duration(cfg.ScanTimeFloorMicros)*time.Microsecond),
	)

	n := *scans
	if cfg.MaxScans != 0 && (n == 0 || n > cfg.MaxScans) {
		n = cfg.MaxScans
	}

	for i := uint64(0); n == 0 || i < n; i++ {
		report := e.ExecuteOneScan()
		if *verbose {
			fmt.Printf("scan %d: %d rungs, %d diagnostics, scanTime=%s\n", i+1, report.RungsRun, report.Diagnostics, report.ScanTime)
		}
		if report.Ended {
			break
		}
	}

	if *saveTags != "" {
		if err := loader.SaveTagsToFile(*saveTags, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving tags: %v\n", err)
			os.Exit(1)
		}
	}
}
