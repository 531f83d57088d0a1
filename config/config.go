// Package config provides JSON-loadable engine tunables. The distilled
// spec names no such layer; it is generalized from the teacher's
// timing/latency.TimingConfig — a JSON-tagged struct with a package-level
// Default and a LoadFromFile reader.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// TraceLevel controls how much the engine's diagnostic sink reports.
type TraceLevel string

// Trace verbosity levels.
const (
	TraceSilent      TraceLevel = "silent"
	TraceDiagnostics TraceLevel = "diagnostics"
	TraceVerbose     TraceLevel = "verbose"
)

// EngineConfig holds the scan engine's operator-tunable settings.
type EngineConfig struct {
	// MaxScans bounds a driver's run loop; 0 means unlimited.
	MaxScans uint64 `json:"max_scans"`

	// TraceLevel selects how much the engine reports to its trace sink.
	TraceLevel TraceLevel `json:"trace_level"`

	// ScanTimeFloorMicros is a lower bound applied to each scan's measured
	// scanTime before timer instructions see it, so TON/TOF always make
	// some progress toward PRE even when the host clock measures a scan
	// as zero (or faster than the floor). 0 disables the floor. Wired
	// into engine.WithScanTimeFloor by cmd/plcsim.
	ScanTimeFloorMicros uint64 `json:"scan_time_floor_micros"`
}

// Default returns the engine's baseline configuration: unlimited scans,
// diagnostics-level tracing, no scan-time floor.
func Default() EngineConfig {
	return EngineConfig{
		MaxScans:            0,
		TraceLevel:          TraceDiagnostics,
		ScanTimeFloorMicros: 0,
	}
}

// Load reads an EngineConfig from a JSON file at path.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("reading engine config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parsing engine config %s: %w", path, err)
	}
	return cfg, nil
}
