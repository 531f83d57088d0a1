package engine

import (
	"fmt"
	"io"

	"github.com/go-plc/scanengine/ladder"
)

// Trace is the out-of-band diagnostic sink described in spec.md §7:
// recovered per-instruction failures and per-scan summaries are reported
// here, never through the engine's return contract.
type Trace interface {
	// Diagnostic reports one recovered failure for the given rung/opcode.
	Diagnostic(rung int, opcode ladder.Opcode, err error)
	// Instruction reports the power flow resulting from one evaluated
	// token. Sinks that aren't verbose are expected to discard it.
	Instruction(rung int, opcode ladder.Opcode, params string, power bool)
	// ScanComplete reports the outcome of one finished scan.
	ScanComplete(report ScanReport)
}

// NullTrace discards every diagnostic. It is the Engine's default sink so
// that constructing an Engine without options never needs a writer.
type NullTrace struct{}

// Diagnostic implements Trace by discarding the report.
func (NullTrace) Diagnostic(rung int, opcode ladder.Opcode, err error) {}

// Instruction implements Trace by discarding the report.
func (NullTrace) Instruction(rung int, opcode ladder.Opcode, params string, power bool) {}

// ScanComplete implements Trace by discarding the report.
func (NullTrace) ScanComplete(report ScanReport) {}

// WriterTrace formats diagnostics and scan summaries as one line on an
// underlying io.Writer. It is the trace a CLI driver wires up at
// diagnostics level (cmd/plcsim writes to os.Stderr); at verbose level it
// additionally writes one line per evaluated token, mirroring
// original_source's per-token power-flow console trace.
type WriterTrace struct {
	w       io.Writer
	verbose bool
}

// NewWriterTrace returns a WriterTrace writing diagnostics and scan
// summaries to w, with per-token instruction tracing disabled.
func NewWriterTrace(w io.Writer) *WriterTrace {
	return &WriterTrace{w: w}
}

// NewVerboseWriterTrace returns a WriterTrace writing to w with per-token
// instruction tracing enabled in addition to diagnostics and scan
// summaries.
func NewVerboseWriterTrace(w io.Writer) *WriterTrace {
	return &WriterTrace{w: w, verbose: true}
}

// Diagnostic writes one "rung N: OPCODE: err" line.
func (t *WriterTrace) Diagnostic(rung int, opcode ladder.Opcode, err error) {
	fmt.Fprintf(t.w, "rung %d: %s: %v\n", rung, opcode, err)
}

// Instruction writes one "rung N: OPCODE[params] power=true/false" line
// when verbose tracing is enabled; otherwise it is a no-op.
func (t *WriterTrace) Instruction(rung int, opcode ladder.Opcode, params string, power bool) {
	if !t.verbose {
		return
	}
	fmt.Fprintf(t.w, "rung %d: %s[%s] power=%v\n", rung, opcode, params, power)
}

// ScanComplete writes a one-line scan summary when the scan raised
// diagnostics or hit END, or when verbose tracing is enabled; otherwise
// quiet scans produce no output.
func (t *WriterTrace) ScanComplete(report ScanReport) {
	if report.Diagnostics == 0 && !report.Ended && !t.verbose {
		return
	}
	fmt.Fprintf(t.w, "scan: %d rungs, %d diagnostics, ended=%v, scanTime=%s\n",
		report.RungsRun, report.Diagnostics, report.Ended, report.ScanTime)
}
