package engine

import (
	"time"

	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

// Engine is the scan driver (spec.md §4.E): it owns no state of its own
// beyond scan bookkeeping, walking a Program against an injected tag
// store once per ExecuteOneScan call.
type Engine struct {
	program   ladder.Program
	store     *tagstore.Store
	evaluator *Evaluator
	trace     Trace
	clock     func() time.Time

	scanTimeFloor time.Duration
	scanTime      time.Duration
	firstScan     bool
	scanCount     uint64
}

// EngineOption configures an Engine at construction time (mirrors the
// teacher's functional-options idiom for its emulator).
type EngineOption func(*Engine)

// WithTrace sets the diagnostic sink the engine reports to. Defaults to
// NullTrace.
func WithTrace(t Trace) EngineOption {
	return func(e *Engine) { e.trace = t }
}

// WithClock overrides the monotonic clock used to measure scan duration.
// Defaults to time.Now. Tests inject a deterministic clock to make
// scanTime (and therefore TON/TOF progress) predictable.
func WithClock(clock func() time.Time) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithScanTimeFloor sets a lower bound on the measured scanTime fed to
// timer instructions each scan, so TON/TOF still make progress on a host
// clock fast enough to measure an elapsed scan as zero. A zero floor (the
// default) disables clamping.
func WithScanTimeFloor(floor time.Duration) EngineOption {
	return func(e *Engine) { e.scanTimeFloor = floor }
}

// NewEngine constructs an Engine bound to program and store, ready to run
// its first scan.
func NewEngine(program ladder.Program, store *tagstore.Store, opts ...EngineOption) *Engine {
	e := &Engine{
		program:   program,
		store:     store,
		evaluator: NewEvaluator(store),
		trace:     NullTrace{},
		clock:     time.Now,
		firstScan: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScanTime returns the measured duration of the most recently completed
// scan, raised to the scan-time floor when one is set and the measurement
// is below it (spec.md §3 scanTime, reported as a time.Duration; timer
// handlers read it in microseconds).
func (e *Engine) ScanTime() time.Duration { return e.scanTime }

// FirstScan reports whether the next call to ExecuteOneScan is the first
// one since the engine was constructed.
func (e *Engine) FirstScan() bool { return e.firstScan }

// ScanCount returns the number of scans executed so far.
func (e *Engine) ScanCount() uint64 { return e.scanCount }

// Store returns the tag store this engine operates against.
func (e *Engine) Store() *tagstore.Store { return e.store }

// ScanReport summarizes one call to ExecuteOneScan.
type ScanReport struct {
	RungsRun     int
	Diagnostics  int
	Ended        bool
	ScanTime     time.Duration
}

// ExecuteOneScan walks every rung of the program in order, evaluating
// each against the shared tag store, and returns once all rungs have run
// or an END token is reached (spec.md §4.E). It is idempotent with
// respect to the program; reentrant calls from multiple goroutines are
// not supported (spec.md §5).
func (e *Engine) ExecuteOneScan() ScanReport {
	start := e.clock()

	var report ScanReport
	for _, rung := range e.program.Rungs {
		rungNumber := rung.Number
		e.evaluator.SetScanTime(e.scanTime)
		e.evaluator.SetInstructionHook(func(opcode ladder.Opcode, params string, power bool) {
			e.trace.Instruction(rungNumber, opcode, params, power)
		})
		result := e.evaluator.EvaluateRung(rung.Tokens)
		report.RungsRun++

		for _, d := range result.Diagnostics {
			e.trace.Diagnostic(rung.Number, d.Opcode, d.Err)
			report.Diagnostics++
		}

		if result.Ended {
			report.Ended = true
			break
		}
	}

	e.scanTime = e.clock().Sub(start)
	if e.scanTimeFloor > 0 && e.scanTime < e.scanTimeFloor {
		e.scanTime = e.scanTimeFloor
	}
	e.firstScan = false
	e.scanCount++
	report.ScanTime = e.scanTime

	e.trace.ScanComplete(report)
	return report
}
