// Package engine implements the branch-aware power-flow evaluator, the
// per-opcode instruction semantics, and the scan driver that together form
// the scan engine's core (spec.md §4.C–§4.E).
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

// Sentinel errors raised by the evaluator and instruction handlers.
var (
	ErrMalformedParams = errors.New("malformed instruction params")
	ErrStackUnderflow   = errors.New("branch stack underflow")
	ErrUnknownOpcode    = errors.New("unknown opcode")
)

// branchFrame is the (branchResult, savedOuterPower) pair pushed at each
// BST and popped at the matching BND (spec.md §3, §4.C).
type branchFrame struct {
	outerResult  bool
	outerCurrent bool
}

// Evaluator walks one rung's tokens, maintaining current power and a
// branch-frame stack, dispatching to per-opcode handlers (spec.md §4.C).
// One Evaluator is reused across rungs within a scan; Reset clears its
// per-rung state.
type Evaluator struct {
	store    *tagstore.Store
	scanTime time.Duration

	current      bool
	branchResult bool
	stack        []branchFrame

	onInstruction func(opcode ladder.Opcode, params string, power bool)
}

// NewEvaluator returns an Evaluator bound to store, ready for its first
// rung.
func NewEvaluator(store *tagstore.Store) *Evaluator {
	ev := &Evaluator{store: store}
	ev.Reset()
	return ev
}

// Reset prepares the evaluator for a new rung: current power starts true
// and the branch stack is empty (spec.md §4.C).
func (ev *Evaluator) Reset() {
	ev.current = true
	ev.branchResult = false
	ev.stack = ev.stack[:0]
}

// SetScanTime records the scan-time increment (microseconds, as
// time.Duration) that timer instructions will add this scan.
func (ev *Evaluator) SetScanTime(d time.Duration) {
	ev.scanTime = d
}

// SetInstructionHook installs fn to be called after every token
// (including branch primitives and END) with the resulting power-flow
// boolean. Used by the scan driver to feed a Trace's verbose per-token
// reporting; nil disables it.
func (ev *Evaluator) SetInstructionHook(fn func(opcode ladder.Opcode, params string, power bool)) {
	ev.onInstruction = fn
}

// Current returns the evaluator's current power-flow boolean.
func (ev *Evaluator) Current() bool { return ev.current }

// SetCurrent overwrites the evaluator's current power-flow boolean. Used
// by instruction handlers that gate or set power (contacts, compares,
// edge detectors, AFI).
func (ev *Evaluator) SetCurrent(v bool) { ev.current = v }

// Store returns the tag store the evaluator operates against.
func (ev *Evaluator) Store() *tagstore.Store { return ev.store }

// Diagnostic describes one recovered, per-token failure raised during a
// rung evaluation (spec.md §7). It is never returned as a hard error; it
// is reported to a Trace sink by the scan driver.
type Diagnostic struct {
	Opcode ladder.Opcode
	Params string
	Err    error
}

// RungResult reports the outcome of evaluating one rung.
type RungResult struct {
	// Ended is true if an END token was reached; the scan driver must
	// stop evaluating further rungs.
	Ended bool
	// Diagnostics collects every recovered per-token failure, in token
	// order.
	Diagnostics []Diagnostic
	// Aborted is true if the rung terminated early due to StackUnderflow
	// (spec.md §7: aborts the rung only, not the scan).
	Aborted bool
}

// handlerFunc is the shape of a per-opcode instruction handler: it
// receives the evaluator (so it can read/write current power) and a
// token's raw parameter string, and may mutate the tag store.
type handlerFunc func(ev *Evaluator, params string) error

// handlers is the opcode→implementation dispatch table, built once in
// init (mirrors insts.Decoder's opcode table construction). Branch
// primitives (BST/NXB/BND) and END are handled directly by EvaluateRung,
// not through this table.
var handlers = map[ladder.Opcode]handlerFunc{}

func register(op ladder.Opcode, fn handlerFunc) {
	handlers[op] = fn
}

// EvaluateRung walks tokens left to right, maintaining power flow and
// branch-stack state, and dispatching each non-branch opcode to its
// handler. The evaluator is reset at entry; callers evaluate one rung per
// call.
func (ev *Evaluator) EvaluateRung(tokens []ladder.Token) RungResult {
	ev.Reset()
	var result RungResult

	for _, tok := range tokens {
		switch tok.Opcode {
		case ladder.OpEND:
			result.Ended = true
			ev.traceInstruction(tok)
			return result

		case ladder.OpBST:
			ev.stack = append(ev.stack, branchFrame{outerResult: ev.branchResult, outerCurrent: ev.current})
			ev.branchResult = false
			ev.current = true

		case ladder.OpNXB:
			if len(ev.stack) == 0 {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{Opcode: tok.Opcode, Err: ErrStackUnderflow})
				result.Aborted = true
				ev.traceInstruction(tok)
				return result
			}
			ev.branchResult = ev.branchResult || ev.current
			ev.current = true

		case ladder.OpBND:
			if len(ev.stack) == 0 {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{Opcode: tok.Opcode, Err: ErrStackUnderflow})
				result.Aborted = true
				ev.traceInstruction(tok)
				return result
			}
			ev.branchResult = ev.branchResult || ev.current
			frame := ev.stack[len(ev.stack)-1]
			ev.stack = ev.stack[:len(ev.stack)-1]
			ev.current = frame.outerCurrent && ev.branchResult
			ev.branchResult = frame.outerResult

		default:
			fn, ok := handlers[tok.Opcode]
			if !ok {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Opcode: tok.Opcode, Params: tok.Params,
					Err: fmt.Errorf("%q: %w", tok.Opcode, ErrUnknownOpcode),
				})
				ev.traceInstruction(tok)
				continue
			}
			if err := fn(ev, tok.Params); err != nil {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{Opcode: tok.Opcode, Params: tok.Params, Err: err})
			}
		}

		ev.traceInstruction(tok)
	}

	return result
}

// traceInstruction reports tok's resulting power flow through the
// installed instruction hook, if any.
func (ev *Evaluator) traceInstruction(tok ladder.Token) {
	if ev.onInstruction != nil {
		ev.onInstruction(tok.Opcode, tok.Params, ev.current)
	}
}
