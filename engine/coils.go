package engine

import (
	"github.com/go-plc/scanengine/ladder"
)

func init() {
	register(ladder.OpOTE, handleOTE)
	register(ladder.OpOTL, handleOTL)
	register(ladder.OpAFI, handleAFI)
}

// handleOTE implements OTE a: a := current, always written regardless of
// power (spec.md §4.D, §9 — the later/consistent OTE semantics: the coil
// writes the power-flow boolean, it never reads tags literally named
// "XIC"/"XIO").
func handleOTE(ev *Evaluator, params string) error {
	args, err := splitArgs(params, 1)
	if err != nil {
		return err
	}
	return ev.Store().SetBool(args[0], ev.Current())
}

// handleOTL implements OTL a: latches a true when current is true; never
// clears it (spec.md P5 — OTL monotonicity). No write at all when current
// is false.
func handleOTL(ev *Evaluator, params string) error {
	args, err := splitArgs(params, 1)
	if err != nil {
		return err
	}
	if !ev.Current() {
		return nil
	}
	return ev.Store().SetBool(args[0], true)
}

// handleAFI implements AFI: current := false, unconditionally, no params.
func handleAFI(ev *Evaluator, params string) error {
	ev.SetCurrent(false)
	return nil
}
