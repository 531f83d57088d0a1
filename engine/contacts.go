package engine

import (
	"github.com/go-plc/scanengine/ladder"
)

func init() {
	register(ladder.OpXIC, handleXIC)
	register(ladder.OpXIO, handleXIO)
}

// handleXIC implements XIC a: current := current AND bool(a). Runs
// regardless of incoming power — an AND with false stays false, but the
// contact still "ran" for trace purposes (spec.md §4.D).
func handleXIC(ev *Evaluator, params string) error {
	a, err := requireSingleBoolArg(ev, params)
	if err != nil {
		return err
	}
	ev.SetCurrent(ev.Current() && a)
	return nil
}

// handleXIO implements XIO a: current := current AND NOT bool(a).
func handleXIO(ev *Evaluator, params string) error {
	a, err := requireSingleBoolArg(ev, params)
	if err != nil {
		return err
	}
	ev.SetCurrent(ev.Current() && !a)
	return nil
}

func requireSingleBoolArg(ev *Evaluator, params string) (bool, error) {
	args, err := splitArgs(params, 1)
	if err != nil {
		return false, err
	}
	return ev.Store().GetBool(args[0])
}
