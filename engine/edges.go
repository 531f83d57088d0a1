package engine

import (
	"github.com/go-plc/scanengine/ladder"
)

func init() {
	register(ladder.OpONR, handleONR)
	register(ladder.OpONF, handleONF)
}

// handleONR implements ONR a, a rising-edge detector whose previous-sample
// memory is the bool tag a itself (spec.md §3, §9 — the source conflates
// input and memory in one tag; kept for compatibility rather than
// allocating a hidden companion bit). On a rising edge of the incoming
// power (sample true, stored memory false), current becomes true and a is
// set. Otherwise current is forced false and a is left equal to the
// sampled input — the corrected behavior from spec.md §9's Open Question:
// the source instead overwrote a with the post-gate current (always false
// on the non-firing branch), which could erase a true sample and cause a
// spurious re-fire next scan.
func handleONR(ev *Evaluator, params string) error {
	return handleEdge(ev, params, func(sample, memory bool) bool { return sample && !memory })
}

// handleONF implements ONF a, the symmetric falling-edge detector: fires
// when the sample goes false while the stored memory was true.
func handleONF(ev *Evaluator, params string) error {
	return handleEdge(ev, params, func(sample, memory bool) bool { return !sample && memory })
}

func handleEdge(ev *Evaluator, params string, fires func(sample, memory bool) bool) error {
	args, err := splitArgs(params, 1)
	if err != nil {
		return err
	}
	name := args[0]

	sample := ev.Current()
	memory, err := ev.Store().GetBool(name)
	if err != nil {
		return err
	}

	// The memory tag always tracks the sampled input for next scan's
	// comparison, whether or not this scan's edge fired.
	ev.SetCurrent(fires(sample, memory))
	return ev.Store().SetBool(name, sample)
}
