package engine

import (
	"github.com/go-plc/scanengine/ladder"
)

func init() {
	register(ladder.OpCTU, handleCTU)
	register(ladder.OpCTD, handleCTD)
}

// counterArgs reads the four-tag bundle common to CTU/CTD: int
// PRE/ACC, bool CT/DN (spec.md §4.D). No hidden engine-side counter
// state exists — everything lives in these named tags (I4).
type counterArgs struct {
	preName, accName, ctName, dnName string
	pre, acc                          int64
	ct                                bool
}

func readCounterArgs(ev *Evaluator, params string) (counterArgs, error) {
	args, err := splitArgs(params, 4)
	if err != nil {
		return counterArgs{}, err
	}
	c := counterArgs{preName: args[0], accName: args[1], ctName: args[2], dnName: args[3]}

	c.pre, err = ev.Store().GetInt(c.preName)
	if err != nil {
		return counterArgs{}, err
	}
	c.acc, err = ev.Store().GetInt(c.accName)
	if err != nil {
		return counterArgs{}, err
	}
	c.ct, err = ev.Store().GetBool(c.ctName)
	if err != nil {
		return counterArgs{}, err
	}
	return c, nil
}

// handleCTU implements CTU PRE,ACC,CT,DN. On the rising edge of current
// (current AND NOT CT) it increments ACC and sets CT; on NOT current it
// clears CT. DN is always recomputed. current is unchanged — holding
// current true across consecutive scans must not double-count, because
// CT is already true after the first edge (spec.md Scenario 5).
func handleCTU(ev *Evaluator, params string) error {
	c, err := readCounterArgs(ev, params)
	if err != nil {
		return err
	}

	switch {
	case ev.Current() && !c.ct:
		c.acc++
		if err := ev.Store().SetInt(c.accName, c.acc); err != nil {
			return err
		}
		if err := ev.Store().SetBool(c.ctName, true); err != nil {
			return err
		}
	case !ev.Current():
		if err := ev.Store().SetBool(c.ctName, false); err != nil {
			return err
		}
	}

	return ev.Store().SetBool(c.dnName, c.acc >= c.pre)
}

// handleCTD implements CTD PRE,ACC,CT,DN, symmetric on the falling edge:
// NOT current AND CT decrements ACC and clears CT; current sets CT true.
// DN is always recomputed as ACC <= 0.
func handleCTD(ev *Evaluator, params string) error {
	c, err := readCounterArgs(ev, params)
	if err != nil {
		return err
	}

	if !ev.Current() && c.ct {
		c.acc--
		if err := ev.Store().SetInt(c.accName, c.acc); err != nil {
			return err
		}
		if err := ev.Store().SetBool(c.ctName, false); err != nil {
			return err
		}
	} else if ev.Current() {
		if err := ev.Store().SetBool(c.ctName, true); err != nil {
			return err
		}
	}

	return ev.Store().SetBool(c.dnName, c.acc <= 0)
}
