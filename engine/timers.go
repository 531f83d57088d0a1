package engine

import (
	"github.com/go-plc/scanengine/ladder"
)

func init() {
	register(ladder.OpTON, handleTON)
	register(ladder.OpTOF, handleTOF)
}

// timerArgs reads the four-tag bundle common to TON/TOF: bool DN/TT, int
// PRE/ACC (spec.md §4.D — note the tag order is DN,TT,PRE,ACC, distinct
// from the counters' PRE,ACC,CT,DN).
type timerArgs struct {
	dnName, ttName, preName, accName string
	pre, acc                          int64
}

func readTimerArgs(ev *Evaluator, params string) (timerArgs, error) {
	args, err := splitArgs(params, 4)
	if err != nil {
		return timerArgs{}, err
	}
	t := timerArgs{dnName: args[0], ttName: args[1], preName: args[2], accName: args[3]}

	t.pre, err = ev.Store().GetInt(t.preName)
	if err != nil {
		return timerArgs{}, err
	}
	t.acc, err = ev.Store().GetInt(t.accName)
	if err != nil {
		return timerArgs{}, err
	}
	return t, nil
}

// handleTON implements TON DN,TT,PRE,ACC: while current, the timer
// accumulates ev's scanTime into ACC and sets TT; once ACC reaches PRE it
// clamps ACC to PRE and flips DN on, TT off. Losing power resets ACC to
// zero. current is unchanged.
func handleTON(ev *Evaluator, params string) error {
	t, err := readTimerArgs(ev, params)
	if err != nil {
		return err
	}

	if ev.Current() {
		t.acc += scanTimeMicros(ev)
		tt, dn := true, false
		if t.acc >= t.pre {
			t.acc = t.pre
			dn = true
			tt = false
		}
		return writeTimerResult(ev, t, tt, dn)
	}

	return writeTimerResult(ev, timerArgs{dnName: t.dnName, ttName: t.ttName, preName: t.preName, accName: t.accName, acc: 0}, false, false)
}

// handleTOF implements TOF DN,TT,PRE,ACC: the off-delay timer, symmetric
// on NOT current.
func handleTOF(ev *Evaluator, params string) error {
	t, err := readTimerArgs(ev, params)
	if err != nil {
		return err
	}

	if !ev.Current() {
		t.acc += scanTimeMicros(ev)
		tt, dn := true, true
		if t.acc >= t.pre {
			t.acc = t.pre
			dn = false
			tt = false
		}
		return writeTimerResult(ev, t, tt, dn)
	}

	return writeTimerResult(ev, timerArgs{dnName: t.dnName, ttName: t.ttName, preName: t.preName, accName: t.accName, acc: 0}, false, true)
}

func writeTimerResult(ev *Evaluator, t timerArgs, tt, dn bool) error {
	if err := ev.Store().SetInt(t.accName, t.acc); err != nil {
		return err
	}
	if err := ev.Store().SetBool(t.ttName, tt); err != nil {
		return err
	}
	return ev.Store().SetBool(t.dnName, dn)
}

// scanTimeMicros returns the evaluator's current scan-time increment in
// whole microseconds, the unit timer PRE/ACC tags are expressed in
// (spec.md §3, Scenario 4).
func scanTimeMicros(ev *Evaluator) int64 {
	return ev.scanTime.Microseconds()
}
