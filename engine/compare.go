package engine

import (
	"fmt"

	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

func init() {
	register(ladder.OpLSS, handleLSS)
	register(ladder.OpGTR, handleGTR)
	register(ladder.OpEQU, handleEQU)
	register(ladder.OpNEQ, handleNEQ)
}

// handleLSS implements LSS a,b: current := current AND (a<b).
func handleLSS(ev *Evaluator, params string) error {
	return compareNumeric(ev, params, func(c int) bool { return c < 0 })
}

// handleGTR implements GTR a,b: current := current AND (a>b).
func handleGTR(ev *Evaluator, params string) error {
	return compareNumeric(ev, params, func(c int) bool { return c > 0 })
}

// handleEQU implements EQU a,b: current := current AND (a==b). Real
// operands are compared after rounding both sides to two decimals
// (tagstore.Value.Equal).
func handleEQU(ev *Evaluator, params string) error {
	return compareEquality(ev, params, true)
}

// handleNEQ implements NEQ a,b: current := current AND (a!=b).
func handleNEQ(ev *Evaluator, params string) error {
	return compareEquality(ev, params, false)
}

// compareNumeric implements LSS/GTR. Comparisons run regardless of
// incoming power (spec.md §4.D: contact/comparison instructions always
// update current), but AND with a false current stays false.
func compareNumeric(ev *Evaluator, params string, accept func(cmp int) bool) error {
	a, b, err := readNumericPair(ev, params)
	if err != nil {
		return err
	}

	var cmp int
	switch a.Kind {
	case tagstore.KindInt:
		switch {
		case a.I < b.I:
			cmp = -1
		case a.I > b.I:
			cmp = 1
		}
	case tagstore.KindReal:
		switch {
		case a.R < b.R:
			cmp = -1
		case a.R > b.R:
			cmp = 1
		}
	}

	ev.SetCurrent(ev.Current() && accept(cmp))
	return nil
}

func compareEquality(ev *Evaluator, params string, wantEqual bool) error {
	a, b, err := readNumericPair(ev, params)
	if err != nil {
		return err
	}
	eq := a.Equal(b)
	if !wantEqual {
		eq = !eq
	}
	ev.SetCurrent(ev.Current() && eq)
	return nil
}

func readNumericPair(ev *Evaluator, params string) (tagstore.Value, tagstore.Value, error) {
	args, err := splitArgs(params, 2)
	if err != nil {
		return tagstore.Value{}, tagstore.Value{}, err
	}
	a, err := ev.Store().Get(args[0])
	if err != nil {
		return tagstore.Value{}, tagstore.Value{}, err
	}
	b, err := ev.Store().Get(args[1])
	if err != nil {
		return tagstore.Value{}, tagstore.Value{}, err
	}
	if a.Kind == tagstore.KindBool || b.Kind == tagstore.KindBool {
		return tagstore.Value{}, tagstore.Value{}, fmt.Errorf("compare operands must be numeric: %w", tagstore.ErrTypeMismatch)
	}
	if a.Kind != b.Kind {
		return tagstore.Value{}, tagstore.Value{}, fmt.Errorf("%q is %v, %q is %v: %w", args[0], a.Kind, args[1], b.Kind, tagstore.ErrTypeMismatch)
	}
	return a, b, nil
}
