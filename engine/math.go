package engine

import (
	"fmt"

	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

func init() {
	register(ladder.OpADD, handleADD)
	register(ladder.OpSUB, handleSUB)
}

// handleADD implements ADD a,b,c: if current, c := a+b, with c taking the
// same numeric kind as a and b. Mixed Int/Real operands are a
// TypeMismatch — the engine never promotes (spec.md §9). current is
// unchanged either way.
func handleADD(ev *Evaluator, params string) error {
	return binaryMath(ev, params, func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y })
}

// handleSUB implements SUB a,b,c: if current, c := a-b.
func handleSUB(ev *Evaluator, params string) error {
	return binaryMath(ev, params, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })
}

func binaryMath(ev *Evaluator, params string, intOp func(int64, int64) int64, realOp func(float64, float64) float64) error {
	args, err := splitArgs(params, 3)
	if err != nil {
		return err
	}
	if !ev.Current() {
		return nil
	}

	a, err := ev.Store().Get(args[0])
	if err != nil {
		return err
	}
	b, err := ev.Store().Get(args[1])
	if err != nil {
		return err
	}
	if a.Kind != b.Kind {
		return fmt.Errorf("%q is %v, %q is %v: %w", args[0], a.Kind, args[1], b.Kind, tagstore.ErrTypeMismatch)
	}

	switch a.Kind {
	case tagstore.KindInt:
		return ev.Store().SetInt(args[2], intOp(a.I, b.I))
	case tagstore.KindReal:
		return ev.Store().SetReal(args[2], realOp(a.R, b.R))
	default:
		return fmt.Errorf("%q is %v, want Int or Real: %w", args[0], a.Kind, tagstore.ErrTypeMismatch)
	}
}
