package benchmarks

import (
	"github.com/go-plc/scanengine/ladder"
	"github.com/go-plc/scanengine/tagstore"
)

// GetMicrobenchmarks returns the standard set of scan-rate microbenchmarks,
// each targeting one instruction-mix characteristic (grounded on the
// teacher's GetMicrobenchmarks: a fixed slice of named, self-contained
// benchmark constructors).
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		seriesContacts(),
		parallelBranch(),
		arithmeticChain(),
		timerHeavy(),
		counterHeavy(),
	}
}

func seriesContacts() Benchmark {
	prog := ladder.TokenizeProgram([]string{"1 XIC[A] XIC[B] XIC[C] OTE[Y]"})
	return Benchmark{
		Name:        "series-contacts",
		Description: "three series contacts driving one coil",
		Program:     prog,
		Scans:       100000,
		Setup: func() *tagstore.Store {
			s := tagstore.New()
			s.SetBool("A", true)
			s.SetBool("B", true)
			s.SetBool("C", true)
			s.SetBool("Y", false)
			return s
		},
	}
}

func parallelBranch() Benchmark {
	prog := ladder.TokenizeProgram([]string{"1 BST XIC[A] NXB XIC[B] NXB XIC[C] BND OTE[Y]"})
	return Benchmark{
		Name:        "parallel-branch",
		Description: "three-way parallel branch driving one coil",
		Program:     prog,
		Scans:       100000,
		Setup: func() *tagstore.Store {
			s := tagstore.New()
			s.SetBool("A", false)
			s.SetBool("B", false)
			s.SetBool("C", true)
			s.SetBool("Y", false)
			return s
		},
	}
}

func arithmeticChain() Benchmark {
	prog := ladder.TokenizeProgram([]string{"1 ADD[X,Y,Z] SUB[Z,X,W]"})
	return Benchmark{
		Name:        "arithmetic-chain",
		Description: "ADD followed by SUB on Int tags",
		Program:     prog,
		Scans:       100000,
		Setup: func() *tagstore.Store {
			s := tagstore.New()
			s.SetInt("X", 3)
			s.SetInt("Y", 4)
			s.SetInt("Z", 0)
			s.SetInt("W", 0)
			return s
		},
	}
}

func timerHeavy() Benchmark {
	prog := ladder.TokenizeProgram([]string{"1 XIC[EN] TON[DN,TT,PRE,ACC]"})
	return Benchmark{
		Name:        "timer-heavy",
		Description: "a single TON run to completion and held",
		Program:     prog,
		Scans:       100000,
		Setup: func() *tagstore.Store {
			s := tagstore.New()
			s.SetBool("EN", true)
			s.SetBool("DN", false)
			s.SetBool("TT", false)
			s.SetInt("PRE", 1000)
			s.SetInt("ACC", 0)
			return s
		},
	}
}

func counterHeavy() Benchmark {
	prog := ladder.TokenizeProgram([]string{"1 XIC[In] CTU[PRE,ACC,CT,DN]"})
	return Benchmark{
		Name:        "counter-heavy",
		Description: "a CTU held past its preset",
		Program:     prog,
		Scans:       100000,
		Setup: func() *tagstore.Store {
			s := tagstore.New()
			s.SetBool("In", true)
			s.SetBool("CT", false)
			s.SetBool("DN", false)
			s.SetInt("PRE", 1)
			s.SetInt("ACC", 0)
			return s
		},
	}
}
