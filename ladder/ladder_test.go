package ladder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-plc/scanengine/ladder"
)

var _ = Describe("TokenizeLine", func() {
	It("skips lines not starting with a digit", func() {
		_, _, ok := ladder.TokenizeLine("// a comment")
		Expect(ok).To(BeFalse())
	})

	It("skips blank lines", func() {
		_, _, ok := ladder.TokenizeLine("   ")
		Expect(ok).To(BeFalse())
	})

	It("parses a rung number and its tokens", func() {
		n, toks, ok := ladder.TokenizeLine("1 XIC[A] XIC[B] OTE[Y]")

		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(1))
		Expect(toks).To(HaveLen(3))
		Expect(toks[0]).To(Equal(ladder.Token{Opcode: ladder.OpXIC, Params: "A"}))
		Expect(toks[2]).To(Equal(ladder.Token{Opcode: ladder.OpOTE, Params: "Y"}))
	})

	It("parses multi-arg params", func() {
		_, toks, _ := ladder.TokenizeLine("1 ADD[X,Y,Z]")

		Expect(toks).To(HaveLen(1))
		Expect(toks[0].Args()).To(Equal([]string{"X", "Y", "Z"}))
	})

	It("allows empty params for zero-arg opcodes", func() {
		_, toks, _ := ladder.TokenizeLine("1 BST NXB BND END")

		Expect(toks).To(HaveLen(4))
		for _, tok := range toks {
			Expect(tok.Params).To(BeEmpty())
			Expect(ladder.TakesNoParams(tok.Opcode)).To(BeTrue())
		}
	})

	It("drops malformed tokens shorter than three characters", func() {
		_, toks, ok := ladder.TokenizeLine("1 XI OTE[Y]")

		Expect(ok).To(BeTrue())
		Expect(toks).To(HaveLen(1))
		Expect(toks[0].Opcode).To(Equal(ladder.OpOTE))
	})

	It("keeps unknown opcodes as tokens for the evaluator to reject", func() {
		_, toks, _ := ladder.TokenizeLine("1 ZZZ[Q] OTE[Y]")

		Expect(toks).To(HaveLen(2))
		Expect(toks[0].Opcode).To(Equal(ladder.Opcode("ZZZ")))
	})
})

var _ = Describe("TokenizeProgram", func() {
	It("preserves rung order and skips comments", func() {
		lines := []string{
			"// header",
			"1 XIC[A] OTE[Y]",
			"",
			"2 XIC[B] OTE[Z]",
		}

		prog := ladder.TokenizeProgram(lines)

		Expect(prog.Rungs).To(HaveLen(2))
		Expect(prog.Rungs[0].Number).To(Equal(1))
		Expect(prog.Rungs[1].Number).To(Equal(2))
	})
})
