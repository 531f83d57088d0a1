package tagstore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-plc/scanengine/tagstore"
)

var _ = Describe("Store", func() {
	var s *tagstore.Store

	BeforeEach(func() {
		s = tagstore.New()
	})

	It("creates a tag on first write, inferring its kind", func() {
		Expect(s.SetInt("X", 5)).To(Succeed())
		v, err := s.GetInt("X")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(5)))
	})

	It("fails NotFound for an unknown tag", func() {
		_, err := s.GetBool("Missing")
		Expect(err).To(MatchError(tagstore.ErrNotFound))
	})

	It("fails TypeMismatch when reading a tag as the wrong kind", func() {
		Expect(s.SetInt("X", 5)).To(Succeed())
		_, err := s.GetReal("X")
		Expect(err).To(MatchError(tagstore.ErrTypeMismatch))
	})

	It("fails TypeMismatch when writing a different kind over an existing tag", func() {
		Expect(s.SetBool("Flag", true)).To(Succeed())
		err := s.SetInt("Flag", 1)
		Expect(err).To(MatchError(tagstore.ErrTypeMismatch))
	})

	It("preserves type stability across overwrites (P7)", func() {
		Expect(s.SetReal("R", 1.5)).To(Succeed())
		Expect(s.SetReal("R", 2.5)).To(Succeed())
		v, err := s.GetReal("R")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(2.5))
	})

	It("compares Real values after rounding to two decimals", func() {
		a := tagstore.Real(1.004)
		b := tagstore.Real(1.001)
		Expect(a.Equal(b)).To(BeTrue())

		c := tagstore.Real(1.01)
		Expect(a.Equal(c)).To(BeFalse())
	})

	It("never equates values of different kinds", func() {
		Expect(tagstore.Int(1).Equal(tagstore.Real(1))).To(BeFalse())
	})

	It("iterates every stored tag", func() {
		s.SetBool("A", true)
		s.SetInt("B", 1)
		s.SetReal("C", 2.0)

		seen := map[string]tagstore.Kind{}
		s.Iter(func(name string, v tagstore.Value) { seen[name] = v.Kind })

		Expect(seen).To(HaveLen(3))
		Expect(seen["A"]).To(Equal(tagstore.KindBool))
	})
})
