package brat_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/exactsum/brat"
	"github.com/sarchlab/exactsum/sbig"
	"github.com/sarchlab/exactsum/ubig"
)

func mustNew(num int64, den uint64) brat.BRat {
	r, err := brat.New(sbig.FromInt64(num), ubig.FromUint64(den))
	Expect(err).To(BeNil())
	return r
}

var _ = Describe("BRat", func() {
	Describe("construction", func() {
		It("rejects a zero denominator", func() {
			_, err := brat.New(sbig.FromInt64(1), ubig.Zero)
			Expect(err).ToNot(BeNil())
		})

		It("normalizes a zero numerator to 0/1", func() {
			r, err := brat.New(sbig.Zero, ubig.FromUint64(7))
			Expect(err).To(BeNil())
			Expect(r.IsZero()).To(BeTrue())
			Expect(r.Denominator().Equal(ubig.One)).To(BeTrue())
		})
	})

	Describe("Reduce", func() {
		It("divides out the GCD of numerator and denominator", func() {
			r := mustNew(6, 8)
			reduced, err := r.Reduce()
			Expect(err).To(BeNil())
			Expect(reduced.Numerator().Equal(sbig.FromInt64(3))).To(BeTrue())
			Expect(reduced.Denominator().Equal(ubig.FromUint64(4))).To(BeTrue())
		})

		It("is idempotent", func() {
			r := mustNew(-9, 12)
			once, err := r.Reduce()
			Expect(err).To(BeNil())
			twice, err := once.Reduce()
			Expect(err).To(BeNil())
			eq, err := once.Equal(twice)
			Expect(err).To(BeNil())
			Expect(eq).To(BeTrue())
		})
	})

	Describe("arithmetic against rational oracle via cross-multiplication", func() {
		rng := rand.New(rand.NewSource(17))

		It("Add, reduced and then undone by Sub, recovers the original value", func() {
			for i := 0; i < 100; i++ {
				a := mustNew(rng.Int63n(1000)-500, uint64(rng.Intn(50)+1))
				b := mustNew(rng.Int63n(1000)-500, uint64(rng.Intn(50)+1))

				sum, err := a.Add(b)
				Expect(err).To(BeNil())

				// Reducing the unreduced sum must not change its value:
				// subtracting b back out of it has to give a again.
				sumReduced, err := sum.Reduce()
				Expect(err).To(BeNil())

				viaSub, err := sumReduced.Sub(b)
				Expect(err).To(BeNil())
				eq, err := viaSub.Equal(a)
				Expect(err).To(BeNil())
				Expect(eq).To(BeTrue())
			}
		})

		It("Multiply and Reciprocal invert each other for nonzero values", func() {
			for i := 0; i < 50; i++ {
				num := rng.Int63n(1000) - 500
				if num == 0 {
					continue
				}
				a := mustNew(num, uint64(rng.Intn(50)+1))
				recip, err := a.Reciprocal()
				Expect(err).To(BeNil())
				prod, err := a.Multiply(recip)
				Expect(err).To(BeNil())
				eq, err := prod.Equal(brat.One)
				Expect(err).To(BeNil())
				Expect(eq).To(BeTrue())
			}
		})

		It("rejects the reciprocal of zero", func() {
			_, err := brat.Zero.Reciprocal()
			Expect(err).ToNot(BeNil())
		})

		It("Compare agrees with Sub's sign", func() {
			for i := 0; i < 100; i++ {
				a := mustNew(rng.Int63n(200)-100, uint64(rng.Intn(20)+1))
				b := mustNew(rng.Int63n(200)-100, uint64(rng.Intn(20)+1))
				cmp, err := a.Compare(b)
				Expect(err).To(BeNil())
				diff, err := a.Sub(b)
				Expect(err).To(BeNil())
				switch {
				case cmp < 0:
					Expect(diff.Sign()).To(Equal(-1))
				case cmp > 0:
					Expect(diff.Sign()).To(Equal(1))
				default:
					Expect(diff.Sign()).To(Equal(0))
				}
			}
		})
	})
})
