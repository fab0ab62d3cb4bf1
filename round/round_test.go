package round_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/exactsum/bflt"
	"github.com/sarchlab/exactsum/brat"
	"github.com/sarchlab/exactsum/round"
	"github.com/sarchlab/exactsum/sbig"
	"github.com/sarchlab/exactsum/ubig"
)

var _ = Describe("round", func() {
	Describe("round-trip through BFlt", func() {
		It("reproduces every finite float64 exactly", func() {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 2000; i++ {
				bits := rng.Uint64()
				x := math.Float64frombits(bits)
				if math.IsNaN(x) || math.IsInf(x, 0) {
					continue
				}
				f, err := bflt.FromFloat64(x)
				Expect(err).To(BeNil())
				got, err := round.FromBFlt(f)
				Expect(err).To(BeNil())
				if x == 0 {
					Expect(got).To(Equal(0.0))
					continue
				}
				Expect(got).To(Equal(x))
			}
		})
	})

	Describe("catastrophic cancellation", func() {
		It("computes (1e20 + 1) - 1e20 exactly as 1.0", func() {
			big, err := bflt.FromFloat64(1e20)
			Expect(err).To(BeNil())
			one := bflt.FromInt64(1)

			sum, err := big.Add(one)
			Expect(err).To(BeNil())
			result, err := sum.Sub(big)
			Expect(err).To(BeNil())

			got, err := round.FromBFlt(result)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(1.0))
		})
	})

	Describe("subnormal sum", func() {
		It("adds two smallest subnormals to the next subnormal up", func() {
			tiny, err := bflt.FromFloat64(math.SmallestNonzeroFloat64)
			Expect(err).To(BeNil())
			sum, err := tiny.Add(tiny)
			Expect(err).To(BeNil())
			got, err := round.FromBFlt(sum)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(2 * math.SmallestNonzeroFloat64))
		})

		It("rounds the halfway subnormal case to even (zero)", func() {
			half, err := bflt.FromFloat64(math.SmallestNonzeroFloat64)
			Expect(err).To(BeNil())
			// half of the smallest subnormal: sig=1, exp=-1075
			exactlyHalf := bflt.New(half.Significand(), half.Exponent()-1)
			got, err := round.FromBFlt(exactlyHalf)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(0.0))
		})
	})

	Describe("overflow", func() {
		It("rounds a sum-of-squares of two huge values to +Inf", func() {
			huge, err := bflt.FromFloat64(1e200)
			Expect(err).To(BeNil())
			sq, err := huge.Square()
			Expect(err).To(BeNil())
			doubled, err := sq.Add(sq)
			Expect(err).To(BeNil())
			got, err := round.FromBFlt(doubled)
			Expect(err).To(BeNil())
			Expect(math.IsInf(got, 1)).To(BeTrue())
		})
	})

	Describe("L2 distance of equal vectors", func() {
		It("is exactly +0.0 via BFlt", func() {
			a, err := bflt.FromFloat64(3.25)
			Expect(err).To(BeNil())
			diff, err := a.Sub(a)
			Expect(err).To(BeNil())
			got, err := round.FromBFlt(diff)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(0.0))
			Expect(math.Signbit(got)).To(BeFalse())
		})
	})

	Describe("SignedZero", func() {
		It("produces a negative zero that compares equal to zero but has the sign bit set", func() {
			z := round.SignedZero(true)
			Expect(z).To(Equal(0.0))
			Expect(math.Signbit(z)).To(BeTrue())
		})
	})

	Describe("FromBRat", func() {
		It("rounds an integer num/1 below 2^40 to float64(num) exactly", func() {
			rng := rand.New(rand.NewSource(2))
			for i := 0; i < 200; i++ {
				n := rng.Int63n(1 << 40)
				r := brat.FromInt64(n)
				gotRat, err := round.FromBRat(r)
				Expect(err).To(BeNil())
				Expect(gotRat).To(Equal(float64(n)))
			}
		})

		It("rounds a genuinely non-dyadic rational to the nearest float64", func() {
			// 1/3 should round to math's closest representation.
			r, err := brat.New(sbig.FromInt64(1), ubig.FromUint64(3))
			Expect(err).To(BeNil())
			got, err := round.FromBRat(r)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(1.0 / 3.0))
		})
	})
})
