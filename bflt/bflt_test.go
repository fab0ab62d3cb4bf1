package bflt_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/exactsum/bflt"
)

var _ = Describe("BFlt", func() {
	Describe("FromFloat64", func() {
		It("rejects NaN and infinities", func() {
			_, err := bflt.FromFloat64(math.NaN())
			Expect(err).ToNot(BeNil())
			_, err = bflt.FromFloat64(math.Inf(1))
			Expect(err).ToNot(BeNil())
		})

		It("decomposes zero to the Zero value", func() {
			f, err := bflt.FromFloat64(0)
			Expect(err).To(BeNil())
			Expect(f.IsZero()).To(BeTrue())
			nf, err := bflt.FromFloat64(math.Copysign(0, -1))
			Expect(err).To(BeNil())
			Expect(nf.IsZero()).To(BeTrue())
		})

		It("decomposes a normal value with the implicit leading bit", func() {
			f, err := bflt.FromFloat64(1.5)
			Expect(err).To(BeNil())
			n := f.Normalize()
			// 1.5 = 3 * 2^-1
			Expect(n.Exponent()).To(Equal(-1))
		})

		It("decomposes the smallest subnormal to 1 * 2^-1074", func() {
			f, err := bflt.FromFloat64(math.SmallestNonzeroFloat64)
			Expect(err).To(BeNil())
			nf := f.Normalize()
			Expect(nf.Exponent()).To(Equal(-1074))
		})
	})

	Describe("arithmetic against float64 oracle for exactly representable sums", func() {
		rng := rand.New(rand.NewSource(5))

		It("Add/Sub/Multiply agree with float64 arithmetic when results stay exact", func() {
			for i := 0; i < 200; i++ {
				a := float64(rng.Intn(1 << 20))
				b := float64(rng.Intn(1 << 20))

				fa, err := bflt.FromFloat64(a)
				Expect(err).To(BeNil())
				fb, err := bflt.FromFloat64(b)
				Expect(err).To(BeNil())

				sum, err := fa.Add(fb)
				Expect(err).To(BeNil())
				wantSum, err := bflt.FromFloat64(a + b)
				Expect(err).To(BeNil())
				Expect(sum.Equal(wantSum)).To(BeTrue())

				prod, err := fa.Multiply(fb)
				Expect(err).To(BeNil())
				wantProd, err := bflt.FromFloat64(a * b)
				Expect(err).To(BeNil())
				Expect(prod.Equal(wantProd)).To(BeTrue())
			}
		})

		It("catastrophic cancellation is exact: (1e20 + 1) - 1e20 computed in BFlt equals 1", func() {
			big, err := bflt.FromFloat64(1e20)
			Expect(err).To(BeNil())
			one := bflt.FromInt64(1)
			negBig := big.Negate()

			sum, err := big.Add(one)
			Expect(err).To(BeNil())
			result, err := sum.Add(negBig)
			Expect(err).To(BeNil())
			Expect(result.Equal(one)).To(BeTrue())
		})
	})

	Describe("Normalize", func() {
		It("is idempotent and strips trailing zero bits", func() {
			f := bflt.New(bflt.FromInt64(12).Significand(), 3) // 12 * 2^3 = 96 = 3 * 2^5
			n := f.Normalize()
			Expect(n.Normalize().Equal(n)).To(BeTrue())
			Expect(n.Exponent()).To(Equal(5))
		})

		It("normalizes zero to the Zero value", func() {
			Expect(bflt.Zero.Normalize().Equal(bflt.Zero)).To(BeTrue())
		})
	})
})
