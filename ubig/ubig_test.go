package ubig_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/exactsum/ubig"
)

func randUBig(rng *rand.Rand, maxWords int) ubig.UBig {
	n := rng.Intn(maxWords + 1)
	w := make([]uint32, n)
	for i := range w {
		w[i] = rng.Uint32()
	}
	u, err := ubig.FromWords(w)
	Expect(err).To(BeNil())
	return u
}

var _ = Describe("UBig", func() {
	Describe("ordering and equality", func() {
		It("treats the zero value as zero", func() {
			Expect(ubig.UBig{}.IsZero()).To(BeTrue())
			Expect(ubig.Zero.Equal(ubig.UBig{})).To(BeTrue())
		})

		It("compares consistently with integer value", func() {
			a := ubig.FromUint64(100)
			b := ubig.FromUint64(200)
			Expect(a.Compare(b)).To(Equal(-1))
			Expect(b.Compare(a)).To(Equal(1))
			Expect(a.Compare(a)).To(Equal(0))
		})
	})

	Describe("algebraic invariants", func() {
		rng := rand.New(rand.NewSource(42))

		It("is commutative and associative under addition", func() {
			for i := 0; i < 100; i++ {
				a := randUBig(rng, 6)
				b := randUBig(rng, 6)
				c := randUBig(rng, 6)

				ab, err := a.Add(b)
				Expect(err).To(BeNil())
				ba, err := b.Add(a)
				Expect(err).To(BeNil())
				Expect(ab.Equal(ba)).To(BeTrue())

				abc1, err := mustAdd(ab, c)
				Expect(err).To(BeNil())
				bc, err := b.Add(c)
				Expect(err).To(BeNil())
				abc2, err := a.Add(bc)
				Expect(err).To(BeNil())
				Expect(abc1.Equal(abc2)).To(BeTrue())
			}
		})

		It("is commutative under multiplication", func() {
			for i := 0; i < 100; i++ {
				a := randUBig(rng, 6)
				b := randUBig(rng, 6)
				ab, err := a.Multiply(b)
				Expect(err).To(BeNil())
				ba, err := b.Multiply(a)
				Expect(err).To(BeNil())
				Expect(ab.Equal(ba)).To(BeTrue())
			}
		})

		It("distributes multiplication over addition", func() {
			for i := 0; i < 100; i++ {
				a := randUBig(rng, 4)
				b := randUBig(rng, 4)
				c := randUBig(rng, 4)

				bc, err := b.Add(c)
				Expect(err).To(BeNil())
				left, err := a.Multiply(bc)
				Expect(err).To(BeNil())

				ab, err := a.Multiply(b)
				Expect(err).To(BeNil())
				ac, err := a.Multiply(c)
				Expect(err).To(BeNil())
				right, err := ab.Add(ac)
				Expect(err).To(BeNil())

				Expect(left.Equal(right)).To(BeTrue())
			}
		})

		It("satisfies a = q*b + r with 0 <= r < b", func() {
			for i := 0; i < 200; i++ {
				a := randUBig(rng, 6)
				b := randUBig(rng, 3)
				if b.IsZero() {
					continue
				}
				q, r, err := a.DivMod(b)
				Expect(err).To(BeNil())
				Expect(r.Compare(b)).To(BeNumerically("<", 0))

				qb, err := q.Multiply(b)
				Expect(err).To(BeNil())
				qbr, err := qb.Add(r)
				Expect(err).To(BeNil())
				Expect(qbr.Equal(a)).To(BeTrue())
			}
		})

		It("agrees with Multiply(a, a) on Square", func() {
			for i := 0; i < 100; i++ {
				a := randUBig(rng, 6)
				sq, err := a.Square()
				Expect(err).To(BeNil())
				mul, err := a.Multiply(a)
				Expect(err).To(BeNil())
				Expect(sq.Equal(mul)).To(BeTrue())
			}
		})

		It("satisfies the shift laws", func() {
			for i := 0; i < 100; i++ {
				a := randUBig(rng, 4)
				k := rng.Intn(70)

				up, err := a.ShiftUp(k)
				Expect(err).To(BeNil())
				two, err := ubig.FromUint64(1).ShiftUp(k)
				Expect(err).To(BeNil())
				want, err := a.Multiply(two)
				Expect(err).To(BeNil())
				Expect(up.Equal(want)).To(BeTrue())

				down := a.ShiftDown(k)
				downShifted, err := down.ShiftUp(k)
				Expect(err).To(BeNil())
				diff, err := a.Sub(downShifted)
				Expect(err).To(BeNil())
				bound, err := ubig.FromUint64(1).ShiftUp(k)
				Expect(err).To(BeNil())
				Expect(diff.Compare(bound)).To(BeNumerically("<", 0))
			}
		})
	})

	Describe("GCD", func() {
		It("divides both operands evenly", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 50; i++ {
				a := randUBig(rng, 5)
				b := randUBig(rng, 5)
				if a.IsZero() || b.IsZero() {
					continue
				}
				g := a.GCD(b)
				Expect(g.IsZero()).To(BeFalse())
				_, ra, err := a.DivMod(g)
				Expect(err).To(BeNil())
				Expect(ra.IsZero()).To(BeTrue())
				_, rb, err := b.DivMod(g)
				Expect(err).To(BeNil())
				Expect(rb.IsZero()).To(BeTrue())
			}
		})

		It("returns the nonzero operand when the other is zero", func() {
			a := ubig.FromUint64(42)
			Expect(a.GCD(ubig.Zero).Equal(a)).To(BeTrue())
			Expect(ubig.Zero.GCD(a).Equal(a)).To(BeTrue())
		})
	})

	Describe("overflow semantics", func() {
		It("fails FromWords beyond MaxWords", func() {
			w := make([]uint32, ubig.MaxWords+1)
			w[len(w)-1] = 1
			_, err := ubig.FromWords(w)
			Expect(err).To(MatchError(ContainSubstring("word budget")))
		})

		It("fails when adding 1 at the top word of a MaxWords-sized value", func() {
			w := make([]uint32, ubig.MaxWords)
			w[len(w)-1] = 0xFFFFFFFF
			u, err := ubig.FromWords(w)
			Expect(err).To(BeNil())
			_, err = u.AddUint64Shifted(1, (ubig.MaxWords-1)*32)
			Expect(err).ToNot(BeNil())
		})
	})

	Describe("string and byte interop", func() {
		It("round-trips through decimal text", func() {
			u := ubig.FromUint64(123456789012345)
			s := u.Text(10)
			back, err := ubig.FromString(s, 10)
			Expect(err).To(BeNil())
			Expect(back.Equal(u)).To(BeTrue())
		})

		It("round-trips through hex text", func() {
			u := ubig.FromUint64(0xDEADBEEFCAFE)
			s := u.Text(16)
			back, err := ubig.FromString(s, 16)
			Expect(err).To(BeNil())
			Expect(back.Equal(u)).To(BeTrue())
		})

		It("rejects a signed string", func() {
			_, err := ubig.FromString("-5", 10)
			Expect(err).ToNot(BeNil())
		})

		It("round-trips through big-endian bytes", func() {
			rng := rand.New(rand.NewSource(3))
			for i := 0; i < 20; i++ {
				u := randUBig(rng, 8)
				b := u.Bytes()
				back, err := ubig.FromBytes(b)
				Expect(err).To(BeNil())
				Expect(back.Equal(u)).To(BeTrue())
			}
		})
	})

	Describe("Karatsuba and Toom-Cook agree with schoolbook", func() {
		It("produces the same product under every threshold regime", func() {
			rng := rand.New(rand.NewSource(11))
			small := ubig.NewConfig(
				ubig.WithKaratsubaThreshold(4),
				ubig.WithToomCookThreshold(8),
			)
			for i := 0; i < 30; i++ {
				a := randUBig(rng, 20)
				b := randUBig(rng, 20)
				schoolbook, err := a.MultiplyConfig(b, ubig.NewConfig(
					ubig.WithKaratsubaThreshold(1<<30),
					ubig.WithToomCookThreshold(1<<30),
				))
				Expect(err).To(BeNil())
				fast, err := a.MultiplyConfig(b, small)
				Expect(err).To(BeNil())
				Expect(fast.Equal(schoolbook)).To(BeTrue())
			}
		})
	})
})

func mustAdd(a, b ubig.UBig) (ubig.UBig, error) {
	return a.Add(b)
}
