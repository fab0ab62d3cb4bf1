package word_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/exactsum/word"
)

var _ = Describe("Word primitives", func() {
	Describe("HiInt and LoInt", func() {
		It("treats nil as length 0", func() {
			Expect(word.HiInt(nil)).To(Equal(0))
			Expect(word.LoInt(nil)).To(Equal(0))
		})

		It("trims trailing zero words for HiInt", func() {
			w := []word.Word{1, 2, 0, 0}
			Expect(word.HiInt(w)).To(Equal(2))
		})

		It("finds the first nonzero word for LoInt", func() {
			w := []word.Word{0, 0, 5, 7}
			Expect(word.LoInt(w)).To(Equal(2))
		})

		It("reports len(w) from LoInt when all-zero", func() {
			w := []word.Word{0, 0, 0}
			Expect(word.LoInt(w)).To(Equal(3))
		})
	})

	Describe("Compare", func() {
		It("is reflexive", func() {
			w := []word.Word{1, 2, 3}
			Expect(word.Compare(w, w)).To(Equal(0))
		})

		It("ignores denormalized trailing zeros", func() {
			a := []word.Word{5, 0, 0}
			b := []word.Word{5}
			Expect(word.Compare(a, b)).To(Equal(0))
		})

		It("orders by the highest differing word", func() {
			a := []word.Word{0, 1}
			b := []word.Word{0xFFFFFFFF}
			Expect(word.Compare(a, b)).To(Equal(1))
		})
	})

	Describe("AddWords and SubWords", func() {
		It("round-trips add then sub", func() {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 200; i++ {
				n := 1 + rng.Intn(8)
				x := randWords(rng, n)
				y := randWords(rng, n)
				if word.Compare(x, y) < 0 {
					x, y = y, x
				}
				sum := make([]word.Word, n+1)
				carry := word.AddWords(sum[:n], x, y)
				sum[n] = carry

				diff := make([]word.Word, n+1)
				borrow := word.SubWords(diff, sum, append(append([]word.Word{}, y...), 0))
				Expect(borrow).To(Equal(word.Word(0)))
				Expect(word.Compare(diff, append(append([]word.Word{}, x...), 0))).To(Equal(0))
			}
		})

		It("carries out of the top word", func() {
			x := []word.Word{0xFFFFFFFF}
			y := []word.Word{1}
			z := make([]word.Word, 1)
			carry := word.AddWords(z, x, y)
			Expect(carry).To(Equal(word.Word(1)))
			Expect(z[0]).To(Equal(word.Word(0)))
		})
	})

	Describe("ShiftLeft and ShiftRight", func() {
		It("round-trips a left then right shift by the same amount", func() {
			x := []word.Word{0x12345678, 0x9ABCDEF0}
			for s := uint(0); s < 32; s++ {
				z := make([]word.Word, 2)
				carry := word.ShiftLeft(z, x, s)
				back := make([]word.Word, 2)
				word.ShiftRight(back, z, s, carry)
				Expect(back).To(Equal(x))
			}
		})
	})

	Describe("MulAddWord", func() {
		It("matches schoolbook multiply-accumulate of a single word", func() {
			x := []word.Word{0xFFFFFFFF, 0xFFFFFFFF}
			z := make([]word.Word, 3)
			carry := word.MulAddWord(z[:2], x, 2, 1)
			z[2] = carry
			// (2^64 - 1) * 2 + 1 = 2^65 - 1
			var got uint64 = (uint64(z[1]) << 32) | uint64(z[0])
			Expect(got).To(Equal(uint64(0xFFFFFFFFFFFFFFFF)))
			Expect(z[2]).To(Equal(word.Word(1)))
		})
	})

	Describe("Mul64", func() {
		It("computes the full 64-bit product without losing precision", func() {
			hi, lo := word.Mul64(0xFFFFFFFF, 0xFFFFFFFF)
			got := (uint64(hi) << 32) | uint64(lo)
			Expect(got).To(Equal(uint64(0xFFFFFFFF) * uint64(0xFFFFFFFF)))
		})
	})
})

func randWords(rng *rand.Rand, n int) []word.Word {
	w := make([]word.Word, n)
	for i := range w {
		w[i] = word.Word(rng.Uint32())
	}
	return w
}
