// Package ubig implements UBig, an immutable arbitrary-precision
// non-negative integer built on packed 32-bit words. It is the foundation
// of the exact-arithmetic kernel: sbig, brat, bflt, and accum all reduce
// to UBig operations.
//
// A UBig value is never mutated after construction; every method that
// would change the value returns a fresh UBig instead. This makes UBig
// values freely shareable across goroutines without locking (see
// errs.ErrOverflow for the one failure mode shared arithmetic can hit).
package ubig

import (
	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/word"
)

// MaxWords bounds the word length of any UBig. An operation that would
// produce a longer value fails with errs.ErrOverflow instead of
// allocating an oversized buffer. It is the largest word count whose bit
// length still fits in a signed 32-bit integer.
const MaxWords = (1<<31 - 1) / 32

// UBig is an immutable non-negative arbitrary-precision integer.
// The zero value represents 0.
type UBig struct {
	w []word.Word // little-endian words; w[len(w)-1] != 0 when len(w) > 0
}

// Zero is the additive identity.
var Zero = UBig{}

// One is the multiplicative identity.
var One = UBig{w: []word.Word{1}}

// FromWords builds a UBig from a little-endian word slice, trimming
// trailing zero words. It fails with errs.ErrOverflow if the normalized
// length exceeds MaxWords. The input slice is copied; the caller's slice
// is never retained.
func FromWords(w []word.Word) (UBig, error) {
	n := word.HiInt(w)
	if n > MaxWords {
		return UBig{}, errs.Overflow("ubig.FromWords", wordCountDetail(n))
	}
	if n == 0 {
		return Zero, nil
	}
	cp := make([]word.Word, n)
	copy(cp, w[:n])
	return UBig{w: cp}, nil
}

// FromUint64 builds a UBig from a 64-bit unsigned integer.
func FromUint64(x uint64) UBig {
	if x == 0 {
		return Zero
	}
	if x <= 0xFFFFFFFF {
		return UBig{w: []word.Word{word.Word(x)}}
	}
	return UBig{w: []word.Word{word.Word(x), word.Word(x >> 32)}}
}

// FromUint64Shifted builds x << upShift as a UBig. upShift must be >= 0.
func FromUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.FromUint64Shifted", "negative shift")
	}
	u := FromUint64(x)
	if upShift == 0 || u.IsZero() {
		return u, nil
	}
	return u.ShiftUp(upShift)
}

// IsZero reports whether u is the additive identity.
func (u UBig) IsZero() bool {
	return len(u.w) == 0
}

// Words returns the underlying little-endian word slice. The slice must
// not be modified by the caller: UBig relies on it being immutable to
// share storage safely across values.
func (u UBig) Words() []word.Word {
	return u.w
}

// HiBit returns the 1-based index of the most significant set bit, or 0
// for zero.
func (u UBig) HiBit() int {
	n := len(u.w)
	if n == 0 {
		return 0
	}
	top := u.w[n-1]
	bit := 0
	for top != 0 {
		bit++
		top >>= 1
	}
	return (n-1)*32 + bit
}

// Compare returns -1, 0, or +1 according to whether u is less than, equal
// to, or greater than v.
func (u UBig) Compare(v UBig) int {
	return word.Compare(u.w, v.w)
}

// CompareUint64 compares u to the unsigned integer x.
func (u UBig) CompareUint64(x uint64) int {
	return u.Compare(FromUint64(x))
}

// CompareShifted compares u to x << upShift. It always builds the
// shifted value in full, even when u's length alone would decide the
// comparison.
func (u UBig) CompareShifted(x uint64, upShift int) (int, error) {
	if upShift < 0 {
		return 0, errs.Domain("ubig.CompareShifted", "negative shift")
	}
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		return 0, err
	}
	return u.Compare(shifted), nil
}

// Equal reports whether u and v have the same value.
func (u UBig) Equal(v UBig) bool {
	return u.Compare(v) == 0
}

func wordCountDetail(n int) string {
	return "result would require " + itoa(n) + " words (max " + itoa(MaxWords) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
