package ubig

import (
	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/word"
)

// TestBit reports whether bit i (0-based, LSB = bit 0) is set.
func (u UBig) TestBit(i int) bool {
	if i < 0 {
		return false
	}
	wi := i / 32
	if wi >= len(u.w) {
		return false
	}
	return u.w[wi]&(1<<uint(i%32)) != 0
}

// SetBit returns u with bit i set. i must be >= 0.
func (u UBig) SetBit(i int) (UBig, error) {
	if i < 0 {
		return UBig{}, errs.Domain("ubig.SetBit", "negative bit index")
	}
	wi := i / 32
	if wi+1 > MaxWords {
		return UBig{}, errs.Overflow("ubig.SetBit", wordCountDetail(wi+1))
	}
	n := maxInt(len(u.w), wi+1)
	z := make([]word.Word, n)
	copy(z, u.w)
	z[wi] |= 1 << uint(i%32)
	return FromWords(z)
}

// ShiftUp returns u << k. k must be >= 0.
func (u UBig) ShiftUp(k int) (UBig, error) {
	if k < 0 {
		return UBig{}, errs.Domain("ubig.ShiftUp", "negative shift")
	}
	if u.IsZero() {
		return Zero, nil
	}
	shifted, err := shiftedWords(u.w, k)
	if err != nil {
		return UBig{}, err
	}
	return FromWords(shifted)
}

// ShiftDown returns u >> k (truncating). k must be >= 0.
func (u UBig) ShiftDown(k int) UBig {
	if k < 0 || u.IsZero() {
		return u
	}
	iShift := k / 32
	bShift := uint(k % 32)
	if iShift >= len(u.w) {
		return Zero
	}
	src := u.w[iShift:]
	z := make([]word.Word, len(src))
	word.ShiftRight(z, src, bShift, 0)
	res, _ := FromWords(z)
	return res
}

// GetShiftedInt returns the least significant 32 bits of u * 2^-k,
// truncating. k may be any integer (negative k shifts up).
func (u UBig) GetShiftedInt(k int) uint32 {
	if k >= 0 {
		return uint32(u.ShiftDown(k).lowWord())
	}
	shifted, err := u.ShiftUp(-k)
	if err != nil {
		return 0
	}
	return uint32(shifted.lowWord())
}

// GetShiftedLong returns the least significant 64 bits of u * 2^-k,
// truncating. k may be any integer (negative k shifts up).
func (u UBig) GetShiftedLong(k int) uint64 {
	if k >= 0 {
		return u.ShiftDown(k).lowUint64()
	}
	shifted, err := u.ShiftUp(-k)
	if err != nil {
		return 0
	}
	return shifted.lowUint64()
}

func (u UBig) lowWord() word.Word {
	if len(u.w) == 0 {
		return 0
	}
	return u.w[0]
}

func (u UBig) lowUint64() uint64 {
	var lo, hi word.Word
	if len(u.w) > 0 {
		lo = u.w[0]
	}
	if len(u.w) > 1 {
		hi = u.w[1]
	}
	return uint64(lo) | uint64(hi)<<32
}

// RoundUp implements round-half-to-even for the bit position e >= 1: it
// reports whether u, truncated to drop bits below e, should instead be
// rounded up by one unit in position e. Bit e-1 is the guard bit and
// anything below it is the sticky tail. A guard of 0 never rounds up; a
// guard of 1 with a nonzero sticky tail always rounds up (the discarded
// value is strictly more than half a unit); a guard of 1 with an all-zero
// sticky tail is exactly half a unit, which rounds up only when it makes
// the kept value even, i.e. when bit e is currently set.
func (u UBig) RoundUp(e int) bool {
	if e < 1 {
		return false
	}
	if !u.TestBit(e - 1) {
		return false
	}
	if u.sticky(e - 1) {
		return true
	}
	return u.TestBit(e)
}

// sticky reports whether any bit below position e (0-based) is set.
func (u UBig) sticky(e int) bool {
	if e <= 0 {
		return false
	}
	wi := e / 32
	bi := uint(e % 32)
	if wi < len(u.w) && u.w[wi]&((1<<bi)-1) != 0 {
		return true
	}
	for i := 0; i < wi && i < len(u.w); i++ {
		if u.w[i] != 0 {
			return true
		}
	}
	return false
}
