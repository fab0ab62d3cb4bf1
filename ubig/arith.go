package ubig

import (
	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/word"
)

// Add returns u + v.
func (u UBig) Add(v UBig) (UBig, error) {
	n := maxInt(len(u.w), len(v.w)) + 1
	z := make([]word.Word, n)
	carry := word.AddWords(z[:n-1], u.w, v.w)
	z[n-1] = carry
	return FromWords(z)
}

// Sub returns u - v. The precondition u >= v must hold; violating it
// fails with errs.ErrDomain.
func (u UBig) Sub(v UBig) (UBig, error) {
	if u.Compare(v) < 0 {
		return UBig{}, errs.Domain("ubig.Sub", "minuend is smaller than subtrahend")
	}
	z := make([]word.Word, len(u.w))
	borrow := word.SubWords(z, u.w, v.w)
	if borrow != 0 {
		// Unreachable given the precondition check above, but guards
		// against a caller-visible inconsistency rather than silently
		// wrapping.
		return UBig{}, errs.Domain("ubig.Sub", "minuend is smaller than subtrahend")
	}
	return FromWords(z)
}

// AddShifted returns u + (v << upShift). upShift must be >= 0.
func (u UBig) AddShifted(v UBig, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.AddShifted", "negative shift")
	}
	shifted, err := shiftedWords(v.w, upShift)
	if err != nil {
		return UBig{}, err
	}
	n := maxInt(len(u.w), len(shifted)) + 1
	z := make([]word.Word, n)
	carry := word.AddWords(z[:n-1], u.w, shifted)
	z[n-1] = carry
	return FromWords(z)
}

// SubShifted returns u - (v << upShift). Requires u >= v<<upShift.
func (u UBig) SubShifted(v UBig, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.SubShifted", "negative shift")
	}
	shifted, err := shiftedWords(v.w, upShift)
	if err != nil {
		return UBig{}, err
	}
	shiftedU, _ := FromWords(shifted)
	if u.Compare(shiftedU) < 0 {
		return UBig{}, errs.Domain("ubig.SubShifted", "minuend is smaller than shifted subtrahend")
	}
	z := make([]word.Word, len(u.w))
	word.SubWords(z, u.w, shifted)
	return FromWords(z)
}

// AddUint64 returns u + x.
func (u UBig) AddUint64(x uint64) (UBig, error) {
	return u.Add(FromUint64(x))
}

// AddUint64Shifted returns u + (x << upShift).
func (u UBig) AddUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.AddUint64Shifted", "negative shift")
	}
	return u.AddShifted(FromUint64(x), upShift)
}

// SubUint64 returns u - x. Requires u >= x.
func (u UBig) SubUint64(x uint64) (UBig, error) {
	return u.Sub(FromUint64(x))
}

// SubUint64Shifted returns u - (x << upShift). Requires u >= x<<upShift.
func (u UBig) SubUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.SubUint64Shifted", "negative shift")
	}
	return u.SubShifted(FromUint64(x), upShift)
}

// SubtractFromUint64 returns x - u. Requires u <= x.
func (u UBig) SubtractFromUint64(x uint64) (UBig, error) {
	return FromUint64(x).Sub(u)
}

// SubtractFromUint64Shifted returns (x << upShift) - u. Requires
// u <= x<<upShift.
func (u UBig) SubtractFromUint64Shifted(x uint64, upShift int) (UBig, error) {
	if upShift < 0 {
		return UBig{}, errs.Domain("ubig.SubtractFromUint64Shifted", "negative shift")
	}
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		return UBig{}, err
	}
	return shifted.Sub(u)
}

// shiftedWords computes (src << upShift) as a trimmed word slice,
// decomposing upShift = 32*iShift + bShift the way spec.md describes:
// whole words of offset are free (iShift), and the remaining sub-word
// shift (bShift) is applied by shifting the source array up and letting
// the carry chain produce the extra high word.
func shiftedWords(src []word.Word, upShift int) ([]word.Word, error) {
	if len(src) == 0 {
		return nil, nil
	}
	iShift := upShift / 32
	bShift := uint(upShift % 32)

	if len(src)+iShift+1 > MaxWords+1 {
		return nil, errs.Overflow("ubig.shiftedWords", wordCountDetail(len(src)+iShift+1))
	}

	out := make([]word.Word, iShift+len(src)+1)
	carry := word.ShiftLeft(out[iShift:iShift+len(src)], src, bShift)
	out[iShift+len(src)] = carry
	return out[:word.HiInt(out)], nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
