// Package round is the bridge between the exact kernel (bflt.BFlt and
// brat.BRat) and IEEE-754 binary64: it produces the correctly-rounded
// float64 for an exact value, round-half-to-even, with overflow
// saturating to +-Inf and underflow flushing to +-0 as binary64 itself
// requires.
package round

import (
	"math"

	"github.com/sarchlab/exactsum/bflt"
	"github.com/sarchlab/exactsum/brat"
	"github.com/sarchlab/exactsum/ubig"
)

const (
	mantissaBits = 52
	exponentBias = 1023
	// minNormalExp is the smallest unbiased exponent of a normal binary64
	// (2^-1022 * 1.0).
	minNormalExp = -exponentBias + 1
	// subnormalExp is the fixed scale of every subnormal binary64.
	subnormalExp = -exponentBias - mantissaBits + 1 // -1074
	// maxExp is the largest unbiased exponent a finite binary64 can hold.
	maxExp = exponentBias
)

// SignedZero returns +0 or -0, for callers (accumulators) that track the
// sign of an exact-zero running total separately, since the exact
// arithmetic types in this module do not distinguish +0 from -0.
func SignedZero(negative bool) float64 {
	if negative {
		return math.Copysign(0, -1)
	}
	return 0
}

// FromBFlt returns the binary64 nearest f, rounding half to even, with
// overflow saturating to an infinity and underflow flushing to a zero.
// Zero itself rounds to +0 — see SignedZero for tracking a signed zero
// across an accumulation.
func FromBFlt(f bflt.BFlt) (float64, error) {
	if f.IsZero() {
		return 0, nil
	}
	return roundMagExp(f.Sign() < 0, f.Significand().Abs(), f.Exponent())
}

// FromBRat returns the binary64 nearest r, rounding half to even, with
// the same overflow/underflow/zero conventions as FromBFlt.
func FromBRat(r brat.BRat) (float64, error) {
	if r.IsZero() {
		return 0, nil
	}
	neg := r.Sign() < 0
	num := r.Numerator().Abs()
	den := r.Denominator()

	// Scale num up (or den up, if num is already far larger) so that
	// num<<shift divided by den leaves a quotient with comfortably more
	// bits than any float64 needs, plus slack bits below that serve as a
	// reliable sticky-bit proxy: if the division leaves a remainder, the
	// true value has a nonzero tail below every bit of the quotient, a
	// fact folded into the quotient's own bit 0 well below where any
	// float64 rounding decision actually looks.
	const slackBits = 128
	approxVExp := num.HiBit() - den.HiBit()
	shiftAmount := slackBits + 54 - approxVExp

	var numShifted, denShifted ubig.UBig
	var err error
	if shiftAmount >= 0 {
		numShifted, err = num.ShiftUp(shiftAmount)
		denShifted = den
	} else {
		numShifted = num
		denShifted, err = den.ShiftUp(-shiftAmount)
	}
	if err != nil {
		return 0, err
	}

	q, rem, err := numShifted.DivMod(denShifted)
	if err != nil {
		return 0, err
	}
	if !rem.IsZero() {
		q, err = q.SetBit(0)
		if err != nil {
			return 0, err
		}
	}

	return roundMagExp(neg, q, -shiftAmount)
}

// roundMagExp rounds the exact non-negative value mag*2^exp to the
// nearest binary64 (half to even), applying sign.
func roundMagExp(neg bool, mag ubig.UBig, exp int) (float64, error) {
	hiBit := mag.HiBit()
	vExp := exp + hiBit - 1

	storedExp := vExp - mantissaBits
	if vExp < minNormalExp {
		storedExp = subnormalExp
	}
	dropBits := storedExp - exp

	var n ubig.UBig
	var err error
	switch {
	case dropBits <= 0:
		n, err = mag.ShiftUp(-dropBits)
	default:
		n = mag.ShiftDown(dropBits)
		if mag.RoundUp(dropBits) {
			n, err = n.AddUint64(1)
		}
	}
	if err != nil {
		return 0, err
	}

	if n.IsZero() {
		return SignedZero(neg), nil
	}

	hiBitN := n.HiBit()
	newVExp := storedExp + hiBitN - 1

	if newVExp > maxExp {
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	var biasedExp uint64
	var mantissaField uint64
	if newVExp < minNormalExp {
		biasedExp = 0
		mantissaField, err = n.Uint64()
	} else {
		biasedExp = uint64(newVExp + exponentBias)
		implicit, e := ubig.FromUint64Shifted(1, hiBitN-1)
		if e != nil {
			return 0, e
		}
		frac, e := n.Sub(implicit)
		if e != nil {
			return 0, e
		}
		mantissaField, err = frac.Uint64()
	}
	if err != nil {
		return 0, err
	}

	bits := (boolBit(neg) << 63) | (biasedExp << mantissaBits) | (mantissaField & (1<<mantissaBits - 1))
	return math.Float64frombits(bits), nil
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
