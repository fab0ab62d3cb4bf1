// Package bflt implements BFlt, an exact binary float: an SBig
// significand times 2^exponent. Every BFlt operation in this package is
// exact — no rounding, no precision loss, arbitrarily wide significands.
// Rounding a BFlt down to the nearest binary64 is the job of package
// round, not this one.
package bflt

import (
	"github.com/sarchlab/exactsum/sbig"
)

// BFlt is an exact value sig * 2^exp. The zero value represents 0.
type BFlt struct {
	sig sbig.SBig
	exp int
}

// Zero is the additive identity.
var Zero = BFlt{}

// New builds sig * 2^exp.
func New(sig sbig.SBig, exp int) BFlt {
	if sig.IsZero() {
		return Zero
	}
	return BFlt{sig: sig, exp: exp}
}

// FromInt64 builds the exact value x (exponent 0).
func FromInt64(x int64) BFlt {
	return New(sbig.FromInt64(x), 0)
}

// IsZero reports whether f is zero.
func (f BFlt) IsZero() bool {
	return f.sig.IsZero()
}

// Sign returns -1, 0, or +1 according to f's significand sign.
func (f BFlt) Sign() int {
	return f.sig.Sign()
}

// Significand returns f's significand in its current (possibly
// unnormalized) form.
func (f BFlt) Significand() sbig.SBig {
	return f.sig
}

// Exponent returns f's binary exponent in its current (possibly
// unnormalized) form.
func (f BFlt) Exponent() int {
	return f.exp
}

// Negate returns -f.
func (f BFlt) Negate() BFlt {
	return BFlt{sig: f.sig.Negate(), exp: f.exp}
}

// Abs returns |f|.
func (f BFlt) Abs() BFlt {
	if f.Sign() < 0 {
		return f.Negate()
	}
	return f
}

// Normalize returns an equal BFlt whose significand is odd (or whose
// value is exactly Zero), by shifting trailing zero bits of the
// significand into the exponent. Two equal values normalize to
// identical (sig, exp) pairs, which is what makes normalization useful
// for equality checks and canonical text output.
func (f BFlt) Normalize() BFlt {
	if f.IsZero() {
		return Zero
	}
	mag := f.sig.Abs()
	trailing := 0
	for trailing < mag.HiBit() && !mag.TestBit(trailing) {
		trailing++
	}
	if trailing == 0 {
		return f
	}
	shifted := mag.ShiftDown(trailing)
	return BFlt{sig: sbig.FromUBig(shifted, f.sig.Negative()), exp: f.exp + trailing}
}

// Equal reports whether f and g represent the same exact value.
func (f BFlt) Equal(g BFlt) bool {
	nf, ng := f.Normalize(), g.Normalize()
	return nf.exp == ng.exp && nf.sig.Equal(ng.sig)
}
