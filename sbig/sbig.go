// Package sbig implements SBig, an immutable arbitrary-precision signed
// integer: a sign together with a ubig.UBig magnitude. It is the
// numerator type for brat and the significand type for bflt.
package sbig

import (
	"github.com/sarchlab/exactsum/ubig"
)

// SBig is an immutable signed arbitrary-precision integer. The zero
// value represents 0.
type SBig struct {
	neg bool
	mag ubig.UBig
}

// Zero is the additive identity.
var Zero = SBig{}

// One is the multiplicative identity.
var One = SBig{mag: ubig.One}

// FromUBig wraps a non-negative magnitude as an SBig, with sign true
// meaning negative. A zero magnitude is always non-negative regardless
// of the requested sign, matching the two's-complement-free convention
// that there is exactly one zero.
func FromUBig(mag ubig.UBig, negative bool) SBig {
	if mag.IsZero() {
		return Zero
	}
	return SBig{neg: negative, mag: mag}
}

// FromInt64 builds an SBig from a signed 64-bit integer.
func FromInt64(x int64) SBig {
	if x == 0 {
		return Zero
	}
	if x < 0 {
		return SBig{neg: true, mag: ubig.FromUint64(uint64(-x))}
	}
	return SBig{mag: ubig.FromUint64(uint64(x))}
}

// FromUint64 builds a non-negative SBig from an unsigned 64-bit integer.
func FromUint64(x uint64) SBig {
	return SBig{mag: ubig.FromUint64(x)}
}

// IsZero reports whether s is zero.
func (s SBig) IsZero() bool {
	return s.mag.IsZero()
}

// Sign returns -1, 0, or +1 according to whether s is negative, zero, or
// positive.
func (s SBig) Sign() int {
	if s.mag.IsZero() {
		return 0
	}
	if s.neg {
		return -1
	}
	return 1
}

// Negative reports whether s is strictly negative.
func (s SBig) Negative() bool {
	return s.neg && !s.mag.IsZero()
}

// Abs returns the non-negative magnitude of s as a ubig.UBig.
func (s SBig) Abs() ubig.UBig {
	return s.mag
}

// Negate returns -s.
func (s SBig) Negate() SBig {
	if s.mag.IsZero() {
		return Zero
	}
	return SBig{neg: !s.neg, mag: s.mag}
}

// Compare returns -1, 0, or +1 according to whether s is less than,
// equal to, or greater than t.
func (s SBig) Compare(t SBig) int {
	switch {
	case s.Sign() != t.Sign():
		if s.Sign() < t.Sign() {
			return -1
		}
		return 1
	case s.Sign() == 0:
		return 0
	case s.Sign() > 0:
		return s.mag.Compare(t.mag)
	default:
		return t.mag.Compare(s.mag)
	}
}

// Equal reports whether s and t have the same value.
func (s SBig) Equal(t SBig) bool {
	return s.Compare(t) == 0
}
