// Package brat implements BRat, an exact binary rational: an SBig
// numerator over a UBig denominator. Reduction to lowest terms is lazy —
// arithmetic never pays for a GCD it doesn't need — but Reduce is
// available whenever a canonical form is required (equality checks,
// text output, or just keeping the terms small across a long chain of
// operations).
package brat

import (
	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/sbig"
	"github.com/sarchlab/exactsum/ubig"
)

// BRat is an exact binary rational num/den. The zero value is 0/1, a
// valid representation of zero; every BRat returned by this package
// has a nonzero denominator.
type BRat struct {
	num sbig.SBig
	den ubig.UBig
}

// Zero is the additive identity, 0/1.
var Zero = BRat{num: sbig.Zero, den: ubig.One}

// One is the multiplicative identity, 1/1.
var One = BRat{num: sbig.One, den: ubig.One}

// New builds num/den. den must be nonzero.
func New(num sbig.SBig, den ubig.UBig) (BRat, error) {
	if den.IsZero() {
		return BRat{}, errs.Domain("brat.New", "zero denominator")
	}
	if num.IsZero() {
		return BRat{num: sbig.Zero, den: ubig.One}, nil
	}
	return BRat{num: num, den: den}, nil
}

// FromSBig builds the rational s/1.
func FromSBig(s sbig.SBig) BRat {
	return BRat{num: s, den: ubig.One}
}

// FromInt64 builds the rational x/1.
func FromInt64(x int64) BRat {
	return FromSBig(sbig.FromInt64(x))
}

// Numerator returns r's numerator in its current (possibly unreduced)
// form.
func (r BRat) Numerator() sbig.SBig {
	return r.num
}

// Denominator returns r's denominator in its current (possibly
// unreduced) form.
func (r BRat) Denominator() ubig.UBig {
	if r.den.IsZero() {
		return ubig.One
	}
	return r.den
}

// IsZero reports whether r is zero.
func (r BRat) IsZero() bool {
	return r.num.IsZero()
}

// Sign returns -1, 0, or +1 according to r's numerator sign (the
// denominator is always positive).
func (r BRat) Sign() int {
	return r.num.Sign()
}

// Reduce divides r's numerator and denominator by their GCD, producing
// an equal value in lowest terms. It is safe (a no-op) on an already
// reduced value or on zero.
func (r BRat) Reduce() (BRat, error) {
	if r.IsZero() {
		return Zero, nil
	}
	den := r.Denominator()
	g := r.num.Abs().GCD(den)
	if g.IsZero() || g.Equal(ubig.One) {
		return BRat{num: r.num, den: den}, nil
	}
	numMag, _, err := r.num.Abs().DivMod(g)
	if err != nil {
		return BRat{}, err
	}
	denReduced, _, err := den.DivMod(g)
	if err != nil {
		return BRat{}, err
	}
	return BRat{num: sbig.FromUBig(numMag, r.num.Negative()), den: denReduced}, nil
}

// Negate returns -r.
func (r BRat) Negate() BRat {
	return BRat{num: r.num.Negate(), den: r.Denominator()}
}

// Abs returns |r|.
func (r BRat) Abs() BRat {
	if r.num.Sign() < 0 {
		return r.Negate()
	}
	return r
}

// Reciprocal returns 1/r. r must be nonzero.
func (r BRat) Reciprocal() (BRat, error) {
	if r.IsZero() {
		return BRat{}, errs.Domain("brat.Reciprocal", "reciprocal of zero")
	}
	den := r.Denominator()
	return BRat{
		num: sbig.FromUBig(den, r.num.Negative()),
		den: r.num.Abs(),
	}, nil
}
