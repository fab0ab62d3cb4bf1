package brat

import (
	"github.com/sarchlab/exactsum/sbig"
)

// Add returns r + s, exactly, unreduced.
func (r BRat) Add(s BRat) (BRat, error) {
	if r.IsZero() {
		return s, nil
	}
	if s.IsZero() {
		return r, nil
	}
	rd, sd := r.Denominator(), s.Denominator()

	rNumScaled, err := r.num.Multiply(sbig.FromUBig(sd, false))
	if err != nil {
		return BRat{}, err
	}
	sNumScaled, err := s.num.Multiply(sbig.FromUBig(rd, false))
	if err != nil {
		return BRat{}, err
	}
	num, err := rNumScaled.Add(sNumScaled)
	if err != nil {
		return BRat{}, err
	}
	den, err := rd.Multiply(sd)
	if err != nil {
		return BRat{}, err
	}
	return New(num, den)
}

// Sub returns r - s, exactly, unreduced.
func (r BRat) Sub(s BRat) (BRat, error) {
	return r.Add(s.Negate())
}

// Multiply returns r * s, exactly, unreduced.
func (r BRat) Multiply(s BRat) (BRat, error) {
	if r.IsZero() || s.IsZero() {
		return Zero, nil
	}
	num, err := r.num.Multiply(s.num)
	if err != nil {
		return BRat{}, err
	}
	den, err := r.Denominator().Multiply(s.Denominator())
	if err != nil {
		return BRat{}, err
	}
	return New(num, den)
}

// Compare returns -1, 0, or +1 according to whether r is less than,
// equal to, or greater than s, by cross-multiplication (both
// denominators are positive, so the cross products preserve order).
func (r BRat) Compare(s BRat) (int, error) {
	rd, sd := r.Denominator(), s.Denominator()
	left, err := r.num.Multiply(sbig.FromUBig(sd, false))
	if err != nil {
		return 0, err
	}
	right, err := s.num.Multiply(sbig.FromUBig(rd, false))
	if err != nil {
		return 0, err
	}
	return left.Compare(right), nil
}

// Equal reports whether r and s have the same value.
func (r BRat) Equal(s BRat) (bool, error) {
	cmp, err := r.Compare(s)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}
