package bflt

import (
	"github.com/sarchlab/exactsum/sbig"
)

// alignedSigs returns f and g's significands shifted up so both share
// the smaller of the two exponents, along with that common exponent.
func alignedSigs(f, g BFlt) (sbig.SBig, sbig.SBig, int, error) {
	switch {
	case f.IsZero():
		return sbig.Zero, g.sig, g.exp, nil
	case g.IsZero():
		return f.sig, sbig.Zero, f.exp, nil
	case f.exp == g.exp:
		return f.sig, g.sig, f.exp, nil
	case f.exp < g.exp:
		shifted, err := g.sig.ShiftUp(g.exp - f.exp)
		if err != nil {
			return sbig.SBig{}, sbig.SBig{}, 0, err
		}
		return f.sig, shifted, f.exp, nil
	default:
		shifted, err := f.sig.ShiftUp(f.exp - g.exp)
		if err != nil {
			return sbig.SBig{}, sbig.SBig{}, 0, err
		}
		return shifted, g.sig, g.exp, nil
	}
}

// Add returns f + g, exactly.
func (f BFlt) Add(g BFlt) (BFlt, error) {
	fs, gs, exp, err := alignedSigs(f, g)
	if err != nil {
		return BFlt{}, err
	}
	sum, err := fs.Add(gs)
	if err != nil {
		return BFlt{}, err
	}
	return New(sum, exp), nil
}

// Sub returns f - g, exactly.
func (f BFlt) Sub(g BFlt) (BFlt, error) {
	return f.Add(g.Negate())
}

// Multiply returns f * g, exactly.
func (f BFlt) Multiply(g BFlt) (BFlt, error) {
	if f.IsZero() || g.IsZero() {
		return Zero, nil
	}
	sig, err := f.sig.Multiply(g.sig)
	if err != nil {
		return BFlt{}, err
	}
	return New(sig, f.exp+g.exp), nil
}

// Square returns f * f, exactly.
func (f BFlt) Square() (BFlt, error) {
	if f.IsZero() {
		return Zero, nil
	}
	sig, err := f.sig.Square()
	if err != nil {
		return BFlt{}, err
	}
	return New(sig, 2*f.exp), nil
}

// Compare returns -1, 0, or +1 according to whether f is less than,
// equal to, or greater than g.
func (f BFlt) Compare(g BFlt) (int, error) {
	fs, gs, _, err := alignedSigs(f, g)
	if err != nil {
		return 0, err
	}
	return fs.Compare(gs), nil
}
