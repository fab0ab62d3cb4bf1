package accum

import (
	"math"

	"github.com/sarchlab/exactsum/bflt"
	"github.com/sarchlab/exactsum/brat"
	"github.com/sarchlab/exactsum/round"
	"github.com/sarchlab/exactsum/ubig"
)

// RationalExact is a BRat-backed Accumulator. It is the reference
// oracle the BFlt-backed Exact accumulator is checked against in this
// package's tests: every add is exact binary-rational arithmetic, which
// reaches the same correctly-rounded binary64 as Exact by a completely
// different code path (cross-multiplication instead of exponent
// alignment), so an agreement between the two is strong evidence both
// are right.
type RationalExact struct {
	total      brat.BRat
	zeroIsNeg  bool
	started    bool
	overflowed bool
}

// NewRationalExact returns a freshly cleared RationalExact accumulator.
func NewRationalExact() *RationalExact {
	return &RationalExact{}
}

// Clear resets the accumulator to +0.
func (a *RationalExact) Clear() {
	a.total = brat.Zero
	a.zeroIsNeg = false
	a.started = false
}

func (a *RationalExact) fromFloat(x float64) (brat.BRat, error) {
	f, err := bratFromFloat64(x)
	if err != nil {
		return brat.BRat{}, err
	}
	return f, nil
}

// addExact folds x into the running total; see Exact.addExact for why
// the first add of a cleared accumulator bypasses the phantom +0.
func (a *RationalExact) addExact(x brat.BRat, xSignNeg bool) error {
	if !a.started {
		a.started = true
		a.total = x
		a.zeroIsNeg = x.IsZero() && xSignNeg
		return nil
	}
	sum, err := a.total.Add(x)
	if err != nil {
		a.overflowed = true
		return err
	}
	a.zeroIsNeg = sum.IsZero() && a.total.IsZero() && a.zeroIsNeg && xSignNeg
	a.total = sum
	return nil
}

// Add adds x to the running total.
func (a *RationalExact) Add(x float64) error {
	f, err := a.fromFloat(x)
	if err != nil {
		return err
	}
	return a.addExact(f, math.Signbit(x))
}

// AddAbs adds |x| to the running total.
func (a *RationalExact) AddAbs(x float64) error {
	f, err := a.fromFloat(math.Abs(x))
	if err != nil {
		return err
	}
	return a.addExact(f, false)
}

// Add2 adds x*x to the running total, exactly.
func (a *RationalExact) Add2(x float64) error {
	fx, err := a.fromFloat(x)
	if err != nil {
		return err
	}
	sq, err := fx.Multiply(fx)
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(sq, false)
}

// AddProduct adds x*y to the running total, exactly.
func (a *RationalExact) AddProduct(x, y float64) error {
	fx, err := a.fromFloat(x)
	if err != nil {
		return err
	}
	fy, err := a.fromFloat(y)
	if err != nil {
		return err
	}
	product, err := fx.Multiply(fy)
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(product, math.Signbit(x) != math.Signbit(y))
}

// AddL1 adds |x - y| to the running total, exactly.
func (a *RationalExact) AddL1(x, y float64) error {
	fx, err := a.fromFloat(x)
	if err != nil {
		return err
	}
	fy, err := a.fromFloat(y)
	if err != nil {
		return err
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(diff.Abs(), false)
}

// AddL2 adds (x - y)^2 to the running total, exactly.
func (a *RationalExact) AddL2(x, y float64) error {
	fx, err := a.fromFloat(x)
	if err != nil {
		return err
	}
	fy, err := a.fromFloat(y)
	if err != nil {
		return err
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		a.overflowed = true
		return err
	}
	sq, err := diff.Multiply(diff)
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(sq, false)
}

// DoubleValue returns the running total rounded to the nearest
// binary64.
func (a *RationalExact) DoubleValue() (float64, error) {
	if a.total.IsZero() {
		return round.SignedZero(a.zeroIsNeg), nil
	}
	return round.FromBRat(a.total)
}

// IsExact always reports true unless an operation has overflowed.
func (a *RationalExact) IsExact() bool {
	return !a.overflowed
}

// NoOverflow reports whether every operation so far has stayed within
// the kernel's word budget.
func (a *RationalExact) NoOverflow() bool {
	return !a.overflowed
}

// bratFromFloat64 builds the exact rational value of a finite float64 by
// reusing bflt's IEEE-754 decomposition: a non-negative exponent is
// shifted into the numerator over a denominator of 1, and a negative
// exponent is folded into the denominator (it becomes a power-of-two
// denominator instead of a numerator shift, since ubig.UBig can't hold a
// negative shift).
func bratFromFloat64(x float64) (brat.BRat, error) {
	f, err := bflt.FromFloat64(x)
	if err != nil {
		return brat.BRat{}, err
	}
	if f.IsZero() {
		return brat.Zero, nil
	}
	sig, exp := f.Significand(), f.Exponent()
	if exp >= 0 {
		shifted, err := sig.ShiftUp(exp)
		if err != nil {
			return brat.BRat{}, err
		}
		return brat.New(shifted, ubig.One)
	}
	den, err := ubig.One.ShiftUp(-exp)
	if err != nil {
		return brat.BRat{}, err
	}
	return brat.New(sig, den)
}
