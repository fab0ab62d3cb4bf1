package accum

import (
	"math"

	"github.com/sarchlab/exactsum/bflt"
	"github.com/sarchlab/exactsum/round"
)

// Exact is a BFlt-backed Accumulator: every add is carried out on an
// arbitrary-precision binary float, so the running total never loses a
// bit until DoubleValue converts it to binary64 at the very end.
type Exact struct {
	total      bflt.BFlt
	zeroIsNeg  bool
	started    bool
	overflowed bool
}

// NewExact returns a freshly cleared Exact accumulator.
func NewExact() *Exact {
	return &Exact{}
}

// Clear resets the accumulator to +0.
func (a *Exact) Clear() {
	a.total = bflt.Zero
	a.zeroIsNeg = false
	a.started = false
}

// addExact folds x into the running total. The very first add of a
// cleared accumulator sets the total directly rather than adding x to
// a phantom +0, so that a lone -0 addend is preserved as -0: IEEE-754
// defines +0 + -0 = +0, which would otherwise flip the sign of the very
// first element summed.
func (a *Exact) addExact(x bflt.BFlt, xSignNeg bool) error {
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
func (a *Exact) Add(x float64) error {
	f, err := bflt.FromFloat64(x)
	if err != nil {
		return err
	}
	return a.addExact(f, math.Signbit(x))
}

// AddAbs adds |x| to the running total.
func (a *Exact) AddAbs(x float64) error {
	f, err := bflt.FromFloat64(math.Abs(x))
	if err != nil {
		return err
	}
	return a.addExact(f, false)
}

// Add2 adds x*x to the running total, exactly: x*x is itself
// representable as a BFlt without rounding, so this never forms an
// intermediate double-rounded square the way Add(x*x) computed in
// float64 first would.
func (a *Exact) Add2(x float64) error {
	fx, err := bflt.FromFloat64(x)
	if err != nil {
		return err
	}
	sq, err := fx.Square()
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(sq, false)
}

// AddProduct adds x*y to the running total, exactly: the product is
// computed in full precision before joining the total, so a single
// AddProduct never rounds.
func (a *Exact) AddProduct(x, y float64) error {
	fx, err := bflt.FromFloat64(x)
	if err != nil {
		return err
	}
	fy, err := bflt.FromFloat64(y)
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
func (a *Exact) AddL1(x, y float64) error {
	fx, err := bflt.FromFloat64(x)
	if err != nil {
		return err
	}
	fy, err := bflt.FromFloat64(y)
	if err != nil {
		return err
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		a.overflowed = true
		return err
	}
	abs := diff.Abs()
	return a.addExact(abs, false)
}

// AddL2 adds (x - y)^2 to the running total, exactly.
func (a *Exact) AddL2(x, y float64) error {
	fx, err := bflt.FromFloat64(x)
	if err != nil {
		return err
	}
	fy, err := bflt.FromFloat64(y)
	if err != nil {
		return err
	}
	diff, err := fx.Sub(fy)
	if err != nil {
		a.overflowed = true
		return err
	}
	sq, err := diff.Square()
	if err != nil {
		a.overflowed = true
		return err
	}
	return a.addExact(sq, false)
}

// DoubleValue returns the running total rounded to the nearest
// binary64.
func (a *Exact) DoubleValue() (float64, error) {
	if a.total.IsZero() {
		return round.SignedZero(a.zeroIsNeg), nil
	}
	return round.FromBFlt(a.total)
}

// IsExact always reports true unless an operation has overflowed: every
// add in this backend is exact by construction.
func (a *Exact) IsExact() bool {
	return !a.overflowed
}

// NoOverflow reports whether every operation so far has stayed within
// the kernel's word budget.
func (a *Exact) NoOverflow() bool {
	return !a.overflowed
}
