package accum

import "math"

// Compensated is an inexact accumulator using Neumaier's improved
// Kahan summation: a single running compensation term that corrects
// for the low-order bits lost on each add. It is far cheaper than
// Exact or RationalExact and accurate enough for most sums, but it is
// not exact — IsExact always reports false — and it has no overflow
// detection of its own, since it operates entirely in binary64 and
// simply inherits IEEE-754's overflow-to-infinity behavior.
//
// Compensated exists alongside the exact backends for the case where a
// caller wants the usual fast compounding-error tradeoff rather than
// the kernel's guarantee, without switching to a different API.
type Compensated struct {
	sum  float64
	comp float64
}

// NewCompensated returns a freshly cleared Compensated accumulator.
func NewCompensated() *Compensated {
	return &Compensated{}
}

// Clear resets the accumulator to +0.
func (a *Compensated) Clear() {
	a.sum = 0
	a.comp = 0
}

func (a *Compensated) addOne(x float64) {
	t := a.sum + x
	if math.Abs(a.sum) >= math.Abs(x) {
		a.comp += (a.sum - t) + x
	} else {
		a.comp += (x - t) + a.sum
	}
	a.sum = t
}

// Add adds x to the running total.
func (a *Compensated) Add(x float64) error {
	a.addOne(x)
	return nil
}

// AddAbs adds |x| to the running total.
func (a *Compensated) AddAbs(x float64) error {
	a.addOne(math.Abs(x))
	return nil
}

// Add2 adds x*x to the running total.
func (a *Compensated) Add2(x float64) error {
	a.addOne(x * x)
	return nil
}

// AddProduct adds x*y to the running total.
func (a *Compensated) AddProduct(x, y float64) error {
	a.addOne(x * y)
	return nil
}

// AddL1 adds |x - y| to the running total.
func (a *Compensated) AddL1(x, y float64) error {
	a.addOne(math.Abs(x - y))
	return nil
}

// AddL2 adds (x - y)^2 to the running total.
func (a *Compensated) AddL2(x, y float64) error {
	d := x - y
	a.addOne(d * d)
	return nil
}

// DoubleValue returns the compensated sum.
func (a *Compensated) DoubleValue() (float64, error) {
	return a.sum + a.comp, nil
}

// IsExact always reports false: Compensated trades exactness for speed.
func (a *Compensated) IsExact() bool {
	return false
}

// NoOverflow reports whether the running total is still finite.
func (a *Compensated) NoOverflow() bool {
	return !math.IsInf(a.sum, 0) && !math.IsNaN(a.sum)
}
