// Package accum implements the single-writer accumulators that sit on
// top of the exact kernel (bflt.BFlt and brat.BRat): running totals for
// sum, sum-of-squares, dot product, and L1/L2 distance, each backed by
// exact arithmetic so the only rounding error in the whole computation
// is the single final conversion to binary64.
//
// An Accumulator is not safe for concurrent use: exactly one goroutine
// may call its methods, matching the immutable-value/mutable-owner
// split the rest of this module follows (see package ubig's doc
// comment for the same rule at the integer level).
package accum

// Accumulator is a mutable running total over float64 inputs. Every
// concrete accumulator in this package (Exact, RationalExact,
// Compensated) implements it.
type Accumulator interface {
	// Clear resets the accumulator to +0.
	Clear()

	// Add adds x to the running total.
	Add(x float64) error

	// AddAbs adds |x| to the running total.
	AddAbs(x float64) error

	// Add2 adds x*x to the running total. x*x is itself exactly
	// representable, so this is a dedicated sum-of-squares reduction
	// rather than AddProduct(x, x) spelled differently.
	Add2(x float64) error

	// AddProduct adds x*y to the running total.
	AddProduct(x, y float64) error

	// AddL1 adds |x - y| to the running total.
	AddL1(x, y float64) error

	// AddL2 adds (x - y)^2 to the running total.
	AddL2(x, y float64) error

	// DoubleValue returns the running total rounded to the nearest
	// binary64 (round-half-to-even).
	DoubleValue() (float64, error)

	// IsExact reports whether every operation performed so far has been
	// carried out without any rounding error before the final
	// DoubleValue conversion.
	IsExact() bool

	// NoOverflow reports whether every operation performed so far has
	// stayed within the kernel's word budget.
	NoOverflow() bool
}

// AddAll adds every element of xs to acc, stopping at the first error.
func AddAll(acc Accumulator, xs []float64) error {
	for _, x := range xs {
		if err := acc.Add(x); err != nil {
			return err
		}
	}
	return nil
}

// AddAllAbs adds the absolute value of every element of xs to acc,
// stopping at the first error.
func AddAllAbs(acc Accumulator, xs []float64) error {
	for _, x := range xs {
		if err := acc.AddAbs(x); err != nil {
			return err
		}
	}
	return nil
}

// AddProducts adds xs[i]*ys[i] to acc for every i, stopping at the
// first error. xs and ys must have the same length.
func AddProducts(acc Accumulator, xs, ys []float64) error {
	n := minLen(xs, ys)
	for i := 0; i < n; i++ {
		if err := acc.AddProduct(xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}

// Add2All adds xs[i]*xs[i] to acc for every i, stopping at the first
// error. This is the dedicated sum-of-squares reduction: it never forms
// an intermediate rounded product, so a squared magnitude that would
// overflow a float64 only does so at the final DoubleValue conversion.
func Add2All(acc Accumulator, xs []float64) error {
	for _, x := range xs {
		if err := acc.Add2(x); err != nil {
			return err
		}
	}
	return nil
}

// AddL1Distance adds |xs[i] - ys[i]| to acc for every i, stopping at
// the first error.
func AddL1Distance(acc Accumulator, xs, ys []float64) error {
	n := minLen(xs, ys)
	for i := 0; i < n; i++ {
		if err := acc.AddL1(xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddL2Distance adds (xs[i] - ys[i])^2 to acc for every i, stopping at
// the first error. The caller takes the square root of the result (not
// this package's concern: the kernel has no exact square root) to
// recover the Euclidean distance.
func AddL2Distance(acc Accumulator, xs, ys []float64) error {
	n := minLen(xs, ys)
	for i := 0; i < n; i++ {
		if err := acc.AddL2(xs[i], ys[i]); err != nil {
			return err
		}
	}
	return nil
}

func minLen(xs, ys []float64) int {
	if len(xs) < len(ys) {
		return len(xs)
	}
	return len(ys)
}
