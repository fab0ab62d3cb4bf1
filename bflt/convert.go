package bflt

import (
	"math"

	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/sbig"
	"github.com/sarchlab/exactsum/ubig"
)

// IEEE-754 binary64 layout constants (see package round for the inverse
// direction: rounding an exact BFlt back down to binary64).
const (
	mantissaBits  = 52
	exponentBits  = 11
	exponentBias  = 1023
	subnormalExp  = -exponentBias - mantissaBits + 1 // -1074
)

// FromFloat64 decomposes a finite float64 into its exact value as a
// BFlt: x = sig * 2^exp with sig the full integer significand (implicit
// leading 1 included for normal values) and exp the scale of sig's
// lowest bit (the unbiased binary exponent minus 52 for normal values,
// -1074 for subnormals). The decomposition is exact; it fails with errs.ErrDomain for
// NaN or an infinity, which have no finite exact value.
func FromFloat64(x float64) (BFlt, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return BFlt{}, errs.Domain("bflt.FromFloat64", "NaN and infinities have no exact value")
	}
	if x == 0 {
		return Zero, nil
	}

	bits := math.Float64bits(x)
	neg := bits>>63 != 0
	rawExp := int((bits >> mantissaBits) & (1<<exponentBits - 1))
	mantissa := bits & (1<<mantissaBits - 1)

	var sigBits uint64
	var exp int
	if rawExp == 0 {
		// Subnormal: value = mantissa * 2^subnormalExp.
		sigBits = mantissa
		exp = subnormalExp
	} else {
		// Normal: value = (1<<52 | mantissa) * 2^(rawExp-bias-52).
		sigBits = mantissa | (1 << mantissaBits)
		exp = rawExp - exponentBias - mantissaBits
	}

	sig := sbig.FromUBig(ubig.FromUint64(sigBits), neg)
	return New(sig, exp), nil
}
