package ubig

import "github.com/sarchlab/exactsum/word"

// Multiply returns u * v using the default Config's regime thresholds.
func (u UBig) Multiply(v UBig) (UBig, error) {
	return u.MultiplyConfig(v, defaultConfig)
}

// MultiplyConfig returns u * v, picking schoolbook, Karatsuba, or
// Toom-Cook 3-way multiplication per cfg's thresholds.
func (u UBig) MultiplyConfig(v UBig, cfg Config) (UBig, error) {
	if u.IsZero() || v.IsZero() {
		return Zero, nil
	}
	return FromWords(mulDispatch(u.w, v.w, cfg))
}

// MultiplyUint64 returns u * x.
func (u UBig) MultiplyUint64(x uint64) (UBig, error) {
	return u.Multiply(FromUint64(x))
}

// MultiplyUint64Shifted returns u * (x << upShift).
func (u UBig) MultiplyUint64Shifted(x uint64, upShift int) (UBig, error) {
	shifted, err := FromUint64Shifted(x, upShift)
	if err != nil {
		return UBig{}, err
	}
	return u.Multiply(shifted)
}

// mulDispatch picks the multiplication regime by the larger operand's
// word count and recurses into itself for sub-products, so a Toom-Cook
// split that lands back below ToomCookThreshold continues in Karatsuba
// (or schoolbook) automatically.
func mulDispatch(x, y []word.Word, cfg Config) []word.Word {
	n := maxInt(len(x), len(y))
	switch {
	case n >= cfg.ToomCookThreshold:
		return toomCookMul(x, y, cfg)
	case n >= cfg.KaratsubaThreshold:
		return karatsubaMul(x, y, cfg)
	default:
		return schoolbookMul(x, y)
	}
}

// schoolbookMul computes the full O(len(x)*len(y)) product.
func schoolbookMul(x, y []word.Word) []word.Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]word.Word, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		carry := word.MulAccumulate(z[i:i+len(x)], x, yi)
		word.AddWord(z, i+len(x), carry)
	}
	return trim(z)
}

// karatsubaMul splits x and y at half the larger operand's length and
// combines three half-size products: z0 = x0*y0, z2 = x1*y1, and
// z1 = (x0+x1)(y0+y1) - z0 - z2, then assembles
// z0 + z1*B^half + z2*B^(2*half).
func karatsubaMul(x, y []word.Word, cfg Config) []word.Word {
	n := maxInt(len(x), len(y))
	if n < 2 || n < cfg.KaratsubaThreshold {
		return schoolbookMul(x, y)
	}
	half := (n + 1) / 2
	x0, x1 := splitAt(x, half)
	y0, y1 := splitAt(y, half)

	z0 := mulDispatch(x0, y0, cfg)
	z2 := mulDispatch(x1, y1, cfg)

	xs := addMag(x0, x1)
	ys := addMag(y0, y1)
	z1 := mulDispatch(xs, ys, cfg)
	z1 = subMag(z1, z0)
	z1 = subMag(z1, z2)

	result := make([]word.Word, len(x)+len(y)+2)
	copy(result, z0)
	addAt(result, z1, half)
	addAt(result, z2, 2*half)
	return trim(result)
}

// splitAt splits x into (low half-words, high remainder) at word offset
// half.
func splitAt(x []word.Word, half int) (lo, hi []word.Word) {
	if len(x) > half {
		return x[:half], x[half:]
	}
	return x, nil
}

func addMag(a, b []word.Word) []word.Word {
	n := maxInt(len(a), len(b)) + 1
	z := make([]word.Word, n)
	carry := word.AddWords(z[:n-1], a, b)
	z[n-1] = carry
	return trim(z)
}

// subMag returns a - b, assuming a >= b as unsigned magnitudes.
func subMag(a, b []word.Word) []word.Word {
	z := make([]word.Word, len(a))
	word.SubWords(z, a, b)
	return trim(z)
}

func trim(w []word.Word) []word.Word {
	return w[:word.HiInt(w)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// addAt adds src into dst starting at word index offset, propagating any
// carry through the remainder of dst. dst must have enough headroom for
// the true mathematical sum (guaranteed by the caller's size bound).
func addAt(dst, src []word.Word, offset int) {
	if len(src) == 0 {
		return
	}
	end := offset + len(src)
	carry := word.AddWords(dst[offset:end], dst[offset:end], src)
	if carry != 0 {
		word.AddWord(dst, end, carry)
	}
}

// ---- Toom-Cook 3-way multiplication ----
//
// Operands are split into three limbs each (x = x0 + x1*B^k + x2*B^2k),
// evaluated at 0, 1, -1, 2, and infinity, multiplied pointwise (recursing
// back into mulDispatch, so sub-products may themselves use Karatsuba or
// schoolbook), and interpolated back to the coefficients of the degree-4
// product polynomial. The evaluation/interpolation arithmetic is signed,
// so it runs over the small unexported signedNat helper rather than the
// overflow-checked, always-nonnegative UBig type; only the final
// assembled result is handed back to UBig (via FromWords in the public
// Multiply/Square entry points), where it only needs a single bounds
// check.
type signedNat struct {
	neg bool
	w   []word.Word
}

func snFromUnsigned(w []word.Word) signedNat {
	return signedNat{w: trim(w)}
}

func snNeg(a signedNat) signedNat {
	if len(a.w) == 0 {
		return a
	}
	return signedNat{neg: !a.neg, w: a.w}
}

func snAdd(a, b signedNat) signedNat {
	if a.neg == b.neg {
		w := addMag(a.w, b.w)
		return signedNat{neg: a.neg && len(w) > 0, w: w}
	}
	c := word.Compare(a.w, b.w)
	if c == 0 {
		return signedNat{}
	}
	if c > 0 {
		return signedNat{neg: a.neg, w: subMag(a.w, b.w)}
	}
	return signedNat{neg: b.neg, w: subMag(b.w, a.w)}
}

func snSub(a, b signedNat) signedNat {
	return snAdd(a, snNeg(b))
}

func snMul(a, b signedNat, cfg Config) signedNat {
	w := trim(mulDispatch(a.w, b.w, cfg))
	neg := a.neg != b.neg && len(w) > 0
	return signedNat{neg: neg, w: w}
}

// snScaleSmall returns a * m for a small positive word constant m (this
// file only ever calls it with 2, 4, or 16).
func snScaleSmall(a signedNat, m word.Word) signedNat {
	if len(a.w) == 0 {
		return a
	}
	z := make([]word.Word, len(a.w)+1)
	carry := word.MulAccumulate(z[:len(a.w)], a.w, m)
	z[len(a.w)] = carry
	return signedNat{neg: a.neg, w: trim(z)}
}

// snDivSmall returns a / d for a small positive word divisor d (this file
// only ever calls it with 2 or 3), assuming exact divisibility: every
// call site divides a value the Toom-Cook interpolation identities
// guarantee is a multiple of d.
func snDivSmall(a signedNat, d word.Word) signedNat {
	if len(a.w) == 0 {
		return a
	}
	q := make([]word.Word, len(a.w))
	var rem uint64
	for i := len(a.w) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(a.w[i])
		q[i] = word.Word(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return signedNat{neg: a.neg, w: trim(q)}
}

func snShiftWords(a signedNat, n int) signedNat {
	if len(a.w) == 0 || n == 0 {
		return a
	}
	w := make([]word.Word, len(a.w)+n)
	copy(w[n:], a.w)
	return signedNat{neg: a.neg, w: w}
}

// split3 splits x into three limbs of at most k words each.
func split3(x []word.Word, k int) (x0, x1, x2 []word.Word) {
	n := len(x)
	if n <= k {
		return x, nil, nil
	}
	x0 = x[:k]
	hi := minInt(2*k, n)
	x1 = x[k:hi]
	if n > 2*k {
		x2 = x[2*k:]
	}
	return
}

func toomCookMul(x, y []word.Word, cfg Config) []word.Word {
	n := maxInt(len(x), len(y))
	k := (n + 2) / 3
	if n < 2 {
		return schoolbookMul(x, y)
	}
	x0, x1, x2 := split3(x, k)
	y0, y1, y2 := split3(y, k)

	sx0, sx1, sx2 := snFromUnsigned(x0), snFromUnsigned(x1), snFromUnsigned(x2)
	sy0, sy1, sy2 := snFromUnsigned(y0), snFromUnsigned(y1), snFromUnsigned(y2)

	p0, q0 := sx0, sy0
	pInf, qInf := sx2, sy2
	p1 := snAdd(snAdd(sx0, sx1), sx2)
	q1 := snAdd(snAdd(sy0, sy1), sy2)
	pm1 := snAdd(snSub(sx0, sx1), sx2)
	qm1 := snAdd(snSub(sy0, sy1), sy2)
	p2 := snAdd(snAdd(sx0, snScaleSmall(sx1, 2)), snScaleSmall(sx2, 4))
	q2 := snAdd(snAdd(sy0, snScaleSmall(sy1, 2)), snScaleSmall(sy2, 4))

	r0 := snMul(p0, q0, cfg)
	r1 := snMul(p1, q1, cfg)
	rm1 := snMul(pm1, qm1, cfg)
	r2 := snMul(p2, q2, cfg)
	rinf := snMul(pInf, qInf, cfg)

	c0 := r0
	c4 := rinf
	// A = (r1 - rm1)/2 = c1 + c3
	a := snDivSmall(snSub(r1, rm1), 2)
	// c2 = (r1 + rm1)/2 - c0 - c4
	c2 := snSub(snSub(snDivSmall(snAdd(r1, rm1), 2), c0), c4)
	// b = (r2 - c0 - 16*c4)/2 = c1 + 2*c2 + 4*c3
	b := snDivSmall(snSub(snSub(r2, c0), snScaleSmall(c4, 16)), 2)
	// c3 = (b - 2*c2 - A)/3
	c3 := snDivSmall(snSub(snSub(b, snScaleSmall(c2, 2)), a), 3)
	c1 := snSub(a, c3)

	total := snAdd(c0, snShiftWords(c1, k))
	total = snAdd(total, snShiftWords(c2, 2*k))
	total = snAdd(total, snShiftWords(c3, 3*k))
	total = snAdd(total, snShiftWords(c4, 4*k))
	return total.w
}
