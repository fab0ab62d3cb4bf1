package ubig

import "github.com/sarchlab/exactsum/word"

// Square returns u * u using the default Config's regime thresholds.
// Schoolbook squaring exploits x^2 = diagonal + 2*(upper triangle),
// halving the number of word-by-word products relative to a general
// multiply of x by itself.
func (u UBig) Square() (UBig, error) {
	return u.SquareConfig(defaultConfig)
}

// SquareConfig returns u * u, picking schoolbook, Karatsuba, or Toom-Cook
// 3-way squaring per cfg's squaring thresholds.
func (u UBig) SquareConfig(cfg Config) (UBig, error) {
	if u.IsZero() {
		return Zero, nil
	}
	n := len(u.w)
	var z []word.Word
	switch {
	case n >= cfg.SquareToomThreshold:
		z = toomCookMul(u.w, u.w, cfg)
	case n >= cfg.SquareKaratsubaThreshold:
		z = karatsubaMul(u.w, u.w, cfg)
	default:
		z = schoolbookSquare(u.w)
	}
	return FromWords(z)
}

// schoolbookSquare computes x^2 using the doubled-off-diagonal identity:
// it accumulates the upper-triangle cross terms x[i]*x[j] (i<j) once,
// doubles the running sum with a single left shift, then adds the
// diagonal terms x[i]^2.
func schoolbookSquare(x []word.Word) []word.Word {
	n := len(x)
	z := make([]word.Word, 2*n)
	if n == 0 {
		return z
	}

	for i := 0; i < n-1; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		rest := x[i+1:]
		carry := word.MulAccumulate(z[2*i+1:2*i+1+len(rest)], rest, xi)
		word.AddWord(z, 2*i+1+len(rest), carry)
	}

	// Double the accumulated upper-triangle sum in place. The true
	// square value fits in 2n words, so this shift never carries out of
	// z (the diagonal terms added next only grow the value further).
	word.ShiftLeft(z, z, 1)

	for i := 0; i < n; i++ {
		hi, lo := word.Mul64(x[i], x[i])
		word.AddWord(z, 2*i, lo)
		word.AddWord(z, 2*i+1, hi)
	}

	return trim(z)
}
