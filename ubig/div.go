package ubig

import (
	"math/bits"

	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/word"
)

// DivMod returns (u/v, u%v) using the default Config's regime thresholds.
// v must be nonzero.
func (u UBig) DivMod(v UBig) (UBig, UBig, error) {
	return u.DivModConfig(v, defaultConfig)
}

// DivModConfig returns (u/v, u%v), picking Knuth's Algorithm D or a
// recursive Burnikel-Ziegler-style block division per cfg's threshold.
func (u UBig) DivModConfig(v UBig, cfg Config) (UBig, UBig, error) {
	if v.IsZero() {
		return UBig{}, UBig{}, errs.Domain("ubig.DivMod", "division by zero")
	}
	if u.Compare(v) < 0 {
		return Zero, u, nil
	}
	qw, rw := divModWords(u.w, v.w, cfg)
	q, err := FromWords(qw)
	if err != nil {
		return UBig{}, UBig{}, err
	}
	r, err := FromWords(rw)
	if err != nil {
		return UBig{}, UBig{}, err
	}
	return q, r, nil
}

// Div returns u / v.
func (u UBig) Div(v UBig) (UBig, error) {
	q, _, err := u.DivMod(v)
	return q, err
}

// Mod returns u % v.
func (u UBig) Mod(v UBig) (UBig, error) {
	_, r, err := u.DivMod(v)
	return r, err
}

// divModWords dispatches between Knuth D and the recursive block division
// by divisor length, assuming word.Compare(u, v) >= 0.
func divModWords(u, v []word.Word, cfg Config) ([]word.Word, []word.Word) {
	n := word.HiInt(v)
	if n >= 2 && n >= cfg.BurnikelZieglerThreshold {
		return burnikelZieglerDivide(u, v[:n], cfg)
	}
	return knuthDivide(u, v[:n])
}

// knuthDivide implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1): it
// normalizes the divisor so its top word has its high bit set, then
// produces one quotient word at a time from a two-word estimate refined
// against the divisor's next-highest word, correcting by at most one
// unit when the estimate overshoots.
func knuthDivide(uIn, v []word.Word) ([]word.Word, []word.Word) {
	n := len(v)
	uTrim := uIn[:word.HiInt(uIn)]
	if len(uTrim) < n {
		return nil, append([]word.Word{}, uTrim...)
	}
	if n == 1 {
		return divModSingle(uTrim, v[0])
	}

	m := len(uTrim) - n
	s := uint(bits.LeadingZeros32(uint32(v[n-1])))

	vn := make([]word.Word, n)
	word.ShiftLeft(vn, v, s)

	un := make([]word.Word, len(uTrim)+1)
	carry := word.ShiftLeft(un[:len(uTrim)], uTrim, s)
	un[len(uTrim)] = carry

	q := make([]word.Word, m+1)
	for j := m; j >= 0; j-- {
		numHi := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		vtop := uint64(vn[n-1])
		qhat := numHi / vtop
		rhat := numHi % vtop
		for qhat > 0xFFFFFFFF || qhat*uint64(vn[n-2]) > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += vtop
			if rhat > 0xFFFFFFFF {
				break
			}
		}

		borrow := mulSub(un[j:j+n+1], vn, word.Word(qhat))
		if borrow != 0 {
			qhat--
			addBack(un[j:j+n+1], vn)
		}
		q[j] = word.Word(qhat)
	}

	r := make([]word.Word, n)
	word.ShiftRight(r, un[:n], s, 0)
	return trim(q), trim(r)
}

// divModSingle divides the multi-word dividend u by the single word d.
func divModSingle(u []word.Word, d word.Word) ([]word.Word, []word.Word) {
	n := len(u)
	q := make([]word.Word, n)
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(u[i])
		q[i] = word.Word(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trim(q), trim([]word.Word{word.Word(rem)})
}

// mulSub computes dest -= qhat*v over dest's n+1 words (v has n words) and
// returns the outgoing borrow.
func mulSub(dest, v []word.Word, qhat word.Word) word.Word {
	n := len(v)
	var mulCarry uint64
	var borrow uint64
	for i := 0; i < n; i++ {
		hi, lo := word.Mul64(v[i], qhat)
		prod := uint64(lo) + mulCarry
		mulCarry = uint64(hi) + (prod >> 32)
		prod &= 0xFFFFFFFF
		diff := uint64(dest[i]) - prod - borrow
		dest[i] = word.Word(diff & 0xFFFFFFFF)
		borrow = (diff >> 32) & 1
	}
	diff := uint64(dest[n]) - mulCarry - borrow
	dest[n] = word.Word(diff & 0xFFFFFFFF)
	borrow = (diff >> 32) & 1
	return word.Word(borrow)
}

// addBack adds v back into dest[:n] and folds the resulting carry into
// dest[n], undoing a one-unit qhat overshoot in knuthDivide.
func addBack(dest, v []word.Word) {
	n := len(v)
	carry := word.AddWords(dest[:n], dest[:n], v)
	word.AddWord(dest, n, carry)
}

// ---- recursive block division for large divisors ----
//
// burnikelZieglerDivide generalizes knuthDivide's one-word "digit" to a
// k-word block (k = half the divisor's length): it brings down one
// k-word block of the dividend at a time, estimates that block's
// quotient by recursively dividing the remainder's leading ~2k words by
// the divisor's leading k words (a strictly smaller division, so the
// recursion terminates), and then corrects the estimate by exact
// multiply/compare against the full divisor until the remainder is back
// in [0, v). The correction loop makes the result exact regardless of
// how rough the block estimate is.
func burnikelZieglerDivide(uIn, v []word.Word, cfg Config) ([]word.Word, []word.Word) {
	n := len(v)
	if n < 2 || n < cfg.BurnikelZieglerThreshold {
		return knuthDivide(uIn, v)
	}
	k := (n + 1) / 2
	total := len(uIn)
	numBlocks := (total + k - 1) / k
	if numBlocks == 0 {
		numBlocks = 1
	}
	vTop := vTopWords(v, k)

	// pool is local to this call: it is reused across this loop's
	// iterations but never shared across goroutines, so two concurrent
	// DivMod calls on immutable UBig values never touch the same
	// directory state.
	pool := newScratchPool(8, 4, 64)

	qBlocks := make([][]word.Word, numBlocks)
	var remainder []word.Word
	for bi := numBlocks - 1; bi >= 0; bi-- {
		lo := bi * k
		hi := minInt(lo+k, total)
		var block []word.Word
		if lo < total {
			block = uIn[lo:hi]
		}
		remainder = bringDownBlock(pool, remainder, block, k)

		if word.Compare(remainder, v) < 0 {
			qBlocks[bi] = nil
			continue
		}
		est := estimateQuotientBlock(remainder, vTop, k, cfg)
		qk, newRem := correctQuotientBlock(remainder, v, est, cfg)
		qBlocks[bi] = qk
		remainder = newRem
	}

	q := make([]word.Word, numBlocks*k)
	for bi := 0; bi < numBlocks; bi++ {
		copy(q[bi*k:], qBlocks[bi])
	}
	return trim(q), trim(remainder)
}

// bringDownBlock returns remainder*B^blockWidth + block, where blockWidth
// is k except possibly for a short leading block. The output buffer
// comes from pool, which is private to the caller's burnikelZieglerDivide
// invocation and reused across its loop iterations; the buffer is
// returned to pool immediately after its contents are copied out, since
// the copy (not the pooled buffer itself) is what the caller keeps.
func bringDownBlock(pool *scratchPool, remainder, block []word.Word, k int) []word.Word {
	width := len(block)
	if width == 0 {
		width = k
	}
	out := pool.get(len(remainder) + width)
	for i := range out {
		out[i] = 0
	}
	copy(out[width:], remainder)
	copy(out, block)
	result := trim(out)
	pool.put(out)
	return append([]word.Word{}, result...)
}

func vTopWords(v []word.Word, k int) []word.Word {
	if len(v) <= k {
		return v
	}
	return trim(v[len(v)-k:])
}

func estimateQuotientBlock(remainder, vTop []word.Word, k int, cfg Config) []word.Word {
	hiLen := minInt(len(remainder), len(vTop)+k)
	hiPart := remainder[len(remainder)-hiLen:]
	if word.Compare(hiPart, vTop) < 0 {
		return nil
	}
	q, _ := divModWords(hiPart, vTop, cfg)
	return q
}

func correctQuotientBlock(remainder, v, qEst []word.Word, cfg Config) ([]word.Word, []word.Word) {
	q := trim(append([]word.Word{}, qEst...))
	for {
		prod := mulDispatch(q, v, cfg)
		if word.Compare(prod, remainder) <= 0 {
			rem := subMag(remainder, prod)
			for word.Compare(rem, v) >= 0 {
				rem = subMag(rem, v)
				q = trim(incrementWords(q))
			}
			return q, rem
		}
		q = trim(decrementWords(q))
	}
}

func incrementWords(q []word.Word) []word.Word {
	z := make([]word.Word, len(q)+1)
	copy(z, q)
	word.AddWord(z, 0, 1)
	return z
}

func decrementWords(q []word.Word) []word.Word {
	z := make([]word.Word, len(q))
	copy(z, q)
	word.SubWord(z, 0, 1)
	return z
}
