package ubig

import (
	"strings"

	"github.com/sarchlab/exactsum/errs"
	"github.com/sarchlab/exactsum/word"
)

// Uint64 returns u as a uint64, failing with errs.ErrDomain if u does not
// fit.
func (u UBig) Uint64() (uint64, error) {
	if len(u.w) > 2 {
		return 0, errs.Domain("ubig.Uint64", "value does not fit in 64 bits")
	}
	return u.lowUint64(), nil
}

// Uint32 returns u as a uint32, failing with errs.ErrDomain if u does not
// fit.
func (u UBig) Uint32() (uint32, error) {
	if len(u.w) > 1 {
		return 0, errs.Domain("ubig.Uint32", "value does not fit in 32 bits")
	}
	return uint32(u.lowWord()), nil
}

// Bytes returns u as a big-endian byte sequence with no leading zero
// byte (the empty slice for zero).
func (u UBig) Bytes() []byte {
	if u.IsZero() {
		return nil
	}
	n := len(u.w)
	buf := make([]byte, n*4)
	for i, w := range u.w {
		off := (n - 1 - i) * 4
		buf[off] = byte(w >> 24)
		buf[off+1] = byte(w >> 16)
		buf[off+2] = byte(w >> 8)
		buf[off+3] = byte(w)
	}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// FromBytes builds a UBig from a big-endian byte sequence (no sign bit;
// the whole sequence is the magnitude).
func FromBytes(b []byte) (UBig, error) {
	n := len(b)
	nw := (n + 3) / 4
	w := make([]word.Word, nw)
	for i := 0; i < n; i++ {
		byteIdxFromEnd := n - 1 - i
		wi := byteIdxFromEnd / 4
		shift := uint((byteIdxFromEnd % 4) * 8)
		w[wi] |= word.Word(b[i]) << shift
	}
	return FromWords(w)
}

// Text returns u's value formatted in the given base (10 or 16).
func (u UBig) Text(base int) string {
	switch base {
	case 16:
		return u.hexText()
	case 10:
		return u.decimalText()
	default:
		panic("ubig: unsupported base " + itoa(base))
	}
}

func (u UBig) hexText() string {
	if u.IsZero() {
		return "0"
	}
	n := len(u.w)
	var sb strings.Builder
	sb.WriteString(hexWord(u.w[n-1], false))
	for i := n - 2; i >= 0; i-- {
		sb.WriteString(hexWord(u.w[i], true))
	}
	return sb.String()
}

const hexDigits = "0123456789abcdef"

func hexWord(w word.Word, pad bool) string {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[w&0xF]
		w >>= 4
	}
	s := string(buf[:])
	if pad {
		return s
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func (u UBig) decimalText() string {
	if u.IsZero() {
		return "0"
	}
	ten := FromUint64(1000000000)
	var chunks []uint32
	cur := u
	for !cur.IsZero() {
		q, r, err := cur.DivMod(ten)
		if err != nil {
			panic(err)
		}
		rv, _ := r.Uint64()
		chunks = append(chunks, uint32(rv))
		cur = q
	}
	var sb strings.Builder
	sb.WriteString(itoa(int(chunks[len(chunks)-1])))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := itoa(int(chunks[i]))
		for len(s) < 9 {
			s = "0" + s
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// FromString parses a non-negative integer in the given base (10 or 16).
// A leading '+' or '-' is rejected with errs.ErrDomain: UBig has no sign.
func FromString(s string, base int) (UBig, error) {
	if s == "" {
		return UBig{}, errs.Domain("ubig.FromString", "empty string")
	}
	if s[0] == '+' || s[0] == '-' {
		return UBig{}, errs.Domain("ubig.FromString", "sign not allowed for an unsigned integer")
	}
	switch base {
	case 16:
		return fromHex(s)
	case 10:
		return fromDecimal(s)
	default:
		return UBig{}, errs.Domain("ubig.FromString", "unsupported base")
	}
}

func fromHex(s string) (UBig, error) {
	n := len(s)
	nw := (n + 7) / 8
	w := make([]word.Word, nw)
	for i := 0; i < n; i++ {
		c := s[n-1-i]
		v, ok := hexVal(c)
		if !ok {
			return UBig{}, errs.Domain("ubig.FromString", "invalid hex digit")
		}
		wi := i / 8
		shift := uint((i % 8) * 4)
		w[wi] |= word.Word(v) << shift
	}
	return FromWords(w)
}

func hexVal(c byte) (word.Word, bool) {
	switch {
	case c >= '0' && c <= '9':
		return word.Word(c - '0'), true
	case c >= 'a' && c <= 'f':
		return word.Word(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return word.Word(c-'A') + 10, true
	default:
		return 0, false
	}
}

func fromDecimal(s string) (UBig, error) {
	result := Zero
	ten := FromUint64(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return UBig{}, errs.Domain("ubig.FromString", "invalid decimal digit")
		}
		var err error
		result, err = result.Multiply(ten)
		if err != nil {
			return UBig{}, err
		}
		result, err = result.AddUint64(uint64(c - '0'))
		if err != nil {
			return UBig{}, err
		}
	}
	return result, nil
}
