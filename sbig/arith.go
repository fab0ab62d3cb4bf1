package sbig

// Add returns s + t.
func (s SBig) Add(t SBig) (SBig, error) {
	switch {
	case s.IsZero():
		return t, nil
	case t.IsZero():
		return s, nil
	case s.neg == t.neg:
		sum, err := s.mag.Add(t.mag)
		if err != nil {
			return SBig{}, err
		}
		return FromUBig(sum, s.neg), nil
	case s.mag.Compare(t.mag) >= 0:
		diff, err := s.mag.Sub(t.mag)
		if err != nil {
			return SBig{}, err
		}
		return FromUBig(diff, s.neg), nil
	default:
		diff, err := t.mag.Sub(s.mag)
		if err != nil {
			return SBig{}, err
		}
		return FromUBig(diff, t.neg), nil
	}
}

// Sub returns s - t.
func (s SBig) Sub(t SBig) (SBig, error) {
	return s.Add(t.Negate())
}

// Multiply returns s * t.
func (s SBig) Multiply(t SBig) (SBig, error) {
	if s.IsZero() || t.IsZero() {
		return Zero, nil
	}
	mag, err := s.mag.Multiply(t.mag)
	if err != nil {
		return SBig{}, err
	}
	return FromUBig(mag, s.neg != t.neg), nil
}

// Square returns s * s.
func (s SBig) Square() (SBig, error) {
	if s.IsZero() {
		return Zero, nil
	}
	mag, err := s.mag.Square()
	if err != nil {
		return SBig{}, err
	}
	return FromUBig(mag, false), nil
}

// DivMod returns (s/t, s%t), truncated toward zero: the remainder
// carries s's sign (or is zero), matching Go's integer division.
// t must be nonzero.
func (s SBig) DivMod(t SBig) (SBig, SBig, error) {
	qMag, rMag, err := s.mag.DivMod(t.mag)
	if err != nil {
		return SBig{}, SBig{}, err
	}
	q := FromUBig(qMag, s.neg != t.neg)
	r := FromUBig(rMag, s.neg)
	return q, r, nil
}

// GCD returns the non-negative greatest common divisor of s and t.
func (s SBig) GCD(t SBig) SBig {
	return FromUBig(s.mag.GCD(t.mag), false)
}

// ShiftUp returns s << k. k must be >= 0.
func (s SBig) ShiftUp(k int) (SBig, error) {
	if s.IsZero() {
		return Zero, nil
	}
	mag, err := s.mag.ShiftUp(k)
	if err != nil {
		return SBig{}, err
	}
	return FromUBig(mag, s.neg), nil
}

// ShiftDown returns s >> k, truncating toward zero. k must be >= 0.
func (s SBig) ShiftDown(k int) SBig {
	if s.IsZero() {
		return Zero
	}
	return FromUBig(s.mag.ShiftDown(k), s.neg)
}
