package bignum

import "math"

// Fixed hash constants for the sentinel cases. Any distinct values do;
// these stay stable across processes so hashes may be memoized.
const (
	hashNaN    = 1618033
	hashPosInf = 3141592
	hashNegInf = 2718281
)

// Equal reports hash-consistent equality, the same relation as the ==
// operator on Value (documented here because it is the surprising
// one): all NaNs are mutually equal, the zeros of both signs are
// equal, each infinity is equal only to itself, and two finite values
// are equal iff their canonical mantissa and exponent are identical.
// This is the equality that Hash is consistent with and the one that
// governs Values used as map keys.
func (v Value) Equal(w Value) bool {
	return v == w
}

// StrictEqual is the IEEE-style comparison: identical to Equal except
// that NaN is never equal to anything, including another NaN.
func (v Value) StrictEqual(w Value) bool {
	if v.form == nan || w.form == nan {
		return false
	}
	return v == w
}

// rank orders the forms for Cmp: NegInf below every finite value,
// PosInf above, and NaN above PosInf so the order stays total.
func (v Value) rank() int {
	switch v.form {
	case negInf:
		return 0
	case finite:
		return 1
	case posInf:
		return 2
	}
	return 3
}

// Cmp implements a total order over all Values, including NaN: it
// returns negative if v < w, positive if v > w, and zero when they are
// equal under Equal (so NaN compares equal to NaN, and both zeros
// compare equal). Unlike IEEE's partial order, Cmp is reflexive and
// usable for sorting, thresholds and range checks.
func (v Value) Cmp(w Value) int {
	if ra, rb := v.rank(), w.rank(); ra != rb {
		return cmpInt(int64(ra), int64(rb))
	}
	if v.form != finite {
		return 0 // same sentinel
	}

	sv, sw := finiteSign(v.mantissa), finiteSign(w.mantissa)
	if sv != sw {
		return cmpInt(int64(sv), int64(sw))
	}
	if sv == 0 {
		return 0 // both zeros, sign ignored
	}
	if v.exponent != w.exponent {
		// a larger exponent means a larger magnitude, which inverts the
		// comparison for negative values
		return cmpInt(v.exponent, w.exponent) * sv
	}
	// same sign and exponent: the raw mantissa comparison already
	// orders negatives correctly
	switch {
	case v.mantissa < w.mantissa:
		return -1
	case v.mantissa > w.mantissa:
		return 1
	}
	return 0
}

// Hash returns a hash consistent with Equal: fixed distinct constants
// for the three sentinels, and for finite values a mix of the mantissa
// bits and the exponent, with a negative-zero mantissa canonicalized
// to positive zero so that hash(+0) == hash(-0).
func (v Value) Hash() uint32 {
	switch v.form {
	case nan:
		return hashNaN
	case posInf:
		return hashPosInf
	case negInf:
		return hashNegInf
	}
	m := v.mantissa
	if m == 0 {
		m = 0 // drops the sign bit of negative zero
	}
	mbits := math.Float64bits(m)
	ebits := uint64(v.exponent)
	h := uint32(mbits) ^ uint32(mbits>>32)
	return h*31 ^ uint32(ebits) ^ uint32(ebits>>32)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func finiteSign(m float64) int {
	switch {
	case m > 0:
		return 1
	case m < 0:
		return -1
	}
	return 0
}
