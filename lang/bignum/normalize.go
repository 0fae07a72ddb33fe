package bignum

import "math"

// norm rewrites a raw (mantissa, exponent) pair into canonical form,
// reclassifying non-finite mantissas into the sentinels. It is the
// single producer of finite Values, so the canonical-form invariant is
// established here and nowhere else.
//
// The rescaling is done by repeated multiplication or division, never
// by computing 10^exponent directly: a direct power underflows to zero
// for very negative exponents and manufactures spurious infinities
// through the subsequent division. The coarse 1e16 steps bound the
// iteration count even for subnormal mantissas, whose decimal exponent
// is below -300.
func norm(m float64, e int64) Value {
	switch {
	case math.IsNaN(m):
		return NaN
	case math.IsInf(m, +1):
		return PosInf
	case math.IsInf(m, -1):
		return NegInf
	case m == 0:
		// canonical zero: exponent forced to 0, sign bit kept
		return Value{mantissa: m}
	}

	for math.Abs(m) >= 1e16 {
		m /= 1e16
		e += 16
	}
	for math.Abs(m) >= 10 {
		m /= 10
		e++
	}
	for math.Abs(m) < 1e-16 {
		m *= 1e16
		e -= 16
	}
	for math.Abs(m) < 1 {
		m *= 10
		e--
	}
	// the divisions above round; if that lands the magnitude exactly on
	// 10, one more step restores the invariant
	if math.Abs(m) == 10 {
		m /= 10
		e++
	}
	return Value{mantissa: m, exponent: e}
}
