package bignum

import "math"

// absorbCutoff is the exponent gap beyond which addition drops the
// smaller operand entirely and returns the larger one verbatim. A gap
// of exactly 16 still computes the scaled sum; only a gap strictly
// greater than 16 absorbs. This trades the last bits of precision for
// bounded work and must keep that exact boundary.
const absorbCutoff = 16

// Add returns v + w. It never fails: sentinel combinations resolve per
// the classification rules (e.g. PosInf + NegInf is NaN) and finite
// sums that overflow the mantissa reclassify through normalization.
func (v Value) Add(w Value) Value {
	if r, done := classifyAdd(v, w); done {
		return r
	}
	if v.mantissa == 0 && w.mantissa == 0 {
		// float64 addition of the two signed zeros gets the IEEE signed
		// zero summation rules right (+0 + -0 = +0, -0 + -0 = -0)
		return norm(v.mantissa+w.mantissa, 0)
	}
	if v.mantissa == 0 {
		return w
	}
	if w.mantissa == 0 {
		return v
	}
	d := v.exponent - w.exponent
	switch {
	case d > absorbCutoff:
		return v
	case d >= 0:
		return norm(v.mantissa+w.mantissa*math.Pow(10, -float64(d)), v.exponent)
	case d < -absorbCutoff:
		return w
	default:
		return norm(w.mantissa+v.mantissa*math.Pow(10, float64(d)), w.exponent)
	}
}

// Sub returns v - w, defined as v + (-w).
func (v Value) Sub(w Value) Value {
	return v.Add(w.Neg())
}

// Neg returns -v. Negating a finite value flips the mantissa's sign
// bit (including for zero) and cannot change its magnitude class.
func (v Value) Neg() Value {
	switch v.form {
	case posInf:
		return NegInf
	case negInf:
		return PosInf
	case nan:
		return NaN
	}
	return norm(-v.mantissa, v.exponent)
}

// Mul returns v × w. Zero times an infinity is NaN; otherwise the sign
// of an infinite result is the XOR of the operand sign bits.
func (v Value) Mul(w Value) Value {
	if r, done := classifyMul(v, w); done {
		return r
	}
	return norm(v.mantissa*w.mantissa, v.exponent+w.exponent)
}

// Div returns v ÷ w. Division by zero saturates into a signed infinity
// (NaN when the dividend is zero too), and division by an infinity
// collapses to a signed zero.
func (v Value) Div(w Value) Value {
	if r, done := classifyDiv(v, w); done {
		return r
	}
	return norm(v.mantissa/w.mantissa, v.exponent-w.exponent)
}
