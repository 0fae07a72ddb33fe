// Package bignum implements an immutable decimal floating-point number
// whose mantissa is an ordinary float64 but whose power-of-ten exponent
// is a full int64, so that magnitudes far beyond the float64 range can
// be represented. It is the numeric type of the expidle machine.
//
// A Value is one of four cases: a finite number, positive infinity,
// negative infinity, or not-a-number. Finite values are always kept in
// canonical form, either exactly zero (with exponent 0 and the sign bit
// of the mantissa preserved) or with a mantissa magnitude in [1, 10).
// The canonical form is established at construction and can never be
// broken afterwards since values are immutable; the zero Value is
// canonical positive zero.
//
// Precision is that of the mantissa only: arithmetic is not exact
// decimal arithmetic, and there is no textual parsing of values.
package bignum

import (
	"errors"
	"math"
	"strconv"
)

type form uint8

const (
	finite form = iota
	posInf
	negInf
	nan
)

// Value is an immutable decimal floating-point number. Values are
// comparable: the == operator implements the same hash-consistent
// equality as Equal, which notably makes NaN == NaN true and is safe
// for use as a map key. Use StrictEqual for IEEE-style comparisons
// where NaN is never equal to anything.
type Value struct {
	mantissa float64
	exponent int64
	form     form
}

var (
	// Zero is canonical positive zero, the zero Value.
	Zero = Value{}
	// NegZero is canonical negative zero. It is equal to Zero under ==,
	// Equal, StrictEqual and Cmp, but keeps its sign bit, which
	// participates in the sign rules of multiplication and division.
	NegZero = Value{mantissa: math.Copysign(0, -1)}
	// One is the finite value 1.
	One = Value{mantissa: 1}

	// PosInf, NegInf and NaN are the three sentinel values. They carry
	// no numeric payload.
	PosInf = Value{form: posInf}
	NegInf = Value{form: negInf}
	NaN    = Value{form: nan}
)

// ErrNaNSign is returned by Sign when called on NaN, for which a sign
// is mathematically undefined.
var ErrNaNSign = errors.New("bignum: sign is undefined for NaN")

// Class identifies which of the four cases a Value holds. It is the
// only way for external code to branch on the shape of a Value; the
// constructors of finite values stay private so that every finite
// Value is guaranteed canonical.
type Class uint8

const (
	ClassFinite Class = iota
	ClassPosInf
	ClassNegInf
	ClassNaN
)

// New builds a Value from a raw mantissa and power-of-ten exponent:
// the result is mantissa × 10^exponent brought to canonical form. New
// never fails: a NaN or infinite mantissa yields the corresponding
// sentinel (the exponent is discarded), and a zero mantissa yields the
// canonical zero of the same sign.
func New(mantissa float64, exponent int64) Value {
	return norm(mantissa, exponent)
}

// FromFloat64 is New(x, 0).
func FromFloat64(x float64) Value {
	return norm(x, 0)
}

// Class reports which case v holds.
func (v Value) Class() Class {
	switch v.form {
	case posInf:
		return ClassPosInf
	case negInf:
		return ClassNegInf
	case nan:
		return ClassNaN
	}
	return ClassFinite
}

// Mantissa returns the canonical mantissa of a finite value, either 0
// or of magnitude in [1, 10). It returns 0 for the sentinels.
func (v Value) Mantissa() float64 {
	if v.form != finite {
		return 0
	}
	return v.mantissa
}

// Exponent returns the power-of-ten exponent of a finite value. It
// returns 0 for the sentinels and for both zeros.
func (v Value) Exponent() int64 {
	if v.form != finite {
		return 0
	}
	return v.exponent
}

// IsFinite reports whether v is a finite value, including both zeros.
func (v Value) IsFinite() bool { return v.form == finite }

// IsInf reports whether v is one of the two infinities.
func (v Value) IsInf() bool { return v.form == posInf || v.form == negInf }

// IsNaN reports whether v is not-a-number.
func (v Value) IsNaN() bool { return v.form == nan }

// IsZero reports whether v is zero of either sign.
func (v Value) IsZero() bool { return v.form == finite && v.mantissa == 0 }

// IsPositive reports whether v is a positive nonzero finite value or
// positive infinity. It is false for both zeros and for NaN.
func (v Value) IsPositive() bool {
	switch v.form {
	case posInf:
		return true
	case finite:
		return v.mantissa > 0
	}
	return false
}

// IsNegative reports whether v is a negative nonzero finite value or
// negative infinity. It is false for both zeros and for NaN.
func (v Value) IsNegative() bool {
	switch v.form {
	case negInf:
		return true
	case finite:
		return v.mantissa < 0
	}
	return false
}

// Sign returns 0 for either zero, 1 for positive values (finite or
// infinite) and -1 for negative ones. It fails with ErrNaNSign on NaN
// rather than defaulting to some conventional value.
func (v Value) Sign() (int, error) {
	switch v.form {
	case nan:
		return 0, ErrNaNSign
	case posInf:
		return 1, nil
	case negInf:
		return -1, nil
	}
	switch {
	case v.mantissa > 0:
		return 1, nil
	case v.mantissa < 0:
		return -1, nil
	}
	return 0, nil
}

// negative reports the sign bit of v. For finite values this includes
// negative zero, which is how a signed zero participates in the sign
// rules of Mul and Div.
func (v Value) negative() bool {
	switch v.form {
	case posInf:
		return false
	case negInf:
		return true
	}
	return math.Signbit(v.mantissa)
}

// String renders v as "<mantissa> * 10^<exponent>" for finite values
// and as the fixed tokens "+Inf", "-Inf" and "NaN" for the sentinels.
// The format is informational only and is not parseable back into a
// Value.
func (v Value) String() string {
	switch v.form {
	case posInf:
		return "+Inf"
	case negInf:
		return "-Inf"
	case nan:
		return "NaN"
	}
	return strconv.FormatFloat(v.mantissa, 'g', -1, 64) +
		" * 10^" + strconv.FormatInt(v.exponent, 10)
}
