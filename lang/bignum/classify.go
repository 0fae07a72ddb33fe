package bignum

// Per-operator classification of an operand pair. Each classify
// function resolves every combination involving a sentinel or, for
// division, a zero divisor, and reports done=false only when both
// operands are finite and the operator's ordinary mantissa/exponent
// arithmetic applies. The rules are checked in order: NaN first, then
// infinities, then zeros.

func classifyAdd(x, y Value) (r Value, done bool) {
	switch {
	case x.form == nan || y.form == nan:
		return NaN, true
	case x.form != finite && y.form != finite:
		// opposite-signed infinities cancel into NaN, same-signed ones
		// keep their sign
		if x.form != y.form {
			return NaN, true
		}
		return x, true
	case x.form != finite:
		return x, true
	case y.form != finite:
		return y, true
	}
	return Value{}, false
}

func classifyMul(x, y Value) (r Value, done bool) {
	if x.form == nan || y.form == nan {
		return NaN, true
	}
	if x.form == finite && y.form == finite {
		return Value{}, false
	}
	// at least one infinity; zero times an infinity is NaN whatever the
	// signs and the operand order
	if x.IsZero() || y.IsZero() {
		return NaN, true
	}
	if x.negative() != y.negative() {
		return NegInf, true
	}
	return PosInf, true
}

func classifyDiv(x, y Value) (r Value, done bool) {
	switch {
	case x.form == nan || y.form == nan:
		return NaN, true
	case x.form != finite && y.form != finite:
		return NaN, true
	case x.form != finite:
		// infinity over a finite: NaN for a zero divisor, otherwise a
		// signed infinity
		if y.mantissa == 0 {
			return NaN, true
		}
		if x.negative() != y.negative() {
			return NegInf, true
		}
		return PosInf, true
	case y.form != finite:
		// finite over an infinity collapses to a signed zero; dividing
		// by NegInf flips the dividend's sign
		if x.negative() != y.negative() {
			return NegZero, true
		}
		return Zero, true
	case y.mantissa == 0:
		if x.mantissa == 0 {
			return NaN, true
		}
		// 1/0 = +Inf, 1/-0 = -Inf, -1/0 = -Inf, -1/-0 = +Inf
		if x.negative() != y.negative() {
			return NegInf, true
		}
		return PosInf, true
	}
	return Value{}, false
}
