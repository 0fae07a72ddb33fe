package bignum_test

import (
	"math"
	"testing"

	"github.com/basp/expidle/lang/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSentinels(t *testing.T) {
	one := bignum.One
	cases := []struct {
		name string
		x, y bignum.Value
		want bignum.Value
	}{
		{"nan left", bignum.NaN, one, bignum.NaN},
		{"nan right", one, bignum.NaN, bignum.NaN},
		{"nan both", bignum.NaN, bignum.NaN, bignum.NaN},
		{"nan with inf", bignum.NaN, bignum.PosInf, bignum.NaN},
		{"posinf neginf", bignum.PosInf, bignum.NegInf, bignum.NaN},
		{"neginf posinf", bignum.NegInf, bignum.PosInf, bignum.NaN},
		{"posinf posinf", bignum.PosInf, bignum.PosInf, bignum.PosInf},
		{"neginf neginf", bignum.NegInf, bignum.NegInf, bignum.NegInf},
		{"posinf finite", bignum.PosInf, bignum.New(-5, 100), bignum.PosInf},
		{"finite neginf", bignum.New(5, 100), bignum.NegInf, bignum.NegInf},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.x.Add(c.y))
		})
	}
}

func TestAddZeros(t *testing.T) {
	z, nz := bignum.Zero, bignum.NegZero

	// signed zero summation follows the float64 rules
	require.Equal(t, z, z.Add(z))
	require.Equal(t, z, z.Add(nz))
	require.Equal(t, z, nz.Add(z))
	require.Equal(t, nz, nz.Add(nz))
	require.True(t, math.Signbit(nz.Add(nz).Mantissa()))
	require.False(t, math.Signbit(z.Add(nz).Mantissa()))

	// a single zero operand leaves the other operand untouched
	v := bignum.New(-7.25, 1234)
	require.Equal(t, v, v.Add(z))
	require.Equal(t, v, z.Add(v))
	require.Equal(t, v, v.Add(nz))
	require.Equal(t, v, nz.Add(v))
}

func TestAddAligned(t *testing.T) {
	cases := []struct {
		name string
		x, y bignum.Value
		want bignum.Value
	}{
		{"same exponent", bignum.New(1, 5), bignum.New(2, 5), bignum.New(3, 5)},
		{"carry", bignum.New(5, 5), bignum.New(5, 5), bignum.New(1, 6)},
		{"one apart", bignum.New(1, 1), bignum.New(5, 0), bignum.New(1.5, 1)},
		{"cancellation", bignum.New(1.5, 3), bignum.New(-1.5, 3), bignum.Zero},
		{"partial cancel", bignum.New(1.5, 3), bignum.New(-1, 3), bignum.New(5, 2)},
		{"negative operands", bignum.New(-2, 2), bignum.New(-3, 2), bignum.New(-5, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.x.Add(c.y))
			require.Equal(t, c.want, c.y.Add(c.x))
		})
	}
}

func TestAddAbsorption(t *testing.T) {
	small := bignum.New(1, 0)
	big := bignum.New(1, 17)

	// a gap above 16 drops the small operand entirely, in both operand
	// orders
	require.Equal(t, big, small.Add(big))
	require.Equal(t, big, big.Add(small))

	// a gap of exactly 16 still computes the scaled sum
	lo := bignum.New(9.9, 0)
	hi := bignum.New(9.9, 16)
	sum := hi.Add(lo)
	require.EqualValues(t, 16, sum.Exponent())
	require.Positive(t, sum.Cmp(hi), "gap of 16 must not absorb")
	require.Equal(t, sum, lo.Add(hi))
}

func TestSub(t *testing.T) {
	cases := []struct {
		name string
		x, y bignum.Value
		want bignum.Value
	}{
		{"simple", bignum.New(3, 5), bignum.New(1, 5), bignum.New(2, 5)},
		{"to zero", bignum.New(2, 7), bignum.New(2, 7), bignum.Zero},
		{"below zero", bignum.New(1, 0), bignum.New(2, 0), bignum.New(-1, 0)},
		{"posinf posinf", bignum.PosInf, bignum.PosInf, bignum.NaN},
		{"posinf neginf", bignum.PosInf, bignum.NegInf, bignum.PosInf},
		{"nan", bignum.NaN, bignum.One, bignum.NaN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.x.Sub(c.y))
		})
	}
}

func TestNegInvolution(t *testing.T) {
	for _, v := range []bignum.Value{
		bignum.New(1.5, 42), bignum.New(-1.5, -42), bignum.Zero, bignum.NegZero,
		bignum.PosInf, bignum.NegInf, bignum.NaN,
	} {
		require.Equal(t, v, v.Neg().Neg(), "Neg(Neg(%s))", v)
	}
	require.Equal(t, bignum.NegInf, bignum.PosInf.Neg())
	require.Equal(t, bignum.PosInf, bignum.NegInf.Neg())
	require.Equal(t, bignum.NaN, bignum.NaN.Neg())
	require.Equal(t, bignum.NegZero, bignum.Zero.Neg())
}

func TestMul(t *testing.T) {
	cases := []struct {
		name string
		x, y bignum.Value
		want bignum.Value
	}{
		{"nan", bignum.NaN, bignum.One, bignum.NaN},
		{"zero posinf", bignum.Zero, bignum.PosInf, bignum.NaN},
		{"negzero posinf", bignum.NegZero, bignum.PosInf, bignum.NaN},
		{"zero neginf", bignum.Zero, bignum.NegInf, bignum.NaN},
		{"posinf posinf", bignum.PosInf, bignum.PosInf, bignum.PosInf},
		{"neginf neginf", bignum.NegInf, bignum.NegInf, bignum.PosInf},
		{"posinf neginf", bignum.PosInf, bignum.NegInf, bignum.NegInf},
		{"posinf positive", bignum.PosInf, bignum.New(2, 0), bignum.PosInf},
		{"posinf negative", bignum.PosInf, bignum.New(-2, 0), bignum.NegInf},
		{"neginf negative", bignum.NegInf, bignum.New(-2, 0), bignum.PosInf},
		{"simple", bignum.New(2, 3), bignum.New(3, 4), bignum.New(6, 7)},
		{"mantissa carry", bignum.New(5, 3), bignum.New(4, 4), bignum.New(2, 8)},
		{"signs", bignum.New(-2, 0), bignum.New(3, 0), bignum.New(-6, 0)},
		{"zero zero", bignum.Zero, bignum.Zero, bignum.Zero},
		{"zero finite", bignum.Zero, bignum.New(5, 5), bignum.Zero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.x.Mul(c.y))
			require.Equal(t, c.want, c.y.Mul(c.x))
		})
	}

	// the sign of a negative zero still participates in the sign rule
	nzProduct := bignum.NegZero.Mul(bignum.New(2, 0))
	require.True(t, nzProduct.IsZero())
	assert.True(t, math.Signbit(nzProduct.Mantissa()))
}

func TestDiv(t *testing.T) {
	cases := []struct {
		name string
		x, y bignum.Value
		want bignum.Value
	}{
		{"nan left", bignum.NaN, bignum.One, bignum.NaN},
		{"nan right", bignum.One, bignum.NaN, bignum.NaN},
		{"inf over inf", bignum.PosInf, bignum.NegInf, bignum.NaN},
		{"inf over zero", bignum.PosInf, bignum.Zero, bignum.NaN},
		{"posinf over positive", bignum.PosInf, bignum.New(2, 0), bignum.PosInf},
		{"posinf over negative", bignum.PosInf, bignum.New(-2, 0), bignum.NegInf},
		{"neginf over negzero", bignum.NegInf, bignum.NegZero, bignum.NaN},
		{"finite over posinf", bignum.New(3, 0), bignum.PosInf, bignum.Zero},
		{"negative over posinf", bignum.New(-3, 0), bignum.PosInf, bignum.NegZero},
		{"finite over neginf", bignum.New(3, 0), bignum.NegInf, bignum.NegZero},
		{"negative over neginf", bignum.New(-3, 0), bignum.NegInf, bignum.Zero},
		{"zero over zero", bignum.Zero, bignum.Zero, bignum.NaN},
		{"zero over negzero", bignum.Zero, bignum.NegZero, bignum.NaN},
		{"negzero over zero", bignum.NegZero, bignum.Zero, bignum.NaN},
		{"one over zero", bignum.One, bignum.Zero, bignum.PosInf},
		{"one over negzero", bignum.One, bignum.NegZero, bignum.NegInf},
		{"minus one over zero", bignum.New(-1, 0), bignum.Zero, bignum.NegInf},
		{"minus one over negzero", bignum.New(-1, 0), bignum.NegZero, bignum.PosInf},
		{"simple", bignum.New(6, 7), bignum.New(3, 4), bignum.New(2, 3)},
		{"mantissa borrow", bignum.New(1, 0), bignum.New(4, 0), bignum.New(2.5, -1)},
		{"signs", bignum.New(-6, 0), bignum.New(3, 0), bignum.New(-2, 0)},
		{"zero over finite", bignum.Zero, bignum.New(3, 4), bignum.Zero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.x.Div(c.y))
		})
	}

	// the signed-zero results of dividing by an infinity keep the sign
	// bit that the table above cannot observe
	require.True(t, math.Signbit(bignum.New(-3, 0).Div(bignum.PosInf).Mantissa()))
	require.False(t, math.Signbit(bignum.New(3, 0).Div(bignum.PosInf).Mantissa()))
	require.True(t, math.Signbit(bignum.New(3, 0).Div(bignum.NegInf).Mantissa()))
}

func TestArithStaysCanonical(t *testing.T) {
	// results of every operator are re-normalized, whatever the inputs
	vals := []bignum.Value{
		bignum.New(9.99, 300), bignum.New(-9.99, 300), bignum.New(1.01, -300),
		bignum.Zero, bignum.NegZero, bignum.One,
	}
	check := func(v bignum.Value) {
		if v.Class() != bignum.ClassFinite {
			return
		}
		m := math.Abs(v.Mantissa())
		require.True(t, m == 0 || (1 <= m && m < 10), "mantissa %v", v.Mantissa())
		if m == 0 {
			require.EqualValues(t, 0, v.Exponent())
		}
	}
	for _, x := range vals {
		for _, y := range vals {
			check(x.Add(y))
			check(x.Sub(y))
			check(x.Mul(y))
			check(x.Div(y))
			check(x.Neg())
		}
	}
}
