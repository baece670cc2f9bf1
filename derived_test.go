package bigint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	bigint "github.com/AdamMil/AdamMil.net-sub011"
)

func TestPow(t *testing.T) {
	type TC struct {
		name string
		base int64
		n    uint32
		want string
	}

	tcs := []TC{
		{name: "zero exponent", base: 0, n: 0, want: "1"},
		{name: "unit exponent", base: -37, n: 1, want: "-37"},
		{name: "zero base", base: 0, n: 5, want: "0"},
		{name: "small", base: 3, n: 5, want: "243"},
		{name: "negative odd", base: -3, n: 5, want: "-243"},
		{name: "negative even", base: -3, n: 4, want: "81"},
		{name: "fits 64 bits", base: 7, n: 22, want: "3909821048582988049"},
		{name: "crosses 64 bits", base: 10, n: 20, want: "100000000000000000000"},
		{name: "multi word base", base: 5000000000, n: 3, want: "125000000000000000000000000000"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.FromInt64(tc.base).Pow(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, z.String())
		})
	}
}

func TestPowOfTwo(t *testing.T) {
	z, err := bigint.Two().Pow(1000)
	require.NoError(t, err)

	require.Equal(t, 1001, z.BitLen())
	require.Equal(t, 1000, z.TrailingZeros())

	top, err := z.Bit(1000)
	require.NoError(t, err)
	require.True(t, top)
	below, err := z.Bit(999)
	require.NoError(t, err)
	require.False(t, below)

	shifted, err := bigint.One().Shl(1000)
	require.NoError(t, err)
	requireEq(t, shifted, z)

	// -2 to an odd power stays negative.
	n, err := bigint.FromInt64(-2).Pow(11)
	require.NoError(t, err)
	requireEq(t, bigint.FromInt64(-2048), n)
}

func TestPowOverflow(t *testing.T) {
	_, err := bigint.Two().Pow(math.MaxUint32)
	require.ErrorIs(t, err, bigint.ErrOverflow)
}

func TestFactorial(t *testing.T) {
	type TC struct {
		name string
		n    uint32
		want string
	}

	tcs := []TC{
		{name: "zero", n: 0, want: "1"},
		{name: "one", n: 1, want: "1"},
		{name: "five", n: 5, want: "120"},
		{name: "twenty", n: 20, want: "2432902008176640000"},
		{name: "twenty five", n: 25, want: "15511210043330985984000000"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.Factorial(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, z.String())
		})
	}
}

func TestGreatestCommonFactor(t *testing.T) {
	type TC struct {
		name string
		a, b string
		want string
	}

	tcs := []TC{
		{name: "both zero", a: "0", b: "0", want: "0"},
		{name: "one zero", a: "100", b: "0", want: "100"},
		{name: "zero and negative", a: "0", b: "-5", want: "5"},
		{name: "small", a: "12", b: "18", want: "6"},
		{name: "sign ignored", a: "-12", b: "18", want: "6"},
		{name: "coprime", a: "35", b: "64", want: "1"},
		{name: "multi word", a: "3541774862152233910272", b: "332041393326771929088", want: "110680464442257309696"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			g := bigint.GreatestCommonFactor(bigint.MustParse(tc.a), bigint.MustParse(tc.b))
			require.Equal(t, tc.want, g.String())
		})
	}
}

func TestGreatestCommonFactorDivides(t *testing.T) {
	pairs := [][2]string{
		{"61392422837528727192", "5000000000"},
		{"19482599269902521726", "-41909823567626205466"},
		{"340282366920938463463374607431768211455", "18446744073709551615"},
	}

	for _, p := range pairs {
		a, b := bigint.MustParse(p[0]), bigint.MustParse(p[1])
		g := bigint.GreatestCommonFactor(a, b)
		require.Positive(t, g.Sign())

		for _, v := range []bigint.Int{a, b} {
			r, err := v.Rem(g)
			require.NoError(t, err)
			require.True(t, r.IsZero(), "gcd %s does not divide %s", g, v)
		}
	}
}

func TestLeastCommonMultiple(t *testing.T) {
	type TC struct {
		name string
		a, b int64
		want string
	}

	tcs := []TC{
		{name: "small", a: 4, b: 6, want: "12"},
		{name: "either zero", a: 0, b: 5, want: "0"},
		{name: "sign ignored", a: -4, b: 6, want: "12"},
		{name: "coprime", a: 35, b: 64, want: "2240"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.LeastCommonMultiple(bigint.FromInt64(tc.a), bigint.FromInt64(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, z.String())
		})
	}
}

func TestLcmGcdProduct(t *testing.T) {
	for _, p := range [][2]int64{{12, 18}, {-100, 75}, {7, 13}, {1 << 40, 3 << 20}} {
		a, b := bigint.FromInt64(p[0]), bigint.FromInt64(p[1])

		g := bigint.GreatestCommonFactor(a, b)
		l, err := bigint.LeastCommonMultiple(a, b)
		require.NoError(t, err)

		// lcm * gcd == |a * b|
		requireEq(t, mustMul(t, a, b).Abs(), mustMul(t, l, g))
	}
}
