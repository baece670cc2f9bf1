package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bigint "github.com/AdamMil/AdamMil.net-sub011"
)

func requireEq(t *testing.T, want, got bigint.Int) {
	t.Helper()
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestFromWords(t *testing.T) {
	type TC struct {
		name  string
		words []uint32
		neg   bool
		str   string
		bits  int
	}

	tcs := []TC{
		{
			name:  "canonical",
			words: []uint32{5},
			str:   "5",
			bits:  3,
		},
		{
			name:  "trims high zero words",
			words: []uint32{7, 0, 0},
			neg:   true,
			str:   "-7",
			bits:  3,
		},
		{
			name:  "zero drops the sign",
			words: []uint32{0, 0},
			neg:   true,
			str:   "0",
			bits:  0,
		},
		{
			name:  "multi word",
			words: []uint32{0, 1},
			str:   "4294967296",
			bits:  33,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.FromWords(tc.words, tc.neg)
			require.NoError(t, err)
			require.Equal(t, tc.str, z.String())
			require.Equal(t, tc.bits, z.BitLen())
		})
	}
}

func TestFromWordsCopiesInput(t *testing.T) {
	words := []uint32{9}
	z, err := bigint.FromWords(words, false)
	require.NoError(t, err)

	words[0] = 1
	require.Equal(t, "9", z.String())
}

func TestSignAndCmp(t *testing.T) {
	a := bigint.FromInt64(-10)
	b := bigint.FromInt64(3)

	require.Equal(t, -1, a.Sign())
	require.Equal(t, 1, b.Sign())
	require.Equal(t, 0, bigint.Zero().Sign())

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(bigint.FromInt64(-10)))
	require.Equal(t, 1, a.CmpAbs(b))

	require.Equal(t, -1, bigint.FromInt64(-10).Cmp(bigint.FromInt64(-3)))
}

func TestAbsNeg(t *testing.T) {
	a := bigint.FromInt64(-10)
	requireEq(t, bigint.FromInt64(10), a.Abs())
	requireEq(t, bigint.FromInt64(10), a.Neg())
	requireEq(t, bigint.FromInt64(-10), a.Abs().Neg())
	requireEq(t, bigint.Zero(), bigint.Zero().Neg())
}

func TestSharedConstantsSurviveUnsafeMutation(t *testing.T) {
	// One and MinusOne alias the same buffer; the clone-on-write gate in
	// the Unsafe* methods must keep mutations away from it.
	a := bigint.One()
	require.NoError(t, a.UnsafeIncr())

	require.Equal(t, "2", a.String())
	require.Equal(t, "1", bigint.One().String())
	require.Equal(t, "-1", bigint.MinusOne().String())
}

func TestExclusiveBreaksAliasing(t *testing.T) {
	orig := bigint.MustParse("18446744073709551616")
	cp := orig.Exclusive()
	require.NoError(t, cp.UnsafeDecr())

	require.Equal(t, "18446744073709551615", cp.String())
	require.Equal(t, "18446744073709551616", orig.String())
}

func TestIsEven(t *testing.T) {
	require.True(t, bigint.Zero().IsEven())
	require.True(t, bigint.FromInt64(-4).IsEven())
	require.False(t, bigint.FromInt64(7).IsEven())
}
