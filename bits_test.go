package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bigint "github.com/AdamMil/AdamMil.net-sub011"
)

func TestNot(t *testing.T) {
	type TC struct {
		name string
		in   int64
		want int64
	}

	tcs := []TC{
		{name: "positive", in: 5, want: -6},
		{name: "zero", in: 0, want: -1},
		{name: "minus one", in: -1, want: 0},
		{name: "negative", in: -100, want: 99},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.FromInt64(tc.in).Not()
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.want), z)

			// ~~a == a
			back, err := z.Not()
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.in), back)
		})
	}
}

func TestBitwiseSmall(t *testing.T) {
	type TC struct {
		name string
		a, b int64
		and  int64
		or   int64
		xor  int64
	}

	tcs := []TC{
		{name: "both positive", a: 6, b: 3, and: 2, or: 7, xor: 5},
		{name: "both negative", a: -6, b: -4, and: -8, or: -2, xor: 6},
		{name: "mixed", a: -6, b: 3, and: 2, or: -5, xor: -7},
		{name: "mixed other way", a: 6, b: -4, and: 4, or: -2, xor: -6},
		{name: "with zero", a: -6, b: 0, and: 0, or: -6, xor: -6},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			a, b := bigint.FromInt64(tc.a), bigint.FromInt64(tc.b)

			z, err := a.And(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.and), z)

			z, err = a.Or(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.or), z)

			z, err = a.Xor(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.xor), z)
		})
	}
}

func TestBitwiseMatchesInt64(t *testing.T) {
	ops := []int64{0, 1, -1, 2, -37, 0xFFFFFFFF, -0x100000000, 1 << 40, -(1<<40 + 12345)}
	for _, av := range ops {
		for _, bv := range ops {
			a, b := bigint.FromInt64(av), bigint.FromInt64(bv)

			z, err := a.And(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(av&bv), z)

			z, err = a.Or(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(av|bv), z)

			z, err = a.Xor(b)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(av^bv), z)
		}
	}
}

func TestXorWithMinusOneIsNot(t *testing.T) {
	for _, v := range []int64{0, 7, -7, 1 << 50} {
		a := bigint.FromInt64(v)

		x, err := a.Xor(bigint.MinusOne())
		require.NoError(t, err)
		n, err := a.Not()
		require.NoError(t, err)
		requireEq(t, n, x)
	}
}

func TestShiftLaws(t *testing.T) {
	a := bigint.MustParse("-41909823567626205466")
	two := bigint.Two()

	for _, k := range []int{1, 13, 32, 50, 100} {
		p, err := two.Pow(uint32(k))
		require.NoError(t, err)

		shifted, err := a.Shl(k)
		require.NoError(t, err)
		requireEq(t, mustMul(t, a, p), shifted)
		require.Equal(t, a.BitLen()+k, shifted.BitLen())

		back, err := shifted.Shr(k)
		require.NoError(t, err)
		requireEq(t, a, back)
	}
}

func TestShrTruncatesTowardZero(t *testing.T) {
	type TC struct {
		name string
		in   int64
		n    int
		want int64
	}

	tcs := []TC{
		{name: "positive", in: 5, n: 1, want: 2},
		{name: "negative", in: -5, n: 1, want: -2},
		{name: "minus one vanishes", in: -1, n: 1, want: 0},
		{name: "negative to zero", in: -100, n: 7, want: 0},
		{name: "exact", in: -8, n: 3, want: -1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			z, err := bigint.FromInt64(tc.in).Shr(tc.n)
			require.NoError(t, err)
			requireEq(t, bigint.FromInt64(tc.want), z)
		})
	}
}

func TestShiftErrors(t *testing.T) {
	_, err := bigint.FromInt64(1).Shl(-1)
	require.ErrorIs(t, err, bigint.ErrInvalidInput)

	_, err = bigint.FromInt64(1).Shr(-1)
	require.ErrorIs(t, err, bigint.ErrInvalidInput)

	_, err = bigint.FromInt64(3).Shl(bigint.MaxBitLen)
	require.ErrorIs(t, err, bigint.ErrOverflow)
}

func TestBit(t *testing.T) {
	five := bigint.FromInt64(5)
	for i, want := range []bool{true, false, true, false} {
		got, err := five.Bit(i)
		require.NoError(t, err)
		require.Equal(t, want, got, "bit %d", i)
	}

	// -2 is ...11110 in the two's-complement view.
	minusTwo := bigint.FromInt64(-2)
	got, err := minusTwo.Bit(0)
	require.NoError(t, err)
	require.False(t, got)
	for _, i := range []int{1, 2, 31, 32, 200} {
		got, err := minusTwo.Bit(i)
		require.NoError(t, err)
		require.True(t, got, "bit %d", i)
	}

	got, err = bigint.Zero().Bit(100)
	require.NoError(t, err)
	require.False(t, got)

	_, err = five.Bit(-1)
	require.ErrorIs(t, err, bigint.ErrInvalidInput)
}

func TestSetBit(t *testing.T) {
	five := bigint.FromInt64(5)

	z, err := five.SetBit(4, true)
	require.NoError(t, err)
	requireEq(t, bigint.FromInt64(21), z)

	z, err = five.SetBit(2, false)
	require.NoError(t, err)
	requireEq(t, bigint.One(), z)

	// Already in the requested state.
	z, err = five.SetBit(0, true)
	require.NoError(t, err)
	requireEq(t, five, z)

	// Clearing bit 0 of ...111 gives ...110.
	z, err = bigint.MinusOne().SetBit(0, false)
	require.NoError(t, err)
	requireEq(t, bigint.FromInt64(-2), z)

	z, err = bigint.Zero().SetBit(100, true)
	require.NoError(t, err)
	require.Equal(t, 101, z.BitLen())
	requireEq(t, bigint.Zero(), mustSub(t, z, z))

	_, err = five.SetBit(-1, true)
	require.ErrorIs(t, err, bigint.ErrInvalidInput)
}

func TestTrailingZeros(t *testing.T) {
	require.Equal(t, 0, bigint.Zero().TrailingZeros())
	require.Equal(t, 2, bigint.FromInt64(12).TrailingZeros())
	require.Equal(t, 3, bigint.FromInt64(-8).TrailingZeros())
	require.Equal(t, 64, bigint.MustParse("18446744073709551616").TrailingZeros())
}
