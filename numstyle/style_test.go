package numstyle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamMil/AdamMil.net-sub011/numstyle"
)

func TestInvariant(t *testing.T) {
	s := numstyle.Invariant()
	require.Equal(t, "¤", s.CurrencySymbol)
	require.Equal(t, "-", s.NegativeSign)
	require.Equal(t, ".", s.DecimalSeparator)
	require.Equal(t, ",", s.GroupSeparator)
	require.Equal(t, []int{3}, s.GroupSizes)

	// Each call hands out a fresh value, so callers may customize it.
	s.NegativeSign = "−"
	require.Equal(t, "-", numstyle.Invariant().NegativeSign)
}

func TestGroupSizeAt(t *testing.T) {
	s := &numstyle.Style{GroupSizes: []int{3, 2}}
	require.Equal(t, 3, s.GroupSizeAt(0))
	require.Equal(t, 2, s.GroupSizeAt(1))
	require.Equal(t, 2, s.GroupSizeAt(5))

	empty := &numstyle.Style{}
	require.Equal(t, 0, empty.GroupSizeAt(0))

	capped := &numstyle.Style{GroupSizes: []int{3, 0}}
	require.Equal(t, 0, capped.GroupSizeAt(7))
}
