// Package numstyle carries the culture-specific capability set consumed by
// numeric parsing and formatting: symbol strings, sign strings, digit
// grouping, and indices selecting one of a fixed set of layout patterns.
// The numeric engine itself hardcodes no culture data; callers supply a
// Style per call (or nil for the invariant style).
package numstyle

// Number negative patterns, selected by Style.NegativePattern:
//
//	0  (n)
//	1  -n
//	2  - n
//	3  n-
//	4  n -
//
// Currency positive patterns, selected by Style.CurrencyPositivePattern:
//
//	0  $n
//	1  n$
//	2  $ n
//	3  n $
//
// Currency negative patterns, selected by Style.CurrencyNegativePattern:
//
//	0  ($n)
//	1  -$n
//	2  $-n
//	3  $n-
//	4  (n$)
//	5  -n$
//	6  n-$
//	7  n$-
//
// $ stands for the currency symbol and - for the negative sign string.

// Style is a culture's numeric capability set.
type Style struct {
	CurrencySymbol string
	PercentSymbol  string
	PerMilleSymbol string

	PositiveSign string
	NegativeSign string

	GroupSeparator   string
	DecimalSeparator string
	ExponentSymbol   string

	// GroupSizes lists digit group sizes from the least significant
	// group outward; the last entry repeats, and a trailing 0 means the
	// remaining digits form one unbounded group.
	GroupSizes []int

	NegativePattern         int
	CurrencyPositivePattern int
	CurrencyNegativePattern int
}

// Invariant returns the culture-independent default style.
func Invariant() *Style {
	return &Style{
		CurrencySymbol:          "¤",
		PercentSymbol:           "%",
		PerMilleSymbol:          "‰",
		PositiveSign:            "+",
		NegativeSign:            "-",
		GroupSeparator:          ",",
		DecimalSeparator:        ".",
		ExponentSymbol:          "e",
		GroupSizes:              []int{3},
		NegativePattern:         1,
		CurrencyPositivePattern: 0,
		CurrencyNegativePattern: 0,
	}
}

// GroupSizeAt returns the size of the i-th digit group, counting from the
// least significant group. A size of 0 means the group is unbounded.
func (s *Style) GroupSizeAt(i int) int {
	if len(s.GroupSizes) == 0 {
		return 0
	}
	if i < len(s.GroupSizes) {
		return s.GroupSizes[i]
	}
	last := s.GroupSizes[len(s.GroupSizes)-1]
	return last
}
