package bigint

import (
	"strconv"
	"strings"

	"github.com/calebcase/oops"

	"github.com/AdamMil/AdamMil.net-sub011/numstyle"
)

// Format renders x under the given verb and style. A nil style means the
// invariant style. Verbs:
//
//	f    fixed
//	e E  scientific
//	g    general (fixed for short values, scientific otherwise)
//	c    currency
//	p    percent (the value times one hundred)
//	x X  hexadecimal
//
// Unknown verbs fail with ErrInvalidInput; 'p' can fail with ErrOverflow.
func (x Int) Format(verb rune, style *numstyle.Style) (string, error) {
	if style == nil {
		style = numstyle.Invariant()
	}
	switch verb {
	case 'f':
		return x.formatFixed(style), nil
	case 'e', 'E':
		return x.formatScientific(style, verb == 'E'), nil
	case 'g':
		return x.formatGeneral(style), nil
	case 'c':
		return x.formatCurrency(style), nil
	case 'p':
		return x.formatPercent(style)
	case 'x', 'X':
		return x.formatHex(style, verb == 'X'), nil
	}
	return "", oops.Trace(ErrInvalidInput)
}

// String renders x in fixed notation with the invariant style.
func (x Int) String() string {
	s, _ := x.Format('f', nil)
	return s
}

// decimalDigits extracts the decimal digits of the magnitude by repeatedly
// dividing a cloned copy by ten and collecting the remainders, most
// significant digit first.
func (x Int) decimalDigits() []byte {
	if x.IsZero() {
		return []byte{'0'}
	}
	m := make([]uint32, len(x.words))
	copy(m, x.words)
	buf := make([]byte, 0, len(m)*10)
	for len(m) > 0 {
		var r uint32
		m, r = magDivModWordInPlace(m, 10)
		buf = append(buf, byte('0'+r))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func (x Int) formatFixed(style *numstyle.Style) string {
	digits := x.decimalDigits()
	if x.neg {
		return style.NegativeSign + string(digits)
	}
	return string(digits)
}

func (x Int) formatScientific(style *numstyle.Style, upper bool) string {
	digits := x.decimalDigits()
	exp := len(digits) - 1
	frac := strings.TrimRight(string(digits[1:]), "0")

	sym := style.ExponentSymbol
	if upper {
		sym = strings.ToUpper(sym)
	}
	var b strings.Builder
	if x.neg {
		b.WriteString(style.NegativeSign)
	}
	b.WriteByte(digits[0])
	if frac != "" {
		b.WriteString(style.DecimalSeparator)
		b.WriteString(frac)
	}
	b.WriteString(sym)
	b.WriteString(style.PositiveSign)
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// generalFixedMax is the digit count up to which 'g' stays in fixed
// notation.
const generalFixedMax = 29

func (x Int) formatGeneral(style *numstyle.Style) string {
	if int(x.bitLen) <= 96 || len(x.decimalDigits()) <= generalFixedMax {
		return x.formatFixed(style)
	}
	return x.formatScientific(style, false)
}

func (x Int) formatCurrency(style *numstyle.Style) string {
	n := groupDigits(string(x.decimalDigits()), style)
	cs := style.CurrencySymbol
	if !x.neg {
		switch style.CurrencyPositivePattern {
		case 1:
			return n + cs
		case 2:
			return cs + " " + n
		case 3:
			return n + " " + cs
		default:
			return cs + n
		}
	}
	neg := style.NegativeSign
	switch style.CurrencyNegativePattern {
	case 1:
		return neg + cs + n
	case 2:
		return cs + neg + n
	case 3:
		return cs + n + neg
	case 4:
		return "(" + n + cs + ")"
	case 5:
		return neg + n + cs
	case 6:
		return n + neg + cs
	case 7:
		return n + cs + neg
	default:
		return "(" + cs + n + ")"
	}
}

func (x Int) formatPercent(style *numstyle.Style) (string, error) {
	scaled, err := x.Mul(FromInt64(100))
	if err != nil {
		return "", err
	}
	n := groupDigits(string(scaled.decimalDigits()), style) + " " + style.PercentSymbol
	if !scaled.neg {
		return n, nil
	}
	return applyNegativePattern(n, style), nil
}

// applyNegativePattern lays out a negative number body per the style's
// number negative pattern.
func applyNegativePattern(n string, style *numstyle.Style) string {
	switch style.NegativePattern {
	case 0:
		return "(" + n + ")"
	case 2:
		return style.NegativeSign + " " + n
	case 3:
		return n + style.NegativeSign
	case 4:
		return n + " " + style.NegativeSign
	default:
		return style.NegativeSign + n
	}
}

const hexLower = "0123456789abcdef"
const hexUpper = "0123456789ABCDEF"

// formatHex walks the words from most to least significant, emitting
// nibbles and suppressing leading zero nibbles in the top word only.
func (x Int) formatHex(style *numstyle.Style, upper bool) string {
	alphabet := hexLower
	if upper {
		alphabet = hexUpper
	}
	var b strings.Builder
	if x.neg {
		b.WriteString(style.NegativeSign)
	}
	b.WriteString("0x")
	if x.IsZero() {
		b.WriteByte('0')
		return b.String()
	}
	started := false
	for i := len(x.words) - 1; i >= 0; i-- {
		for shift := 28; shift >= 0; shift -= 4 {
			nib := x.words[i] >> uint(shift) & 0xf
			if !started && nib == 0 {
				continue
			}
			started = true
			b.WriteByte(alphabet[nib])
		}
	}
	return b.String()
}

// groupDigits inserts the style's group separator per its group size
// list, least significant group first; the last size repeats and a size
// of zero leaves the remaining digits unsplit.
func groupDigits(digits string, style *numstyle.Style) string {
	if style.GroupSeparator == "" || len(style.GroupSizes) == 0 {
		return digits
	}
	var parts []string
	i := len(digits)
	for g := 0; i > 0; g++ {
		size := style.GroupSizeAt(g)
		if size == 0 || size >= i {
			parts = append(parts, digits[:i])
			break
		}
		parts = append(parts, digits[i-size:i])
		i -= size
	}
	for a, b := 0, len(parts)-1; a < b; a, b = a+1, b-1 {
		parts[a], parts[b] = parts[b], parts[a]
	}
	return strings.Join(parts, style.GroupSeparator)
}
