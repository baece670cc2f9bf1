// Package decimal provides a fixed point base 10 number with a 96-bit
// coefficient.
//
// The equation for a decimal number is:
//
//	number = coefficient * 10 ^ -scale
//
// Where coefficient is an unsigned 96-bit integer held in three little
// endian 32-bit words and scale is between 0 and 28. For example:
//
//	1.23 = 123 * 10^-2
package decimal

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

// ErrScale marks a scale outside the 0..28 range.
var ErrScale = Error.New("scale out of range")

// MaxScale is the largest representable power-of-ten scale.
const MaxScale = 28

// Value is a fixed point base 10 decimal number.
type Value struct {
	// Lo, Mid, Hi are the little-endian words of the 96-bit coefficient.
	Lo, Mid, Hi uint32

	// Scale is the power of ten the coefficient is divided by, 0..28.
	Scale uint8

	// Neg is the sign. A zero coefficient may still carry Neg, which
	// consumers treat as positive zero.
	Neg bool
}

// New returns a value with the given coefficient words, scale, and sign.
func New(lo, mid, hi uint32, scale uint8, neg bool) (Value, error) {
	if scale > MaxScale {
		return Value{}, ErrScale
	}
	return Value{Lo: lo, Mid: mid, Hi: hi, Scale: scale, Neg: neg}, nil
}

// Coefficient returns the little-endian coefficient words.
func (v Value) Coefficient() [3]uint32 {
	return [3]uint32{v.Lo, v.Mid, v.Hi}
}

// IsZero reports whether the coefficient is zero, regardless of sign and
// scale.
func (v Value) IsZero() bool {
	return v.Lo == 0 && v.Mid == 0 && v.Hi == 0
}

// String formats the value in plain decimal notation with '.' as the
// separator, keeping the trailing zeros implied by the scale: a value of
// 1230 at scale 2 formats as "12.30".
func (v Value) String() string {
	digits := coeffDigits([3]uint32{v.Lo, v.Mid, v.Hi})
	for len(digits) <= int(v.Scale) {
		digits = append([]byte{'0'}, digits...)
	}
	var out []byte
	if v.Neg && !v.IsZero() {
		out = append(out, '-')
	}
	split := len(digits) - int(v.Scale)
	out = append(out, digits[:split]...)
	if v.Scale > 0 {
		out = append(out, '.')
		out = append(out, digits[split:]...)
	}
	return string(out)
}

// coeffDigits converts the coefficient to decimal digits by repeated
// division by ten.
func coeffDigits(w [3]uint32) []byte {
	if w[0] == 0 && w[1] == 0 && w[2] == 0 {
		return []byte{'0'}
	}
	var buf []byte
	for w[0] != 0 || w[1] != 0 || w[2] != 0 {
		var rem uint64
		for i := 2; i >= 0; i-- {
			cur := rem<<32 | uint64(w[i])
			w[i] = uint32(cur / 10)
			rem = cur % 10
		}
		buf = append(buf, byte('0'+rem))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
