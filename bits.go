package bigint

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// The value is stored as sign+magnitude, but the bitwise operators behave
// as if it were an infinite-precision two's-complement number. Rather than
// materializing a sign-extended two's-complement buffer, the words of a
// negative operand are transformed one at a time (subtract one, then
// invert) with the borrow threaded through twosWord/untwosWord.

// twosWord returns the next magnitude word of a negative value as it would
// appear in two's complement, threading the "still borrowing" state from
// the less significant words. The borrow starts true. Words past the end
// of the magnitude come out as all ones (sign extension).
func twosWord(w uint32, borrow *bool) uint32 {
	if *borrow {
		*borrow = w == 0
		return ^(w - 1)
	}
	return ^w
}

// untwosWord is the inverse transform, rebuilding magnitude words from the
// two's-complement words of a negative result. The carry starts true.
func untwosWord(w uint32, carry *bool) uint32 {
	t := ^w
	if *carry {
		t++
		*carry = t == 0
	}
	return t
}

func wordAt(words []uint32, i int) uint32 {
	if i < len(words) {
		return words[i]
	}
	return 0
}

// pow2 returns 2^bit.
func pow2(bit int) Int {
	words := make([]uint32, bit/32+1)
	words[bit/32] = 1 << (uint(bit) % 32)
	return Int{words: words, bitLen: int32(bit) + 1}
}

// Bit returns bit i of x in the infinite two's-complement view: for
// non-negative values bits past the end read 0, for negative values they
// read 1. Fails with ErrInvalidInput for a negative index.
func (x Int) Bit(i int) (bool, error) {
	if i < 0 {
		return false, oops.Trace(ErrInvalidInput)
	}
	if !x.neg {
		if i >= int(x.bitLen) {
			return false, nil
		}
		return x.words[i/32]>>(uint(i)%32)&1 == 1, nil
	}
	if i >= int(x.bitLen) {
		return true, nil
	}
	borrow := true
	var w uint32
	for j := 0; j <= i/32; j++ {
		w = twosWord(x.words[j], &borrow)
	}
	return w>>(uint(i)%32)&1 == 1, nil
}

// SetBit returns x with bit i of the two's-complement view set to v.
// Setting a bit beyond the current length grows the magnitude; clearing
// the highest set bit shrinks it, with the bit length recomputed either
// way. Fails with ErrInvalidInput for a negative index and ErrOverflow
// when the result would exceed MaxBitLen.
func (x Int) SetBit(i int, v bool) (Int, error) {
	cur, err := x.Bit(i)
	if err != nil {
		return Int{}, err
	}
	if cur == v {
		return x.Exclusive(), nil
	}
	if i >= MaxBitLen {
		return Int{}, oops.Trace(ErrOverflow)
	}
	if v {
		return x.Add(pow2(i))
	}
	return x.Sub(pow2(i))
}

// Not returns ^x, which in infinite precision is -(x + 1). It is computed
// by incrementing or decrementing the magnitude and flipping the sign.
func (x Int) Not() (Int, error) {
	if x.neg {
		return makeInt(magDec(x.words), false)
	}
	return makeInt(magInc(x.words), true)
}

// And returns x & y of the two's-complement views. The result is negative
// iff both operands are negative.
func (x Int) And(y Int) (Int, error) {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	neg := x.neg && y.neg
	z := make([]uint32, n, n+1)
	xb, yb := true, true
	for i := 0; i < n; i++ {
		xw, yw := wordAt(x.words, i), wordAt(y.words, i)
		if x.neg {
			xw = twosWord(xw, &xb)
		}
		if y.neg {
			yw = twosWord(yw, &yb)
		}
		z[i] = xw & yw
	}
	if neg {
		z = fromTwos(z)
	}
	return makeInt(z, neg)
}

// Or returns x | y of the two's-complement views. The result is negative
// iff either operand is negative.
func (x Int) Or(y Int) (Int, error) {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	neg := x.neg || y.neg
	z := make([]uint32, n, n+1)
	xb, yb := true, true
	for i := 0; i < n; i++ {
		xw, yw := wordAt(x.words, i), wordAt(y.words, i)
		if x.neg {
			xw = twosWord(xw, &xb)
		}
		if y.neg {
			yw = twosWord(yw, &yb)
		}
		z[i] = xw | yw
	}
	if neg {
		z = fromTwos(z)
	}
	return makeInt(z, neg)
}

// Xor returns x ^ y of the two's-complement views. The result is negative
// iff exactly one operand is negative.
func (x Int) Xor(y Int) (Int, error) {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	neg := x.neg != y.neg
	z := make([]uint32, n, n+1)
	xb, yb := true, true
	for i := 0; i < n; i++ {
		xw, yw := wordAt(x.words, i), wordAt(y.words, i)
		if x.neg {
			xw = twosWord(xw, &xb)
		}
		if y.neg {
			yw = twosWord(yw, &yb)
		}
		z[i] = xw ^ yw
	}
	if neg {
		z = fromTwos(z)
	}
	return makeInt(z, neg)
}

// fromTwos recovers the sign-magnitude words of a negative result from its
// low two's-complement words, applying the inverse transform.
func fromTwos(z []uint32) []uint32 {
	carry := true
	for i := range z {
		z[i] = untwosWord(z[i], &carry)
	}
	if carry {
		z = append(z, 1)
	}
	return z
}

// Shl returns x << n, growing the bit length by n. Fails with ErrOverflow
// past MaxBitLen and ErrInvalidInput for a negative count.
func (x Int) Shl(n int) (Int, error) {
	if n < 0 {
		return Int{}, oops.Trace(ErrInvalidInput)
	}
	if x.IsZero() {
		return Int{}, nil
	}
	if int64(x.bitLen)+int64(n) > MaxBitLen {
		return Int{}, oops.Trace(ErrOverflow)
	}
	return makeInt(magShl(x.words, uint(n)), x.neg)
}

// Shr returns x >> n by truncating the magnitude. For negative values
// this truncates toward zero rather than flooring the way a true
// two's-complement arithmetic shift would: -5 >> 1 is -2, not -3. Fails
// with ErrInvalidInput for a negative count.
func (x Int) Shr(n int) (Int, error) {
	if n < 0 {
		return Int{}, oops.Trace(ErrInvalidInput)
	}
	if x.IsZero() || n == 0 {
		return x.Exclusive(), nil
	}
	return makeInt(magShr(x.words, uint(n)), x.neg)
}

// TrailingZeros returns the number of zero bits above bit 0 before the
// first set bit of the magnitude, or 0 for a zero value.
func (x Int) TrailingZeros() int {
	return magTrailingZeros(x.words)
}

func magTrailingZeros(words []uint32) int {
	for i, w := range words {
		if w != 0 {
			return i*32 + bits.TrailingZeros32(w)
		}
	}
	return 0
}
