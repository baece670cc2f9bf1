package bigint

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// Magnitude kernels. These operate on canonical little-endian word slices,
// know nothing about signs, and always return freshly allocated results
// unless named *InPlace.

// magAdd returns x + y. The result grows by at most one word.
func magAdd(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint32, len(x), len(x)+1)
	var carry uint32
	for i, xi := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = bits.Add32(xi, yi, carry)
	}
	if carry != 0 {
		z = append(z, 1)
	}
	return z
}

// magSub returns x - y. Requires x >= y.
func magSub(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow uint32
	for i, xi := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(xi, yi, borrow)
	}
	return magNorm(z)
}

// magIncInPlace adds one to w, extending it on carry out of the top word.
func magIncInPlace(w []uint32) []uint32 {
	for i := range w {
		w[i]++
		if w[i] != 0 {
			return w
		}
	}
	return append(w, 1)
}

// magDecInPlace subtracts one from w. Requires w non-zero.
func magDecInPlace(w []uint32) []uint32 {
	for i := range w {
		w[i]--
		if w[i] != ^uint32(0) {
			break
		}
	}
	return magNorm(w)
}

// magInc returns w + 1 without touching w.
func magInc(w []uint32) []uint32 {
	z := make([]uint32, len(w), len(w)+1)
	copy(z, w)
	return magIncInPlace(z)
}

// magDec returns w - 1 without touching w. Requires w non-zero.
func magDec(w []uint32) []uint32 {
	z := make([]uint32, len(w))
	copy(z, w)
	return magDecInPlace(z)
}

// magMulWord returns x * w using 64-bit partial products.
func magMulWord(x []uint32, w uint32) []uint32 {
	z := make([]uint32, len(x)+1)
	var carry uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(w) + carry
		z[i] = uint32(t)
		carry = t >> 32
	}
	z[len(x)] = uint32(carry)
	return magNorm(z)
}

// magMulAddWord sets x = x*m + a in place, extending on carry out.
func magMulAddWord(x []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i, xi := range x {
		t := uint64(xi)*uint64(m) + carry
		x[i] = uint32(t)
		carry = t >> 32
	}
	if carry != 0 {
		x = append(x, uint32(carry))
	}
	return x
}

// magMul returns x * y by the schoolbook double loop, accumulating 64-bit
// partial products per word pair.
func magMul(x, y []uint32) []uint32 {
	z := make([]uint32, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		xv := uint64(xi)
		var carry uint64
		for j, yj := range y {
			t := uint64(z[i+j]) + xv*uint64(yj) + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
		z[i+len(y)] = uint32(carry)
	}
	return magNorm(z)
}

// magShl returns x << n.
func magShl(x []uint32, n uint) []uint32 {
	if len(x) == 0 {
		return nil
	}
	words, off := n/32, n%32
	z := make([]uint32, len(x)+int(words)+1)
	if off == 0 {
		copy(z[words:], x)
	} else {
		for i := len(x) - 1; i >= 0; i-- {
			z[uint(i)+words+1] |= x[i] >> (32 - off)
			z[uint(i)+words] |= x[i] << off
		}
	}
	return magNorm(z)
}

// magShr returns x >> n, truncating bits shifted out.
func magShr(x []uint32, n uint) []uint32 {
	words, off := n/32, n%32
	if int(words) >= len(x) {
		return nil
	}
	z := make([]uint32, len(x)-int(words))
	if off == 0 {
		copy(z, x[words:])
	} else {
		for i := range z {
			z[i] = x[int(words)+i] >> off
			if int(words)+i+1 < len(x) {
				z[i] |= x[int(words)+i+1] << (32 - off)
			}
		}
	}
	return magNorm(z)
}

// magIsPow2 reports whether x is a power of two, and if so at which bit.
func magIsPow2(x []uint32) (bit uint, ok bool) {
	if len(x) == 0 {
		return 0, false
	}
	top := x[len(x)-1]
	if top&(top-1) != 0 {
		return 0, false
	}
	for _, w := range x[:len(x)-1] {
		if w != 0 {
			return 0, false
		}
	}
	return uint(len(x)-1)*32 + uint(wordBitLen(top)) - 1, true
}

// magDivModWord returns (x / w, x % w) for a single non-zero divisor word.
// A power-of-two divisor reduces to a right shift plus mask; otherwise the
// quotient is computed word by word against a 64-bit running remainder.
func magDivModWord(x []uint32, w uint32) ([]uint32, uint32) {
	if len(x) == 0 {
		return nil, 0
	}
	if w&(w-1) == 0 {
		r := x[0] & (w - 1)
		return magShr(x, uint(wordBitLen(w))-1), r
	}
	q := make([]uint32, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x[i])
		q[i] = uint32(cur / uint64(w))
		rem = cur % uint64(w)
	}
	return magNorm(q), uint32(rem)
}

// magDivModWordInPlace divides x by w in place and returns the remainder.
// Used by the decimal digit extraction loop. Requires w not a power of two
// guard-free: any non-zero w works.
func magDivModWordInPlace(x []uint32, w uint32) ([]uint32, uint32) {
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x[i])
		x[i] = uint32(cur / uint64(w))
		rem = cur % uint64(w)
	}
	return magNorm(x), uint32(rem)
}

// magDivMod returns (u / v, u % v). Requires v non-zero. Single-word
// divisors take the fast path; the general path is bit-at-a-time restoring
// long division that compares the partial remainder against the divisor at
// each of the dividend's bits, materializing only a divisor-sized
// remainder window.
func magDivMod(u, v []uint32) (q, r []uint32) {
	if len(v) == 1 {
		q, r0 := magDivModWord(u, v[0])
		if r0 != 0 {
			return q, []uint32{r0}
		}
		return q, nil
	}
	if magCmp(u, v) < 0 {
		r = make([]uint32, len(u))
		copy(r, u)
		return nil, r
	}

	q = make([]uint32, len(u))
	rw := make([]uint32, len(v)+1) // remainder window
	rlen := 0
	for i := int(magBitLen(u)) - 1; i >= 0; i-- {
		// Shift the window left one bit, bringing in bit i of u.
		c := u[i>>5] >> (uint(i) & 31) & 1
		for j := 0; j < rlen; j++ {
			nc := rw[j] >> 31
			rw[j] = rw[j]<<1 | c
			c = nc
		}
		if c != 0 {
			rw[rlen] = 1
			rlen++
		}
		if magCmp(rw[:rlen], v) >= 0 {
			var borrow uint32
			for j := 0; j < rlen; j++ {
				var vj uint32
				if j < len(v) {
					vj = v[j]
				}
				rw[j], borrow = bits.Sub32(rw[j], vj, borrow)
			}
			for rlen > 0 && rw[rlen-1] == 0 {
				rlen--
			}
			q[i>>5] |= 1 << (uint(i) & 31)
		}
	}
	r = make([]uint32, rlen)
	copy(r, rw[:rlen])
	return magNorm(q), r
}

// Add returns x + y. Operands of the same sign add magnitudes and keep the
// sign; differing signs subtract the smaller magnitude from the larger and
// take the sign of the larger operand. Fails with ErrOverflow past
// MaxBitLen.
func (x Int) Add(y Int) (Int, error) {
	if x.neg == y.neg {
		return makeInt(magAdd(x.words, y.words), x.neg)
	}
	switch magCmp(x.words, y.words) {
	case 0:
		return Int{}, nil
	case 1:
		return makeInt(magSub(x.words, y.words), x.neg)
	default:
		return makeInt(magSub(y.words, x.words), y.neg)
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) (Int, error) {
	if x.neg != y.neg {
		return makeInt(magAdd(x.words, y.words), x.neg)
	}
	switch magCmp(x.words, y.words) {
	case 0:
		return Int{}, nil
	case 1:
		return makeInt(magSub(x.words, y.words), x.neg)
	default:
		return makeInt(magSub(y.words, x.words), !x.neg)
	}
}

// Mul returns x * y. The sign is the XOR of the operand signs; a
// single-word operand takes a dedicated fast path and a power-of-two
// operand reduces to a shift. Fails with ErrOverflow past MaxBitLen.
func (x Int) Mul(y Int) (Int, error) {
	if x.IsZero() || y.IsZero() {
		return Int{}, nil
	}
	if int64(x.bitLen)+int64(y.bitLen)-1 > MaxBitLen {
		return Int{}, oops.Trace(ErrOverflow)
	}
	neg := x.neg != y.neg
	switch {
	case len(y.words) == 1:
		return mulWord(x.words, y.words[0], neg)
	case len(x.words) == 1:
		return mulWord(y.words, x.words[0], neg)
	}
	return makeInt(magMul(x.words, y.words), neg)
}

func mulWord(m []uint32, w uint32, neg bool) (Int, error) {
	if w&(w-1) == 0 {
		return makeInt(magShl(m, uint(wordBitLen(w))-1), neg)
	}
	return makeInt(magMulWord(m, w), neg)
}

// DivRem returns the quotient and remainder of x / y. Division truncates
// toward zero: the quotient sign is the XOR of the operand signs and the
// remainder takes the dividend's sign. Fails with ErrDivideByZero for a
// zero divisor.
func (x Int) DivRem(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, oops.Trace(ErrDivideByZero)
	}
	if x.IsZero() {
		return Int{}, Int{}, nil
	}
	qw, rw := magDivMod(x.words, y.words)
	return mustMake(qw, x.neg != y.neg), mustMake(rw, x.neg), nil
}

// Div returns the quotient of x / y, truncated toward zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of x / y. Its sign is the dividend's sign.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// In-place operations. Each one re-runs the clone-on-write gate and then
// mutates the receiver's buffer directly, reusing it whenever its capacity
// allows. They exist as an opt-in performance path for exclusive-owner
// accumulator loops; invoking one on a value that shares its buffer with
// another live value through a plain struct copy corrupts that other
// value. On error the receiver is left unspecified.

// UnsafeSet replaces the value of x with y.
func (x *Int) UnsafeSet(y Int) {
	x.makeExclusive()
	x.store(y.Exclusive())
}

// UnsafeIncr adds one to x in place.
func (x *Int) UnsafeIncr() error {
	x.makeExclusive()
	if x.neg {
		x.words = magDecInPlace(x.words)
		if len(x.words) == 0 {
			x.neg = false
		}
	} else {
		x.words = magIncInPlace(x.words)
	}
	bl := magBitLen(x.words)
	if bl > MaxBitLen {
		return oops.Trace(ErrOverflow)
	}
	x.bitLen = int32(bl)
	return nil
}

// UnsafeDecr subtracts one from x in place.
func (x *Int) UnsafeDecr() error {
	x.makeExclusive()
	switch {
	case x.IsZero():
		x.words = append(x.words[:0], 1)
		x.neg = true
	case x.neg:
		x.words = magIncInPlace(x.words)
	default:
		x.words = magDecInPlace(x.words)
	}
	bl := magBitLen(x.words)
	if bl > MaxBitLen {
		return oops.Trace(ErrOverflow)
	}
	x.bitLen = int32(bl)
	return nil
}

// UnsafeAdd sets x = x + y in place.
func (x *Int) UnsafeAdd(y Int) error {
	x.makeExclusive()
	z, err := x.Add(y)
	if err != nil {
		return err
	}
	x.store(z)
	return nil
}

// UnsafeSub sets x = x - y in place.
func (x *Int) UnsafeSub(y Int) error {
	x.makeExclusive()
	z, err := x.Sub(y)
	if err != nil {
		return err
	}
	x.store(z)
	return nil
}

// UnsafeMul sets x = x * y in place.
func (x *Int) UnsafeMul(y Int) error {
	x.makeExclusive()
	z, err := x.Mul(y)
	if err != nil {
		return err
	}
	x.store(z)
	return nil
}

// UnsafeDiv sets x = x / y in place, truncated toward zero.
func (x *Int) UnsafeDiv(y Int) error {
	x.makeExclusive()
	z, err := x.Div(y)
	if err != nil {
		return err
	}
	x.store(z)
	return nil
}
