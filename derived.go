package bigint

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// Pow returns x raised to n by repeated squaring. Exponents 0 and 1,
// power-of-two bases, and results that provably fit 64 bits each take a
// fast path. The result is negative only when x is negative and n is odd.
func (x Int) Pow(n uint32) (Int, error) {
	switch {
	case n == 0:
		return One(), nil
	case n == 1:
		return x.Exclusive(), nil
	case x.IsZero():
		return Int{}, nil
	}
	neg := x.neg && n&1 == 1

	if bit, ok := magIsPow2(x.words); ok {
		// Closed form: a single set bit at bit*n.
		total := int64(bit) * int64(n)
		if total >= MaxBitLen {
			return Int{}, oops.Trace(ErrOverflow)
		}
		z := pow2(int(total))
		z.neg = neg
		return z, nil
	}

	if x.bitLen <= 32 {
		if v, ok := pow64(uint64(x.words[0]), n); ok {
			return fromUint64Mag(v, neg), nil
		}
	}

	acc := One()
	base := x.Abs()
	var err error
	for e := n; ; {
		if e&1 == 1 {
			if acc, err = acc.Mul(base); err != nil {
				return Int{}, err
			}
		}
		if e >>= 1; e == 0 {
			break
		}
		if base, err = base.Mul(base); err != nil {
			return Int{}, err
		}
	}
	acc.neg = neg
	return acc, nil
}

// pow64 computes b^n in a uint64, reporting false on overflow.
func pow64(b uint64, n uint32) (uint64, bool) {
	r := uint64(1)
	for {
		if n&1 == 1 {
			hi, lo := bits.Mul64(r, b)
			if hi != 0 {
				return 0, false
			}
			r = lo
		}
		if n >>= 1; n == 0 {
			return r, true
		}
		hi, lo := bits.Mul64(b, b)
		if hi != 0 {
			return 0, false
		}
		b = lo
	}
}

// Factorial returns n!, accumulated with the in-place multiply kernel.
func Factorial(n uint32) (Int, error) {
	z := One().Exclusive()
	for i := uint32(2); i <= n; i++ {
		if err := z.UnsafeMul(fromUint64Mag(uint64(i), false)); err != nil {
			return Int{}, err
		}
	}
	return z, nil
}

// GreatestCommonFactor returns gcd(|a|, |b|) by Stein's binary algorithm:
// the common trailing zero bits are peeled off, the remaining operands are
// reduced by halving evens and subtracting-then-halving odds, and the loop
// drops to a fixed-width fast path once both operands fit 64 bits.
// gcd(a, 0) is |a| and gcd(0, 0) is 0.
func GreatestCommonFactor(a, b Int) Int {
	x := append([]uint32(nil), a.words...)
	y := append([]uint32(nil), b.words...)
	switch {
	case len(x) == 0:
		return mustMake(y, false)
	case len(y) == 0:
		return mustMake(x, false)
	}

	shift := magTrailingZeros(x)
	if yz := magTrailingZeros(y); yz < shift {
		shift = yz
	}
	x = magShr(x, uint(magTrailingZeros(x)))
	y = magShr(y, uint(magTrailingZeros(y)))

	// x and y are odd from here on.
	for {
		if len(x) <= 2 && len(y) <= 2 {
			g := gcd64(low64of(x), low64of(y))
			return mustMake(magShl(fromUint64Mag(g, false).words, uint(shift)), false)
		}
		switch magCmp(x, y) {
		case 0:
			return mustMake(magShl(x, uint(shift)), false)
		case -1:
			x, y = y, x
		}
		x = magSub(x, y) // odd minus odd is even
		x = magShr(x, uint(magTrailingZeros(x)))
	}
}

func low64of(words []uint32) uint64 {
	var u uint64
	if len(words) > 0 {
		u = uint64(words[0])
	}
	if len(words) > 1 {
		u |= uint64(words[1]) << 32
	}
	return u
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LeastCommonMultiple returns |a / gcd(a,b) * b|, with 0 when either
// operand is zero. Fails with ErrOverflow when the product would exceed
// MaxBitLen.
func LeastCommonMultiple(a, b Int) (Int, error) {
	if a.IsZero() || b.IsZero() {
		return Int{}, nil
	}
	g := GreatestCommonFactor(a, b)
	q, err := a.Abs().Div(g)
	if err != nil {
		return Int{}, err
	}
	return q.Mul(b.Abs())
}
