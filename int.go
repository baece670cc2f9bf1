package bigint

import (
	"math"
	"math/bits"

	"github.com/calebcase/oops"
)

// MaxBitLen is the largest representable magnitude bit length. Any
// operation whose result would need more bits fails with ErrOverflow.
const MaxBitLen = math.MaxInt32

// maxWords is the word count of a magnitude at MaxBitLen.
const maxWords = (MaxBitLen + 31) / 32

// Int is an arbitrary-precision signed integer. The magnitude is stored as
// 32-bit words, least significant first, with no high zero words; zero is
// the empty magnitude. The bit length of the magnitude is cached and never
// stale.
//
// Values are immutable by convention: every ordinary operation allocates a
// fresh result, so a value may be read concurrently from any number of
// goroutines. The backing buffer may however be shared between values
// (package constants, Abs/Neg views, plain struct copies). The Unsafe*
// methods mutate in place and are only sound on a buffer with a single
// owner; see Exclusive.
type Int struct {
	words  []uint32
	bitLen int32
	neg    bool

	// shared marks buffers known to alias another value (package
	// singletons and derived views). Unsafe* methods clone such buffers
	// before mutating. A plain struct copy aliases without setting this
	// flag; mutating one of the copies corrupts the other. That hazard
	// is documented, not prevented.
	shared bool
}

// Package singletons. They all share their single backing buffers, so the
// clone-on-write gate in the Unsafe* methods keeps them intact.
var (
	oneWords = []uint32{1}
	twoWords = []uint32{2}
	tenWords = []uint32{10}

	intZero     = Int{}
	intOne      = Int{words: oneWords, bitLen: 1, shared: true}
	intTwo      = Int{words: twoWords, bitLen: 2, shared: true}
	intTen      = Int{words: tenWords, bitLen: 4, shared: true}
	intMinusOne = Int{words: oneWords, bitLen: 1, neg: true, shared: true}
)

// Zero returns the canonical zero value.
func Zero() Int { return intZero }

// One returns the shared constant 1.
func One() Int { return intOne }

// Two returns the shared constant 2.
func Two() Int { return intTwo }

// Ten returns the shared constant 10.
func Ten() Int { return intTen }

// MinusOne returns the shared constant -1. It aliases the same buffer as
// One.
func MinusOne() Int { return intMinusOne }

// wordBitLen returns the number of significant bits in w.
func wordBitLen(w uint32) int {
	return bits.Len32(w)
}

// magBitLen walks down from the top word to the first non-zero word and
// returns the total significant bit count. The result can exceed MaxBitLen
// for a denormalized intermediate, hence int64.
func magBitLen(words []uint32) int64 {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return int64(i)*32 + int64(wordBitLen(words[i]))
		}
	}
	return 0
}

// magNorm trims high zero words, returning the canonical slice.
func magNorm(words []uint32) []uint32 {
	i := len(words)
	for i > 0 && words[i-1] == 0 {
		i--
	}
	return words[:i]
}

// makeInt canonicalizes words and attaches the sign. The sign is dropped
// for a zero magnitude. Fails with ErrOverflow past MaxBitLen. The slice
// is owned by the result; callers must not retain it.
func makeInt(words []uint32, neg bool) (Int, error) {
	words = magNorm(words)
	if len(words) == 0 {
		return Int{}, nil
	}
	bl := magBitLen(words)
	if bl > MaxBitLen {
		return Int{}, oops.Trace(ErrOverflow)
	}
	return Int{words: words, bitLen: int32(bl), neg: neg}, nil
}

// mustMake is makeInt for results that cannot exceed the bit ceiling
// (trims, comparisons, right shifts).
func mustMake(words []uint32, neg bool) Int {
	z, err := makeInt(words, neg)
	if err != nil {
		panic("bigint: unreachable overflow")
	}
	return z
}

// FromWords constructs a value from a raw little-endian word array and a
// sign flag. High zero words are trimmed and the sign is ignored when the
// magnitude is zero. The input slice is copied.
func FromWords(words []uint32, negative bool) (Int, error) {
	words = magNorm(words)
	if len(words) > maxWords {
		return Int{}, oops.Trace(ErrOverflow)
	}
	buf := make([]uint32, len(words))
	copy(buf, words)
	return makeInt(buf, negative)
}

// Exclusive returns a copy of x backed by a freshly allocated buffer that
// no other value aliases. Obtain one before calling any Unsafe* method on
// a value that may share storage.
func (x Int) Exclusive() Int {
	if len(x.words) == 0 {
		return Int{neg: false}
	}
	buf := make([]uint32, len(x.words))
	copy(buf, x.words)
	return Int{words: buf, bitLen: x.bitLen, neg: x.neg}
}

// makeExclusive is the clone-on-write gate run by every Unsafe* method: if
// the buffer is a known shared one, replace it with a private copy. It
// cannot detect aliasing through plain struct copies.
func (x *Int) makeExclusive() {
	if x.shared {
		*x = x.Exclusive()
	}
}

// store replaces x with z, reusing x's exclusive buffer when it has the
// capacity.
func (x *Int) store(z Int) {
	if cap(x.words) >= len(z.words) && !x.shared {
		x.words = x.words[:len(z.words)]
		copy(x.words, z.words)
	} else {
		x.words = z.words
	}
	x.bitLen = z.bitLen
	x.neg = z.neg
	x.shared = false
}

// Sign returns -1, 0, or +1.
func (x Int) Sign() int {
	switch {
	case len(x.words) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return len(x.words) == 0 }

// IsNegative reports whether x is strictly negative.
func (x Int) IsNegative() bool { return x.neg }

// IsEven reports whether x is even. Zero is even.
func (x Int) IsEven() bool {
	return len(x.words) == 0 || x.words[0]&1 == 0
}

// BitLen returns the number of significant bits in the magnitude of x.
// The bit length of zero is 0.
func (x Int) BitLen() int { return int(x.bitLen) }

// Words returns a copy of the little-endian magnitude words of x. The
// result is empty for zero.
func (x Int) Words() []uint32 {
	out := make([]uint32, len(x.words))
	copy(out, x.words)
	return out
}

// Abs returns |x|. The result shares x's buffer and is flagged shared.
func (x Int) Abs() Int {
	x.neg = false
	x.shared = true
	return x
}

// Neg returns -x. The result shares x's buffer and is flagged shared.
func (x Int) Neg() Int {
	if len(x.words) != 0 {
		x.neg = !x.neg
	}
	x.shared = true
	return x
}

// magCmp compares two canonical magnitudes, returning -1, 0 or +1.
func magCmp(x, y []uint32) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, +1 if x > y.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	c := magCmp(x.words, y.words)
	if xs < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int {
	return magCmp(x.words, y.words)
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }
