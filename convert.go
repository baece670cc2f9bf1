package bigint

import (
	"math"

	"fortio.org/safecast"
	"github.com/calebcase/oops"

	"github.com/AdamMil/AdamMil.net-sub011/decimal"
)

// FromInt64 returns the value of v.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return fromUint64Mag(u, neg)
}

// FromUint64 returns the value of v.
func FromUint64(v uint64) Int {
	return fromUint64Mag(v, false)
}

// New returns the value of v. It is shorthand for FromInt64.
func New(v int64) Int { return FromInt64(v) }

func fromUint64Mag(u uint64, neg bool) Int {
	switch {
	case u == 0:
		return Int{}
	case u <= math.MaxUint32:
		return Int{words: []uint32{uint32(u)}, bitLen: int32(wordBitLen(uint32(u))), neg: neg}
	default:
		return Int{
			words:  []uint32{uint32(u), uint32(u >> 32)},
			bitLen: int32(32 + wordBitLen(uint32(u>>32))),
			neg:    neg,
		}
	}
}

// low64 returns the low 64 magnitude bits.
func (x Int) low64() uint64 {
	var u uint64
	if len(x.words) > 0 {
		u = uint64(x.words[0])
	}
	if len(x.words) > 1 {
		u |= uint64(x.words[1]) << 32
	}
	return u
}

// Int64 returns x as an int64, failing with ErrOverflow when x is out of
// range.
func (x Int) Int64() (int64, error) {
	if x.bitLen > 64 {
		return 0, oops.Trace(ErrOverflow)
	}
	u := x.low64()
	if x.neg {
		if u > 1<<63 {
			return 0, oops.Trace(ErrOverflow)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, oops.Trace(ErrOverflow)
	}
	return int64(u), nil
}

// Uint64 returns x as a uint64, failing with ErrOverflow when x is
// negative or out of range.
func (x Int) Uint64() (uint64, error) {
	if x.neg || x.bitLen > 64 {
		return 0, oops.Trace(ErrOverflow)
	}
	return x.low64(), nil
}

// The remaining checked conversions widen to 64 bits first and then
// narrow through safecast.

// Int32 returns x as an int32, failing with ErrOverflow when out of range.
func (x Int) Int32() (int32, error) { return narrowSigned[int32](x) }

// Int16 returns x as an int16, failing with ErrOverflow when out of range.
func (x Int) Int16() (int16, error) { return narrowSigned[int16](x) }

// Int8 returns x as an int8, failing with ErrOverflow when out of range.
func (x Int) Int8() (int8, error) { return narrowSigned[int8](x) }

// Uint32 returns x as a uint32, failing with ErrOverflow when negative or
// out of range.
func (x Int) Uint32() (uint32, error) { return narrowUnsigned[uint32](x) }

// Uint16 returns x as a uint16, failing with ErrOverflow when negative or
// out of range.
func (x Int) Uint16() (uint16, error) { return narrowUnsigned[uint16](x) }

// Uint8 returns x as a uint8, failing with ErrOverflow when negative or
// out of range.
func (x Int) Uint8() (uint8, error) { return narrowUnsigned[uint8](x) }

func narrowSigned[T int8 | int16 | int32](x Int) (T, error) {
	v, err := x.Int64()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[T](v)
	if err != nil {
		return 0, oops.Trace(ErrOverflow)
	}
	return n, nil
}

func narrowUnsigned[T uint8 | uint16 | uint32](x Int) (T, error) {
	v, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[T](v)
	if err != nil {
		return 0, oops.Trace(ErrOverflow)
	}
	return n, nil
}

// Truncating conversions. These are the one intentionally lossy, no-error
// path: they take the low N bits of the magnitude and reapply the sign,
// in contrast to the checked forms above which fail with ErrOverflow.

// TruncUint64 returns the low 64 magnitude bits.
func (x Int) TruncUint64() uint64 { return x.low64() }

// TruncInt64 returns the low 64 magnitude bits with the sign reapplied.
func (x Int) TruncInt64() int64 {
	v := int64(x.low64())
	if x.neg {
		v = -v
	}
	return v
}

// TruncUint32 returns the low 32 magnitude bits.
func (x Int) TruncUint32() uint32 {
	if len(x.words) == 0 {
		return 0
	}
	return x.words[0]
}

// TruncInt32 returns the low 32 magnitude bits with the sign reapplied.
func (x Int) TruncInt32() int32 {
	v := int32(x.TruncUint32())
	if x.neg {
		v = -v
	}
	return v
}

// FromFloat64 returns the integer portion of f, truncated toward zero.
// NaN and ±Inf fail with ErrOverflow. The float is decomposed into sign,
// exponent and mantissa and the mantissa is shifted by the exponent.
func FromFloat64(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, oops.Trace(ErrOverflow)
	}
	b := math.Float64bits(f)
	neg := b>>63 == 1
	exp := int(b >> 52 & 0x7ff)
	mant := b & (1<<52 - 1)
	if exp == 0 {
		exp = 1 // subnormal
	} else {
		mant |= 1 << 52
	}
	exp -= 1023 + 52
	return fromMantExp(mant, exp, neg)
}

// FromFloat32 is FromFloat64 for single precision.
func FromFloat32(f float32) (Int, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Int{}, oops.Trace(ErrOverflow)
	}
	b := math.Float32bits(f)
	neg := b>>31 == 1
	exp := int(b >> 23 & 0xff)
	mant := uint64(b & (1<<23 - 1))
	if exp == 0 {
		exp = 1
	} else {
		mant |= 1 << 23
	}
	exp -= 127 + 23
	return fromMantExp(mant, exp, neg)
}

func fromMantExp(mant uint64, exp int, neg bool) (Int, error) {
	if mant == 0 {
		return Int{}, nil
	}
	z := fromUint64Mag(mant, neg)
	switch {
	case exp > 0:
		return z.Shl(exp)
	case exp < 0:
		return z.Shr(-exp)
	}
	return z, nil
}

// Float64 returns x as a float64, accumulating the magnitude words from
// most to least significant. Values longer than 1024 bits saturate to
// ±Inf.
func (x Int) Float64() float64 {
	if x.bitLen > 1024 {
		return math.Inf(x.Sign())
	}
	var f float64
	for i := len(x.words) - 1; i >= 0; i-- {
		f = f*(1<<32) + float64(x.words[i])
	}
	if x.neg {
		f = -f
	}
	return f
}

// Float32 returns x as a float32. Values longer than 128 bits saturate to
// ±Inf.
func (x Int) Float32() float32 {
	if x.bitLen > 128 {
		return float32(math.Inf(x.Sign()))
	}
	return float32(x.Float64())
}

// pow10w holds the powers of ten that fit a single word.
var pow10w = [10]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// FromDecimal returns the integer portion of d, truncated toward zero.
// The 96-bit coefficient becomes the magnitude and the scale is removed by
// dividing in chunks of at most 10^9.
func FromDecimal(d decimal.Value) Int {
	c := d.Coefficient()
	words := magNorm([]uint32{c[0], c[1], c[2]})
	scale := int(d.Scale)
	for scale > 0 && len(words) > 0 {
		k := scale
		if k > 9 {
			k = 9
		}
		words, _ = magDivModWordInPlace(words, pow10w[k])
		scale -= k
	}
	return mustMake(words, d.Neg)
}

// ToDecimal returns x as a scale-0 decimal. Values past 96 significant
// bits fail with ErrOverflow.
func (x Int) ToDecimal() (decimal.Value, error) {
	if x.bitLen > 96 {
		return decimal.Value{}, oops.Trace(ErrOverflow)
	}
	var c [3]uint32
	copy(c[:], x.words)
	return decimal.Value{Lo: c[0], Mid: c[1], Hi: c[2], Neg: x.neg}, nil
}
