package bigint

import (
	"bytes"

	"github.com/calebcase/oops"

	"github.com/AdamMil/AdamMil.net-sub011/binio"
)

// The persisted layout is a stable, versionless contract: one uint32
// packing the sign bit and the 31-bit bit length, followed by
// ceil(bitLen/32) little-endian magnitude words, most significant word
// last. Zero is the packed word 0 with no magnitude words.

const signBit = uint32(1) << 31

// Save writes x to w in the packed layout.
func (x Int) Save(w *binio.Writer) (err error) {
	defer Error.WrapP(&err)

	packed := uint32(x.bitLen)
	if x.neg {
		packed |= signBit
	}
	if err := w.WriteUint32(packed); err != nil {
		return err
	}
	for _, word := range x.words {
		if err := w.WriteUint32(word); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a value in the packed layout from r. A header whose bit
// length disagrees with the magnitude words that follow fails with
// ErrFormat.
func Load(r *binio.Reader) (_ Int, err error) {
	defer Error.WrapP(&err)

	packed, err := r.ReadUint32()
	if err != nil {
		return Int{}, err
	}
	neg := packed&signBit != 0
	bl := int64(packed &^ signBit)
	if bl == 0 {
		if neg {
			return Int{}, oops.Trace(ErrFormat)
		}
		return Int{}, nil
	}
	words := make([]uint32, (bl+31)/32)
	for i := range words {
		if words[i], err = r.ReadUint32(); err != nil {
			return Int{}, err
		}
	}
	if magBitLen(words) != bl {
		return Int{}, oops.Trace(ErrFormat)
	}
	return Int{words: words, bitLen: int32(bl), neg: neg}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the packed
// layout.
func (x Int) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := x.Save(binio.NewWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) error {
	z, err := Load(binio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return err
	}
	*x = z
	return nil
}
