// Package binio provides a thin little-endian binary reader and writer
// over an io.Reader/io.Writer pair. It exposes exactly the fixed-width
// primitives the numeric persistence layer needs; buffering, seeking, and
// timeouts are the underlying stream's business.
package binio

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("binio")

// Writer writes fixed-width little-endian values to an io.Writer.
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter returns a new writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteUint32 writes v as 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	if _, err := w.w.Write(w.buf[:4]); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// WriteUint64 writes v as 8 little-endian bytes.
func (w *Writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	if _, err := w.w.Write(w.buf[:8]); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) error {
	if _, err := w.w.Write(p); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// Reader reads fixed-width little-endian values from an io.Reader.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader returns a new reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadUint32 reads 4 little-endian bytes. A short stream fails with an
// error wrapping io.ErrUnexpectedEOF (or io.EOF when nothing was read).
func (r *Reader) ReadUint32() (uint32, error) {
	if _, err := io.ReadFull(r.r, r.buf[:4]); err != nil {
		return 0, Error.Wrap(err)
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

// ReadUint64 reads 8 little-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	if _, err := io.ReadFull(r.r, r.buf[:8]); err != nil {
		return 0, Error.Wrap(err)
	}
	return binary.LittleEndian.Uint64(r.buf[:8]), nil
}

// ReadBytes fills p from the stream.
func (r *Reader) ReadBytes(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return Error.Wrap(err)
	}
	return nil
}
