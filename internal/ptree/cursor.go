// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"encoding/binary"
	"math"
)

// packedEscape marks a packed integer whose value follows as a 4-byte uint32.
const packedEscape = 0xFF

// Reader is a sequential little-endian cursor over an in-memory buffer.
// A failed read leaves the cursor where it was.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, &DecodeError{Offset: r.off, Err: ErrUnexpectedEOF}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadBytes returns the next n bytes. The slice aliases the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian two's complement int64.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadF64 reads a little-endian IEEE-754 double.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadPackedUint reads the 1-or-5 byte packed unsigned integer: a single byte
// below 255 is the value itself, 255 means a uint32 follows.
func (r *Reader) ReadPackedUint() (uint32, error) {
	start := r.off
	first, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if first != packedEscape {
		return uint32(first), nil
	}
	v, err := r.ReadU32()
	if err != nil {
		r.off = start
		return 0, err
	}
	return v, nil
}

// Writer accumulates little-endian encoded values.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the encoded bytes. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteI64 appends a little-endian int64.
func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

// WriteF64 appends a little-endian IEEE-754 double.
func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WritePackedUint appends v as a packed unsigned integer, the inverse of
// Reader.ReadPackedUint.
func (w *Writer) WritePackedUint(v uint32) {
	if v < packedEscape {
		w.WriteU8(uint8(v))
		return
	}
	w.WriteU8(packedEscape)
	w.WriteU32(v)
}
