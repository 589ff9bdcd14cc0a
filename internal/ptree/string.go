// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"math"
	"unicode/utf8"
)

// String layout: a flag byte, 0 for "a length and bytes follow" and anything
// else for the empty string. Empty strings are always written as a single 1.
const (
	stringPresent = 0
	stringEmpty   = 1
)

// ReadString reads a flag-prefixed, packed-length UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	start := r.off
	flag, err := r.ReadU8()
	if err != nil {
		return "", err
	}
	if flag != stringPresent {
		return "", nil
	}
	n, err := r.ReadPackedUint()
	if err != nil {
		r.off = start
		return "", err
	}
	if uint64(n) > uint64(r.Len()) {
		r.off = start
		return "", &DecodeError{Offset: start, Err: ErrUnexpectedEOF}
	}
	b, err := r.take(int(n))
	if err != nil {
		r.off = start
		return "", err
	}
	if !utf8.Valid(b) {
		r.off = start
		return "", &DecodeError{Offset: start, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

// WriteString appends s in the string layout.
func (w *Writer) WriteString(s string) error {
	if s == "" {
		w.WriteU8(stringEmpty)
		return nil
	}
	if uint64(len(s)) > math.MaxUint32 {
		return ErrTooLarge
	}
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	w.WriteU8(stringPresent)
	w.WritePackedUint(uint32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}
