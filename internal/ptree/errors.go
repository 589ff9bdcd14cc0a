// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnexpectedEOF is returned when the input ends inside a value.
	// It also matches io.ErrUnexpectedEOF.
	ErrUnexpectedEOF = fmt.Errorf("ptree: %w", io.ErrUnexpectedEOF)

	// ErrMissingDictionaryKey is returned for a dictionary entry with an empty key.
	ErrMissingDictionaryKey = errors.New("ptree: missing dictionary key")

	// ErrDuplicateDictionaryKey is returned when a dictionary repeats a key.
	ErrDuplicateDictionaryKey = errors.New("ptree: duplicate dictionary key")

	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("ptree: invalid utf-8 in string")

	// ErrMaxDepthExceeded is returned when nesting exceeds Options.MaxDepth.
	ErrMaxDepthExceeded = errors.New("ptree: maximum nesting depth exceeded")

	// ErrTrailingData is returned by Decode when bytes remain after the root value.
	ErrTrailingData = errors.New("ptree: trailing data after value")

	// ErrTooLarge is returned when a string or container does not fit the
	// format's 32-bit length fields.
	ErrTooLarge = errors.New("ptree: length exceeds 32-bit limit")
)

// InvalidTypeTagError reports a type tag outside 0-7.
type InvalidTypeTagError struct {
	Value uint8
}

func (e *InvalidTypeTagError) Error() string {
	return fmt.Sprintf("ptree: invalid type tag %d", e.Value)
}

// DecodeError attaches the byte offset at which decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
