// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"math"
)

// DefaultMaxDepth bounds container nesting for untrusted input. Settings
// files nest three or four levels deep.
const DefaultMaxDepth = 64

// minListItemSize is the smallest encoded list item: an empty-key flag
// followed by a None node.
const minListItemSize = 3

// Options selects layout variants and limits for encoding and decoding.
type Options struct {
	// DictionaryPadding reads and writes an extra 0x00 byte after every
	// dictionary entry count. Files written by the game do not have it; an
	// earlier revision of this tool did.
	DictionaryPadding bool

	// MaxDepth is the deepest container nesting accepted. Zero disables the check.
	MaxDepth int
}

// DefaultOptions returns the layout the game itself reads and writes.
func DefaultOptions() Options {
	return Options{
		DictionaryPadding: false,
		MaxDepth:          DefaultMaxDepth,
	}
}

// Decode decodes a single node that must span all of data, using DefaultOptions.
func Decode(data []byte) (Value, error) {
	return DefaultOptions().Decode(data)
}

// Encode encodes v using DefaultOptions.
func Encode(v Value) ([]byte, error) {
	return DefaultOptions().Encode(v)
}

// Decode decodes a single node that must span all of data.
func (o Options) Decode(data []byte) (Value, error) {
	r := NewReader(data)
	v, err := o.ReadValue(r)
	if err != nil {
		return Value{}, err
	}
	if r.Len() != 0 {
		return Value{}, &DecodeError{Offset: r.Offset(), Err: ErrTrailingData}
	}
	return v, nil
}

// Encode returns the encoded form of v.
func (o Options) Encode(v Value) ([]byte, error) {
	w := NewWriter(256)
	if err := o.WriteValue(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// ReadValue decodes the next node from r.
func (o Options) ReadValue(r *Reader) (Value, error) {
	return o.readValue(r, 0)
}

// WriteValue appends the encoded form of v to w.
func (o Options) WriteValue(w *Writer, v Value) error {
	return o.writeValue(w, v, 0)
}

func (o Options) readValue(r *Reader, depth int) (Value, error) {
	start := r.Offset()
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return Value{}, &DecodeError{Offset: start, Err: ErrMaxDepthExceeded}
	}

	tag, err := r.ReadU8()
	if err != nil {
		return Value{}, err
	}
	typ := Type(tag)
	if !typ.Valid() {
		return Value{}, &DecodeError{Offset: start, Err: &InvalidTypeTagError{Value: tag}}
	}
	// Reserved "any type" byte, always 0 in practice and ignored.
	if _, err := r.ReadU8(); err != nil {
		return Value{}, err
	}

	switch typ {
	case TypeNone:
		return None(), nil

	case TypeBool:
		b, err := r.ReadU8()
		if err != nil {
			return Value{}, err
		}
		return Bool(b != 0), nil

	case TypeNumber:
		f, err := r.ReadF64()
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil

	case TypeString:
		s, err := r.ReadString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil

	case TypeList:
		count, err := r.ReadU32()
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, capacityFor(count, r.Len()))
		for i := uint32(0); i < count; i++ {
			// List items carry a key that is always empty.
			if _, err := r.ReadString(); err != nil {
				return Value{}, err
			}
			item, err := o.readValue(r, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil

	case TypeDictionary:
		count, err := r.ReadU32()
		if err != nil {
			return Value{}, err
		}
		if o.DictionaryPadding {
			if _, err := r.ReadU8(); err != nil {
				return Value{}, err
			}
		}
		n := capacityFor(count, r.Len())
		d := &Dict{entries: make([]Entry, 0, n), index: make(map[string]int, n)}
		for i := uint32(0); i < count; i++ {
			keyOffset := r.Offset()
			key, err := r.ReadString()
			if err != nil {
				return Value{}, err
			}
			if key == "" {
				return Value{}, &DecodeError{Offset: keyOffset, Err: ErrMissingDictionaryKey}
			}
			if d.Has(key) {
				return Value{}, &DecodeError{Offset: keyOffset, Err: ErrDuplicateDictionaryKey}
			}
			item, err := o.readValue(r, depth+1)
			if err != nil {
				return Value{}, err
			}
			d.Set(key, item)
		}
		return Dictionary(d), nil

	case TypeSignedInteger:
		i, err := r.ReadI64()
		if err != nil {
			return Value{}, err
		}
		return SignedInteger(i), nil

	case TypeUnsignedInteger:
		u, err := r.ReadU64()
		if err != nil {
			return Value{}, err
		}
		return UnsignedInteger(u), nil
	}

	return Value{}, &DecodeError{Offset: start, Err: &InvalidTypeTagError{Value: tag}}
}

// capacityFor caps a declared element count by what the remaining input could
// possibly hold, so a corrupt count cannot force a huge allocation.
func capacityFor(count uint32, remaining int) int {
	limit := remaining / minListItemSize
	if uint64(count) < uint64(limit) {
		return int(count)
	}
	return limit
}

func (o Options) writeValue(w *Writer, v Value, depth int) error {
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return ErrMaxDepthExceeded
	}
	if !v.typ.Valid() {
		return &InvalidTypeTagError{Value: uint8(v.typ)}
	}

	w.WriteU8(uint8(v.typ))
	w.WriteU8(0)

	switch v.typ {
	case TypeNone:
	case TypeBool:
		if v.b {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
	case TypeNumber:
		w.WriteF64(v.num)
	case TypeString:
		return w.WriteString(v.str)
	case TypeSignedInteger:
		w.WriteI64(v.i64)
	case TypeUnsignedInteger:
		w.WriteU64(v.u64)

	case TypeList:
		if uint64(len(v.list)) > math.MaxUint32 {
			return ErrTooLarge
		}
		w.WriteU32(uint32(len(v.list)))
		for _, item := range v.list {
			if err := w.WriteString(""); err != nil {
				return err
			}
			if err := o.writeValue(w, item, depth+1); err != nil {
				return err
			}
		}

	case TypeDictionary:
		n := v.dict.Len()
		if uint64(n) > math.MaxUint32 {
			return ErrTooLarge
		}
		w.WriteU32(uint32(n))
		if o.DictionaryPadding {
			w.WriteU8(0)
		}
		for key, item := range v.dict.All() {
			if key == "" {
				return ErrMissingDictionaryKey
			}
			if err := w.WriteString(key); err != nil {
				return err
			}
			if err := o.writeValue(w, item, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
