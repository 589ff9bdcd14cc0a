// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Type is the on-disk type tag of a node.
type Type uint8

const (
	TypeNone Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeList
	TypeDictionary
	TypeSignedInteger
	TypeUnsignedInteger
)

// Valid reports whether t is one of the eight defined tags.
func (t Type) Valid() bool {
	return t <= TypeUnsignedInteger
}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeDictionary:
		return "dictionary"
	case TypeSignedInteger:
		return "signed-integer"
	case TypeUnsignedInteger:
		return "unsigned-integer"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a PropertyTree node. The zero Value is None.
type Value struct {
	typ Type

	// Scalar payloads (only the one matching typ is meaningful)
	b   bool
	num float64
	str string
	i64 int64
	u64 uint64

	// Container payloads
	list []Value
	dict *Dict
}

// None returns the empty node.
func None() Value { return Value{} }

// Bool returns a Bool node.
func Bool(v bool) Value { return Value{typ: TypeBool, b: v} }

// Number returns a Number (float64) node.
func Number(v float64) Value { return Value{typ: TypeNumber, num: v} }

// String returns a String node.
func String(v string) Value { return Value{typ: TypeString, str: v} }

// SignedInteger returns a SignedInteger node.
func SignedInteger(v int64) Value { return Value{typ: TypeSignedInteger, i64: v} }

// UnsignedInteger returns an UnsignedInteger node.
func UnsignedInteger(v uint64) Value { return Value{typ: TypeUnsignedInteger, u64: v} }

// List returns a List node holding items in order.
func List(items ...Value) Value {
	return Value{typ: TypeList, list: items}
}

// Dictionary returns a Dictionary node. A nil d is an empty dictionary.
func Dictionary(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}
	return Value{typ: TypeDictionary, dict: d}
}

// Type returns the node's type tag.
func (v Value) Type() Type { return v.typ }

// IsNone reports whether v is the None node.
func (v Value) IsNone() bool { return v.typ == TypeNone }

// AsBool returns the payload of a Bool node; ok is false for other types.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.typ == TypeBool }

// AsNumber returns the payload of a Number node.
func (v Value) AsNumber() (f float64, ok bool) { return v.num, v.typ == TypeNumber }

// AsString returns the payload of a String node.
func (v Value) AsString() (s string, ok bool) { return v.str, v.typ == TypeString }

// AsSignedInteger returns the payload of a SignedInteger node.
func (v Value) AsSignedInteger() (i int64, ok bool) { return v.i64, v.typ == TypeSignedInteger }

// AsUnsignedInteger returns the payload of an UnsignedInteger node.
func (v Value) AsUnsignedInteger() (u uint64, ok bool) { return v.u64, v.typ == TypeUnsignedInteger }

// AsList returns the list items. The slice is shared with v.
func (v Value) AsList() ([]Value, bool) {
	if v.typ != TypeList {
		return nil, false
	}
	return v.list, true
}

// AsDict returns the dictionary. The Dict is shared with v.
func (v Value) AsDict() (*Dict, bool) {
	if v.typ != TypeDictionary {
		return nil, false
	}
	return v.dict, true
}

// Equal reports whether v and o are the same tree. Numbers are compared by
// bit pattern and dictionaries by key order as well as content, which is the
// equality that byte-exact encoding observes.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeNone:
		return true
	case TypeBool:
		return v.b == o.b
	case TypeNumber:
		return math.Float64bits(v.num) == math.Float64bits(o.num)
	case TypeString:
		return v.str == o.str
	case TypeSignedInteger:
		return v.i64 == o.i64
	case TypeUnsignedInteger:
		return v.u64 == o.u64
	case TypeList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case TypeDictionary:
		return v.dict.Equal(o.dict)
	}
	return false
}

// String renders v in a compact, human-readable form for diagnostics.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.typ {
	case TypeNone:
		sb.WriteString("none")
	case TypeBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case TypeNumber:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case TypeString:
		sb.WriteString(strconv.Quote(v.str))
	case TypeSignedInteger:
		sb.WriteString(strconv.FormatInt(v.i64, 10))
	case TypeUnsignedInteger:
		sb.WriteString(strconv.FormatUint(v.u64, 10))
		sb.WriteByte('u')
	case TypeList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.format(sb)
		}
		sb.WriteByte(']')
	case TypeDictionary:
		sb.WriteByte('{')
		for i, e := range v.dict.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(e.Key))
			sb.WriteString(": ")
			e.Value.format(sb)
		}
		sb.WriteByte('}')
	default:
		fmt.Fprintf(sb, "<%s>", v.typ)
	}
}

// Entry is one key/value pair of a Dict.
type Entry struct {
	Key   string
	Value Value
}

// Dict is an insertion-ordered string-keyed map of nodes.
// The nil *Dict behaves as an empty, read-only dictionary.
type Dict struct {
	entries []Entry
	index   map[string]int
}

// NewDict returns a dictionary holding entries in order. A repeated key
// overwrites the earlier value in place.
func NewDict(entries ...Entry) *Dict {
	d := &Dict{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Value{}, false
	}
	return d.entries[i].Value, true
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores v under key. An existing key keeps its position; a new key is
// appended. It returns the previous value, if any.
func (d *Dict) Set(key string, v Value) (Value, bool) {
	if i, ok := d.index[key]; ok {
		prev := d.entries[i].Value
		d.entries[i].Value = v
		return prev, true
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Value: v})
	return Value{}, false
}

// Delete removes key and returns the removed value, if any.
func (d *Dict) Delete(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Value{}, false
	}
	prev := d.entries[i].Value
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.entries); j++ {
		d.index[d.entries[j].Key] = j
	}
	return prev, true
}

// Keys returns the keys in order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates the entries in order.
func (d *Dict) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}
		for _, e := range d.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Equal reports whether d and o hold the same entries in the same order.
func (d *Dict) Equal(o *Dict) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i := 0; i < d.Len(); i++ {
		a, b := d.entries[i], o.entries[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}
