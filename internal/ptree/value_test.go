// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_SetKeepsPositionAndDeleteReindexes(t *testing.T) {
	d := NewDict(
		Entry{"a", SignedInteger(1)},
		Entry{"b", SignedInteger(2)},
		Entry{"c", SignedInteger(3)},
	)

	prev, replaced := d.Set("b", String("two"))
	require.True(t, replaced)
	assert.True(t, prev.Equal(SignedInteger(2)))
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())

	_, replaced = d.Set("d", None())
	assert.False(t, replaced)
	assert.Equal(t, []string{"a", "b", "c", "d"}, d.Keys())

	removed, ok := d.Delete("a")
	require.True(t, ok)
	assert.True(t, removed.Equal(SignedInteger(1)))
	assert.Equal(t, []string{"b", "c", "d"}, d.Keys())

	v, ok := d.Get("c")
	require.True(t, ok)
	assert.True(t, v.Equal(SignedInteger(3)))

	_, ok = d.Delete("a")
	assert.False(t, ok)
	assert.Equal(t, 3, d.Len())
}

func TestDict_NilIsEmpty(t *testing.T) {
	var d *Dict
	assert.Zero(t, d.Len())
	assert.False(t, d.Has("x"))
	assert.Nil(t, d.Keys())
	for range d.All() {
		t.Fatal("nil dict must not yield")
	}
	assert.True(t, d.Equal(NewDict()))
}

func TestDict_AllStopsEarly(t *testing.T) {
	d := NewDict(Entry{"a", None()}, Entry{"b", None()}, Entry{"c", None()})
	var seen []string
	for k := range d.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestValue_EqualIsOrderSensitiveForDictionaries(t *testing.T) {
	ab := Dictionary(NewDict(Entry{"a", None()}, Entry{"b", None()}))
	ba := Dictionary(NewDict(Entry{"b", None()}, Entry{"a", None()}))
	assert.False(t, ab.Equal(ba))
	assert.True(t, ab.Equal(ab))
}

func TestValue_Accessors(t *testing.T) {
	v := SignedInteger(7)
	_, ok := v.AsUnsignedInteger()
	assert.False(t, ok)
	i, ok := v.AsSignedInteger()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	var zero Value
	assert.True(t, zero.IsNone())
	assert.Equal(t, TypeNone, zero.Type())

	_, ok = String("x").AsDict()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	v := Dictionary(NewDict(
		Entry{"n", Number(1.5)},
		Entry{"l", List(Bool(true), UnsignedInteger(3), None())},
		Entry{"s", String("x")},
	))
	assert.Equal(t, `{"n": 1.5, "l": [true, 3u, none], "s": "x"}`, v.String())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "dictionary", TypeDictionary.String())
	assert.Equal(t, "type(9)", Type(9).String())
	assert.False(t, Type(8).Valid())
}
