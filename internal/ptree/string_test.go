// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ptree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteString_EmptyIsSingleFlagByte(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteString(""))
	assert.Equal(t, []byte{1}, w.Bytes())
}

func TestWriteString_Layout(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteString("héllo"))
	// flag, packed length (6 UTF-8 bytes), bytes
	assert.Equal(t, append([]byte{0, 6}, "héllo"...), w.Bytes())
}

func TestWriteString_LongUsesEscapedLength(t *testing.T) {
	s := strings.Repeat("x", 300)
	w := NewWriter(0)
	require.NoError(t, w.WriteString(s))
	assert.Equal(t, []byte{0, 0xFF, 0x2C, 0x01, 0x00, 0x00}, w.Bytes()[:6])
	assert.Equal(t, 306, w.Len())

	got, err := NewReader(w.Bytes()).ReadString()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestReadString_NonZeroFlagIsEmpty(t *testing.T) {
	for _, flag := range []byte{1, 2, 0x7F, 0xFF} {
		r := NewReader([]byte{flag, 0xAA, 0xBB})
		s, err := r.ReadString()
		require.NoError(t, err)
		assert.Empty(t, s)
		assert.Equal(t, 1, r.Offset(), "flag %d must consume exactly one byte", flag)
	}
}

func TestReadString_InvalidUTF8(t *testing.T) {
	r := NewReader([]byte{0, 2, 0xC3, 0x28})
	_, err := r.ReadString()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, 0, r.Offset())
}

func TestReadString_Truncated(t *testing.T) {
	tests := map[string][]byte{
		"no_flag":         {},
		"no_length":       {0},
		"short_body":      {0, 5, 'a', 'b'},
		"short_escape":    {0, 0xFF, 1},
		"huge_length_eof": {0, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, 'a'},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewReader(in)
			_, err := r.ReadString()
			assert.ErrorIs(t, err, ErrUnexpectedEOF)
			assert.Equal(t, 0, r.Offset())
		})
	}
}

func TestWriteString_RejectsInvalidUTF8(t *testing.T) {
	w := NewWriter(0)
	assert.ErrorIs(t, w.WriteString("\xff\xfe"), ErrInvalidUTF8)
	assert.Zero(t, w.Len())
}
