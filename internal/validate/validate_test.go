// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 1024, false},
		{"below", 0, true},
		{"above", 1025, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Range("maxDepth", tt.value, 1, 1024)
			assert.Equal(t, !tt.wantErr, v.IsValid())
		})
	}
}

func TestValidator_OneOfAndNotEmpty(t *testing.T) {
	v := New()
	v.OneOf("format", "json", []string{"yaml", "json"})
	v.NotEmpty("key", "x")
	require.True(t, v.IsValid())
	require.NoError(t, v.Err())

	v.OneOf("format", "toml", []string{"yaml", "json"})
	v.NotEmpty("key", "  ")
	require.Len(t, v.Errors(), 2)
	assert.Equal(t, "format", v.Errors()[0].Field)
	assert.Equal(t, "toml", v.Errors()[0].Value)
}

func TestValidator_Custom(t *testing.T) {
	v := New()
	v.Custom("level", "loud", func(any) error { return errors.New("unknown level") })
	assert.EqualError(t, v.Err(), "validation failed for level: unknown level")
}

func TestValidationError_JoinsMessages(t *testing.T) {
	v := New()
	v.AddError("a", "first", nil)
	v.AddError("b", "second", nil)

	err := v.Err()
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors(), 2)
	assert.Equal(t, "validation failed for a: first; validation failed for b: second", err.Error())

	v.AddError("c", "third", nil)
	assert.Len(t, ve.Errors(), 2, "Err returns a snapshot")
}
