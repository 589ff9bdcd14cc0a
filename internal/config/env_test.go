// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		envSet bool
		want   string
		source string
	}{
		{name: "environment variable set", env: "from-env", envSet: true, want: "from-env", source: "environment"},
		{name: "environment variable not set", want: "default", source: "default"},
		{name: "environment variable empty string", env: "", envSet: true, want: "default", source: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "BELT_TEST_STRING"
			if tt.envSet {
				t.Setenv(key, tt.env)
			}

			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
			got := parseStringWithLogger(logger, key, "default")

			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), `"source":"`+tt.source+`"`)
		})
	}
}
