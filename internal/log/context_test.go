// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextWithJobID(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		jobID string
		want  string
	}{
		{
			name:  "nil context",
			ctx:   nil,
			jobID: "job-123",
			want:  "job-123",
		},
		{
			name:  "background context",
			ctx:   context.Background(),
			jobID: "job-456",
			want:  "job-456",
		},
		{
			name:  "empty job ID",
			ctx:   context.Background(),
			jobID: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithJobID(tt.ctx, tt.jobID)
			if got := JobIDFromContext(ctx); got != tt.want {
				t.Errorf("JobIDFromContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromContext_NilAndEmpty(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	if l := FromContext(nil); l == nil {
		t.Fatal("FromContext(nil) returned nil")
	}
	if l := FromContext(context.Background()); l.GetLevel() == zerolog.Disabled {
		t.Fatal("FromContext without a logger should fall back to the base logger")
	}
	if JobIDFromContext(nil) != "" || ModsDirFromContext(nil) != "" {
		t.Fatal("nil context should carry no fields")
	}
}

func TestWithContext_AddsJobFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := ContextWithJobID(context.Background(), "job-7")
	ctx = ContextWithModsDir(ctx, "/srv/factorio/mods")

	l := WithContext(ctx, logger)
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry[FieldJobID] != "job-7" {
		t.Errorf("job_id = %v", entry[FieldJobID])
	}
	if entry[FieldModsDir] != "/srv/factorio/mods" {
		t.Errorf("mods_dir = %v", entry[FieldModsDir])
	}
}

func TestWithContext_NoFieldsReturnsSameLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	l := WithContext(context.Background(), logger)
	l.Info().Msg("plain")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := entry[FieldJobID]; ok {
		t.Error("unexpected job_id field")
	}
}
