// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldJobID = "job_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldProfile   = "profile"

	// Settings fields
	FieldScope   = "scope"
	FieldKey     = "key"
	FieldKind    = "kind"
	FieldVersion = "map_version"

	// Path fields
	FieldPath    = "path"
	FieldModsDir = "mods_dir"
)
