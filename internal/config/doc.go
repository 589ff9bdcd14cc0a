// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads belt configuration.
//
// Precedence is ENV > File > Defaults. The YAML file is parsed strictly:
// unknown keys, multiple documents and trailing content are rejected.
package config
