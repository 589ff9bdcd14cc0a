// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	"github.com/ManuGH/belt/internal/validate"
	"github.com/rs/zerolog"
)

// maxTreeDepth bounds the configurable decoder depth limit.
const maxTreeDepth = 1024

// Validate checks the merged configuration. All problems are reported
// together, wrapped with ErrInvalidConfig.
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.Custom("logLevel", cfg.LogLevel, func(any) error {
		_, err := zerolog.ParseLevel(cfg.LogLevel)
		return err
	})
	v.OneOf("outputFormat", cfg.OutputFormat, []string{FormatYAML, FormatJSON})
	v.Range("maxDepth", int64(cfg.MaxDepth), 1, maxTreeDepth)

	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
