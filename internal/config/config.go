// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"github.com/ManuGH/belt/internal/ptree"
)

// Environment variables read by the loader.
const (
	EnvModsDir      = "BELT_MODS_DIR"
	EnvLogLevel     = "BELT_LOG_LEVEL"
	EnvOutputFormat = "BELT_OUTPUT_FORMAT"
)

// Output formats accepted by the dump and get commands.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FileConfig represents the YAML configuration structure.
type FileConfig struct {
	ModsDir           string `yaml:"modsDir,omitempty"`
	LogLevel          string `yaml:"logLevel,omitempty"`
	LogConsole        *bool  `yaml:"logConsole,omitempty"`
	OutputFormat      string `yaml:"outputFormat,omitempty"`
	DictionaryPadding *bool  `yaml:"dictionaryPadding,omitempty"`
	MaxDepth          *int   `yaml:"maxDepth,omitempty"`
}

// AppConfig is the effective configuration after defaults, file and
// environment have been merged.
type AppConfig struct {
	ModsDir           string
	LogLevel          string
	LogConsole        bool
	OutputFormat      string
	DictionaryPadding bool
	MaxDepth          int
	Version           string
}

// TreeOptions returns the PropertyTree layout options selected by cfg.
func (c AppConfig) TreeOptions() ptree.Options {
	return ptree.Options{
		DictionaryPadding: c.DictionaryPadding,
		MaxDepth:          c.MaxDepth,
	}
}

// Defaults returns the configuration used when neither file nor
// environment set a value.
func Defaults() AppConfig {
	return AppConfig{
		LogLevel:     "info",
		OutputFormat: FormatYAML,
		MaxDepth:     ptree.DefaultMaxDepth,
	}
}
