// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/belt/internal/ptree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvModsDir, EnvLogLevel, EnvOutputFormat} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("", "v1.2.3").Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatYAML, cfg.OutputFormat)
	assert.Equal(t, ptree.DefaultMaxDepth, cfg.MaxDepth)
	assert.False(t, cfg.DictionaryPadding)
	assert.Empty(t, cfg.ModsDir)
	assert.Equal(t, "v1.2.3", cfg.Version)
	assert.Equal(t, ptree.DefaultOptions(), cfg.TreeOptions())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(filepath.Join("testdata", "full.yaml"), "").Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("/srv/factorio/mods"), cfg.ModsDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogConsole)
	assert.Equal(t, FormatJSON, cfg.OutputFormat)
	assert.Equal(t, ptree.Options{DictionaryPadding: true, MaxDepth: 16}, cfg.TreeOptions())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvModsDir, dir)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOutputFormat, "yaml")

	l := NewLoader(filepath.Join("testdata", "full.yaml"), "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ModsDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatYAML, cfg.OutputFormat)
	assert.Equal(t, 16, cfg.MaxDepth, "file value kept where no env override exists")

	for _, key := range []string{EnvModsDir, EnvLogLevel, EnvOutputFormat} {
		assert.Contains(t, l.ConsumedEnvKeys, key)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(filepath.Join("testdata", "empty.yaml"), "").Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_StrictFailures(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(filepath.Join("testdata", "unknown_field.yaml"), "").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownConfigField)
	assert.ErrorContains(t, err, "modDir")

	_, err = NewLoader(filepath.Join("testdata", "multi_doc.yaml"), "").Load()
	assert.ErrorContains(t, err, "multiple documents")

	_, err = NewLoader(filepath.Join("testdata", "missing.yaml"), "").Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	toml := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(toml, []byte("x = 1"), 0o600))
	_, err = NewLoader(toml, "").Load()
	assert.ErrorContains(t, err, "only YAML supported")
}

func TestLoad_ValidationReportsAllProblems(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(filepath.Join("testdata", "invalid.yaml"), "").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "logLevel")
	assert.ErrorContains(t, err, "outputFormat")
	assert.ErrorContains(t, err, "maxDepth")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	assert.Equal(t, filepath.Join(home, "mods"), expandHome("~/mods"))
	assert.Equal(t, "/abs/mods", expandHome("/abs/mods"))
	assert.Equal(t, "rel/~/x", expandHome("rel/~/x"))
}
