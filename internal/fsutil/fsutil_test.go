// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	_, err := SettingsFile(dir)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, os.WriteFile(filepath.Join(dir, modsettings.FileName), []byte{0}, 0o644))
	path, err := SettingsFile(dir)
	require.NoError(t, err)
	assert.Equal(t, modsettings.FileName, filepath.Base(path))
}

func TestSettingsFile_DirectoryIsRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, modsettings.FileName), 0o755))
	_, err := SettingsFile(dir)
	assert.ErrorContains(t, err, "not a regular file")
}

func TestSettingsFile_SymlinkOutsideIsRejected(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "elsewhere.dat")
	require.NoError(t, os.WriteFile(outside, []byte{0}, 0o644))

	dir := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(dir, modsettings.FileName)); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	_, err := SettingsFile(dir)
	assert.ErrorContains(t, err, "escapes root")
}

func TestConfineRelPath_Traversal(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"..", "../x", "a/../../x"} {
		_, err := ConfineRelPath(root, rel)
		assert.Error(t, err, rel)
	}
	_, err := ConfineRelPath(root, "/etc/passwd")
	assert.Error(t, err)

	got, err := ConfineRelPath(root, "sub/../file")
	require.NoError(t, err)
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "file"), got)
}

func TestDefaultModsDirs(t *testing.T) {
	assert.Equal(t,
		[]string{filepath.Join("C:/Users/me/AppData/Roaming", "Factorio", "mods")},
		defaultModsDirs("windows", "", "C:/Users/me/AppData/Roaming"))
	assert.Equal(t,
		[]string{filepath.Join("/Users/me", "Library", "Application Support", "factorio", "mods")},
		defaultModsDirs("darwin", "/Users/me", ""))

	linux := defaultModsDirs("linux", "/home/me", "")
	require.NotEmpty(t, linux)
	assert.Equal(t, filepath.Join("/home/me", ".factorio", "mods"), linux[0])

	assert.Empty(t, defaultModsDirs("linux", "", ""))
}

func TestFindModsDir(t *testing.T) {
	empty := t.TempDir()
	withFile := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(withFile, modsettings.FileName), []byte{0}, 0o644))

	got, err := FindModsDir([]string{filepath.Join(empty, "missing"), empty, withFile})
	require.NoError(t, err)
	assert.Equal(t, withFile, got)

	_, err = FindModsDir([]string{empty})
	assert.ErrorIs(t, err, ErrModsDirNotFound)
}
