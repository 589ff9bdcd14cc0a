// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package fsutil locates mods directories and the settings file inside them.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ManuGH/belt/internal/modsettings"
)

// ErrModsDirNotFound is returned when no default mods directory holds a settings file.
var ErrModsDirNotFound = errors.New("no mods directory with mod-settings.dat found")

// SettingsFile returns the settings file path inside modsDir after checking
// that it resolves below modsDir and is a regular file.
func SettingsFile(modsDir string) (string, error) {
	path, err := ConfineRelPath(modsDir, modsettings.FileName)
	if err != nil {
		return "", fmt.Errorf("resolve settings file: %w", err)
	}
	if err := IsRegularFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// DefaultModsDirs returns the game's per-user mods directories for the
// current platform, most likely first.
func DefaultModsDirs() []string {
	home, _ := os.UserHomeDir()
	return defaultModsDirs(runtime.GOOS, home, os.Getenv("APPDATA"))
}

func defaultModsDirs(goos, home, appData string) []string {
	var dirs []string
	switch goos {
	case "windows":
		if appData != "" {
			dirs = append(dirs, filepath.Join(appData, "Factorio", "mods"))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "AppData", "Roaming", "Factorio", "mods"))
		}
	case "darwin":
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Application Support", "factorio", "mods"))
		}
	default:
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".factorio", "mods"),
				filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".factorio", "mods"),
			)
		}
	}
	return dirs
}

// FindModsDir returns the first candidate directory that contains a settings file.
func FindModsDir(candidates []string) (string, error) {
	for _, dir := range candidates {
		if _, err := SettingsFile(dir); err == nil {
			return dir, nil
		}
	}
	return "", ErrModsDirNotFound
}

// IsRegularFile checks if path exists and is a regular file (not directory, device, etc).
// Returns error if not.
func IsRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}
