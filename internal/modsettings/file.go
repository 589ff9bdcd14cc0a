// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the settings file name inside a mods directory.
const FileName = "mod-settings.dat"

// filePerm is used when Save creates a new file.
const filePerm = 0o644

// Load reads and decodes the settings file at path.
func Load(path string, opts ...Option) (*Settings, error) {
	// #nosec G304 -- the mods directory is chosen by the operator
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	s, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save encodes the settings and replaces the file at path, creating it if
// needed. The encoding happens before the file is touched, so an encode error
// leaves the existing file intact.
func (s *Settings) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Clean(path), data); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
