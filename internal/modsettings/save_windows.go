// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build windows

package modsettings

import "os"

// writeFile truncates or creates path. renameio does not support Windows.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}
