// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"encoding/hex"
	"fmt"

	"github.com/ManuGH/belt/internal/ptree"
)

// VersionSize is the length of the file header.
const VersionSize = 9

// Version is the opaque game version header. It is read once and written
// back unchanged.
type Version [VersionSize]byte

func (v Version) String() string {
	return hex.EncodeToString(v[:])
}

func readVersion(r *ptree.Reader) (Version, error) {
	var v Version
	b, err := r.ReadBytes(VersionSize)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrShortVersion, err)
	}
	copy(v[:], b)
	return v, nil
}
