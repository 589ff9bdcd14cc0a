// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package modsettings reads and writes the game's mod-settings.dat file.
//
// The file is a 9-byte version header followed by one PropertyTree
// dictionary with three scope dictionaries ("startup", "runtime-global",
// "runtime-per-user"). Each scope maps a setting name to a wrapper
// dictionary {"value": X}, where X is a string, number, signed integer,
// bool, or an {r,g,b,a} colour.
//
// A Settings value is owned by its caller and is not safe for concurrent
// mutation. Two writers of the same file must be serialised by the caller.
package modsettings
