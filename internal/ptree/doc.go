// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package ptree implements the PropertyTree binary format used by the game for
// configuration files such as mod-settings.dat.
//
// A node is a type tag byte, a reserved "any type" byte (always 0), and a
// payload that depends on the tag. Lists and dictionaries nest further nodes.
// All multi-byte integers and floats are little-endian.
//
// Dictionaries preserve the order in which their keys were read or inserted,
// so decoding and re-encoding a well-formed buffer reproduces it byte for byte.
//
// The package never logs; every malformed input is reported as an error.
package ptree
