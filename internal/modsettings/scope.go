// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"fmt"
	"strconv"
)

// Scope selects when a setting takes effect.
type Scope uint8

const (
	Startup Scope = iota
	RuntimeGlobal
	RuntimePerUser
)

const scopeCount = 3

// Scopes lists every scope in the order the game writes them.
var Scopes = [scopeCount]Scope{Startup, RuntimeGlobal, RuntimePerUser}

var scopeKeys = [scopeCount]string{"startup", "runtime-global", "runtime-per-user"}

// Valid reports whether s is a defined scope.
func (s Scope) Valid() bool {
	return s < scopeCount
}

// Key returns the dictionary key the scope is stored under.
func (s Scope) Key() string {
	if !s.Valid() {
		return ""
	}
	return scopeKeys[s]
}

func (s Scope) String() string {
	if !s.Valid() {
		return "scope(" + strconv.Itoa(int(s)) + ")"
	}
	return scopeKeys[s]
}

// ParseScope maps an on-disk scope key to its Scope.
func ParseScope(key string) (Scope, error) {
	for i, k := range scopeKeys {
		if k == key {
			return Scope(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScope, key)
}
