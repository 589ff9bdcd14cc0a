// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package modsettings

import (
	"errors"
	"fmt"

	"github.com/ManuGH/belt/internal/ptree"
)

var (
	// ErrRootNotDictionary is returned when the tree root is not a dictionary.
	ErrRootNotDictionary = errors.New("modsettings: root is not a dictionary")

	// ErrInvalidScope is returned for a Scope outside the three defined values.
	ErrInvalidScope = errors.New("modsettings: invalid scope")

	// ErrShortVersion is returned when the input ends inside the version
	// header. The error also matches io.ErrUnexpectedEOF.
	ErrShortVersion = errors.New("modsettings: input shorter than version header")
)

// MissingScopeError reports a scope entry that is absent or not a dictionary.
type MissingScopeError struct {
	Name string
}

func (e *MissingScopeError) Error() string {
	return fmt.Sprintf("modsettings: missing scope %q", e.Name)
}

// MissingValueWrapperError reports a setting whose entry is not a
// {"value": ...} dictionary.
type MissingValueWrapperError struct {
	Scope Scope
	Key   string
}

func (e *MissingValueWrapperError) Error() string {
	return fmt.Sprintf("modsettings: setting %q in %s has no value wrapper", e.Key, e.Scope)
}

// UnsupportedSettingShapeError reports a setting value that is not one of
// the shapes a Value can hold.
type UnsupportedSettingShapeError struct {
	Scope Scope
	Key   string
	Type  ptree.Type
}

func (e *UnsupportedSettingShapeError) Error() string {
	return fmt.Sprintf("modsettings: setting %q in %s has unsupported shape %s", e.Key, e.Scope, e.Type)
}
