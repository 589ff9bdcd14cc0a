// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package inject

import (
	"errors"
	"fmt"

	"github.com/ManuGH/belt/internal/blueprint"
	"github.com/ManuGH/belt/internal/modsettings"
)

// ErrInvalidProfile wraps profile validation failures.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile mutates loaded settings for one kind of run.
type Profile interface {
	Name() string
	Apply(s *modsettings.Settings) error
}

// SanitizeProfile prepares a production check: the mod stops at TargetTick
// and reports the named items and fluids. Empty Items or Fluids leave the
// current setting alone.
type SanitizeProfile struct {
	TargetTick int64
	Items      string
	Fluids     string
}

func (SanitizeProfile) Name() string { return "sanitize" }

// Validate rejects a non-positive target tick.
func (p SanitizeProfile) Validate() error {
	if p.TargetTick < 1 {
		return fmt.Errorf("%w: target tick %d must be positive", ErrInvalidProfile, p.TargetTick)
	}
	return nil
}

func (p SanitizeProfile) Apply(s *modsettings.Settings) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.Set(modsettings.Startup, KeyBlueprintMode, modsettings.Bool(false))
	s.Set(modsettings.Startup, KeyTargetTick, modsettings.Int(p.TargetTick))
	if p.Items != "" {
		s.Set(modsettings.Startup, KeyProductionItems, modsettings.String(p.Items))
	}
	if p.Fluids != "" {
		s.Set(modsettings.Startup, KeyProductionFluids, modsettings.String(p.Fluids))
	}
	return nil
}

// BlueprintProfile prepares a blueprint build: the mod pastes Count copies
// of Blueprint and lets the map run BufferTicks before measuring.
type BlueprintProfile struct {
	BufferTicks int64
	Count       int64
	Blueprint   string
}

func (BlueprintProfile) Name() string { return "blueprint" }

// Validate checks the blueprint string decodes and the count is usable.
func (p BlueprintProfile) Validate() error {
	if p.Count < 1 {
		return fmt.Errorf("%w: blueprint count %d must be at least 1", ErrInvalidProfile, p.Count)
	}
	if p.BufferTicks < 0 {
		return fmt.Errorf("%w: buffer ticks %d must not be negative", ErrInvalidProfile, p.BufferTicks)
	}
	if _, err := blueprint.Parse(p.Blueprint); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

func (p BlueprintProfile) Apply(s *modsettings.Settings) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.Set(modsettings.Startup, KeyTargetTick, modsettings.Int(p.BufferTicks))
	s.Set(modsettings.Startup, KeyBlueprintMode, modsettings.Bool(true))
	s.Set(modsettings.Startup, KeyBlueprintString, modsettings.String(p.Blueprint))
	s.Set(modsettings.Startup, KeyBlueprintCount, modsettings.Int(p.Count))
	return nil
}
