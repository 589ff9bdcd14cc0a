// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package inject writes benchmark run parameters into the startup settings
// read by the belt-sanitizer mod.
package inject

// Startup-scope setting names understood by the belt-sanitizer mod.
const (
	KeyTargetTick       = "belt-sanitizer-target-tick"
	KeyBlueprintMode    = "belt-sanitizer-blueprint-mode"
	KeyProductionItems  = "belt-sanitizer-production-items"
	KeyProductionFluids = "belt-sanitizer-production-fluids"
	KeyBlueprintString  = "belt-sanitizer-blueprint-string"
	KeyBlueprintCount   = "belt-sanitizer-blueprint-count"
)
