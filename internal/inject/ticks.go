// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package inject

import "math"

// Production statistics windows in ticks (5s, 1m, 10m, 1h, 10h, 50h, 250h,
// 1000h at 60 UPS). Each window keeps samplesPerWindow samples.
var precisionWindows = [...]int64{
	300,
	3_600,
	36_000,
	216_000,
	2_160_000,
	10_800_000,
	54_000_000,
	216_000_000,
}

const samplesPerWindow = 300

// AlignTicks rounds ticks up to a sample boundary of the smallest
// statistics window covering it, so the final sample holds a full interval.
// Values past the largest window align to its granularity; values too close
// to math.MaxInt64 to round up are returned unchanged.
func AlignTicks(ticks int64) int64 {
	if ticks <= 0 {
		return ticks
	}
	window := precisionWindows[len(precisionWindows)-1]
	for _, w := range precisionWindows {
		if ticks <= w {
			window = w
			break
		}
	}
	step := window / samplesPerWindow
	if rem := ticks % step; rem != 0 {
		if ticks > math.MaxInt64-(step-rem) {
			return ticks
		}
		ticks += step - rem
	}
	return ticks
}
