package orientation

import (
	"math"
	"sort"
)

// CompensateTilt converts an ideal tilt relative to horizontal into the panel
// tilt relative to sloped ground, clamped to [0, 90].
func CompensateTilt(ideal, slope float64) float64 {
	return math.Max(0, math.Min(90, ideal-slope))
}

// EffectiveTilt is the angle between the panel plane and horizontal for a
// panel mounted at tilt on ground with the given slope.
func EffectiveTilt(panel, slope float64) float64 {
	return panel + slope
}

// planeTilt is the effective tilt limited to what the irradiance model accepts.
func planeTilt(panel, slope float64) float64 {
	return math.Max(0, math.Min(90, EffectiveTilt(panel, slope)))
}

// FeasibleTilts returns the panel tilts to search: the base tilts 0, step, …,
// 90 compensated for slope, deduplicated, ascending.
func FeasibleTilts(step, slope float64) []float64 {
	seen := make(map[float64]struct{})
	var tilts []float64
	for _, base := range steps(0, 90, step, true) {
		t := CompensateTilt(base, slope)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tilts = append(tilts, t)
	}
	sort.Float64s(tilts)
	return tilts
}

// steps returns lo, lo+step, … up to hi (inclusive when closed). Values are
// computed by multiplication so long ranges do not accumulate error.
func steps(lo, hi, step float64, closed bool) []float64 {
	const eps = 1e-9
	var out []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+eps || (!closed && v > hi-eps) {
			break
		}
		out = append(out, v)
	}
	return out
}
