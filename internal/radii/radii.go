// Package radii implements the Radii Oracle: a request-scoped
// atomic-number-to-effective-radius lookup.
//
// Source pattern replaced: the original
// implementation keeps a process-global radii table mutated in place
// by each request's scaling factor and overrides. That makes two
// concurrent requests with different scaling factors race on shared
// state. Here an Oracle is an explicit value built once per request
// from a base table, a scaling factor, manual per-species overrides
// and a floor, then passed by reference into the placement engine —
// no package-level mutable state at all.
package radii

// baseRadii holds approximate single-bond covalent radii (Å) for
// elements 1-118. These stand in for an external element-radii
// key->value provider; values for elements without a curated entry
// (Z 58-71 and Z above 96) are smoothed estimates, not a substitute for a
// verified source (CODATA/IUPAC) in a production deployment.
var baseRadii = buildBaseRadii()

// curated holds hand-entered covalent radii (Å) for the elements a
// caller is most likely to request, drawn from common tabulations.
var curated = map[int]float64{
	1: 0.31, 2: 0.28, 3: 1.28, 4: 0.96, 5: 0.84, 6: 0.76, 7: 0.71, 8: 0.66,
	9: 0.57, 10: 0.58, 11: 1.66, 12: 1.41, 13: 1.21, 14: 1.11, 15: 1.07,
	16: 1.05, 17: 1.02, 18: 1.06, 19: 2.03, 20: 1.76, 21: 1.70, 22: 1.60,
	23: 1.53, 24: 1.39, 25: 1.39, 26: 1.32, 27: 1.26, 28: 1.24, 29: 1.32,
	30: 1.22, 31: 1.22, 32: 1.20, 33: 1.19, 34: 1.20, 35: 1.20, 36: 1.16,
	37: 2.20, 38: 1.95, 39: 1.90, 40: 1.75, 41: 1.64, 42: 1.54, 43: 1.47,
	44: 1.46, 45: 1.42, 46: 1.39, 47: 1.45, 48: 1.44, 49: 1.42, 50: 1.39,
	51: 1.39, 52: 1.38, 53: 1.39, 54: 1.40, 55: 2.44, 56: 2.15, 57: 2.07,
	72: 1.75, 73: 1.70, 74: 1.62, 75: 1.51, 76: 1.44, 77: 1.41, 78: 1.36,
	79: 1.36, 80: 1.32, 81: 1.45, 82: 1.46, 83: 1.48, 84: 1.40, 85: 1.50,
	86: 1.50, 87: 2.60, 88: 2.21, 89: 2.15, 90: 2.06, 91: 2.00, 92: 1.96,
	93: 1.90, 94: 1.87, 95: 1.80, 96: 1.69,
}

// buildBaseRadii fills in every Z from 1..118, preferring curated
// values and otherwise falling back to a smooth empirical estimate so
// Oracle.Radius never panics on a valid atomic number.
func buildBaseRadii() map[int]float64 {
	m := make(map[int]float64, 118)
	for z := 1; z <= 118; z++ {
		if r, ok := curated[z]; ok {
			m[z] = r
			continue
		}
		m[z] = fallbackRadius(z)
	}
	return m
}

// fallbackRadius is a smooth, monotone estimate used only for elements
// without a curated entry above (mainly the actinide/superheavy tail).
func fallbackRadius(z int) float64 {
	return 1.6 + 0.003*float64(z)
}

// Oracle is the request-scoped radii provider. Build one with New and
// pass it by value/reference into a single generation attempt; it is
// never mutated after construction.
type Oracle struct {
	scaling  float64
	floor    float64
	radii    map[int]float64
}

// New builds an Oracle from the base table plus a request's scaling
// factor, floor, and manual per-species overrides. Overrides are
// applied to the raw (unscaled) base radius before scaling, matching
// the order a request names its fields in
// (scaling, floor, manual overrides).
func New(scaling, floor float64, overrides map[int]float64) *Oracle {
	if scaling == 0 {
		scaling = 1.0
	}
	radii := make(map[int]float64, len(baseRadii))
	for z, r := range baseRadii {
		radii[z] = r
	}
	for z, r := range overrides {
		radii[z] = r
	}
	return &Oracle{scaling: scaling, floor: floor, radii: radii}
}

// Radius returns the effective radius for atomic number z: the
// (possibly overridden) base radius times the scaling factor, floored
// at the request's minimum radius. Unknown atomic numbers fall back to
// fallbackRadius(z) scaled the same way, so callers never see a zero
// radius silently collapse interatomic-distance checks.
func (o *Oracle) Radius(z int) float64 {
	r, ok := o.radii[z]
	if !ok {
		r = fallbackRadius(z)
	}
	r *= o.scaling
	if r < o.floor {
		return o.floor
	}
	return r
}

// MinIAD returns the minimum allowed interatomic distance between
// species a and b: the sum of their effective radii.
func (o *Oracle) MinIAD(a, b int) float64 {
	return o.Radius(a) + o.Radius(b)
}
