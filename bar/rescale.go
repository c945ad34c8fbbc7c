package bar

import "math"

// maxRescaleRetries bounds the redraws a single Draw performs after a rescale
const maxRescaleRetries = 1

// Rescale returns the largest finite value of a frame as the new limit.
// ok is false when no positive finite value exists, leaving nothing to scale to.
func Rescale(values []float64) (limit float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > limit {
			limit = v
		}
	}
	return limit, limit > 0
}

// finite reports whether v is neither NaN nor infinite
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// inRange reports whether a normalized value lies in [0,1], false for NaN
func inRange(v float64) bool {
	return v >= 0 && v <= 1
}
