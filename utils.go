package meshgen

import "math"

const (
	// epsilon is the signed distance under which a vertex is considered
	// to lie on a cutting plane.
	epsilon = 1e-9
	// planeTol bounds how far a boundary loop may stray from a cutting
	// plane and still be capped.
	planeTol = 1e-7
	// areaTol is the smallest face area accepted by Validate.
	areaTol = 1e-14
)

// Clamp x between a and b, assume a <= b. NaN clamps to a.
func Clamp(x, a, b float64) float64 {
	if x < a || math.IsNaN(x) {
		return a
	}
	if x > b {
		return b
	}
	return x
}
