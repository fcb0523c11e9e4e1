// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

// ClampToZero snaps values within tolerance below zero up to exactly zero.
// Simplex implementations routinely report -1e-12 for variables that are
// zero at the optimum; a negative allocation is semantically invalid so
// those artifacts are removed. Values at or below -tolerance pass through.
func ClampToZero(val, tolerance float64) float64 {
	if val < 0 && val > -tolerance {
		return 0
	}
	return val
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.ComparisonTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
