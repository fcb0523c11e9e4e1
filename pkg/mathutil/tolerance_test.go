package mathutil

import (
	"math"
	"testing"
)

func TestClampToZero(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		tolerance float64
		expected  float64
	}{
		{"small negative artifact", -1e-12, 1e-9, 0},
		{"boundary stays", -1e-9, 1e-9, -1e-9},
		{"genuine negative stays", -0.5, 1e-9, -0.5},
		{"zero unchanged", 0, 1e-9, 0},
		{"positive unchanged", 42.5, 1e-9, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampToZero(tt.val, tt.tolerance); got != tt.expected {
				t.Errorf("ClampToZero(%v, %v) = %v, expected %v", tt.val, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{"ordinary value", 1.5, true},
		{"zero", 0, true},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.val); got != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.0+1e-9, 1e-6) {
		t.Error("values within tolerance reported as different")
	}
	if WithinTolerance(1.0, 1.1, 1e-6) {
		t.Error("distinct values reported as equal")
	}
}
