// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// Clip01 clips a floating point to the unit interval [0, 1]
func Clip01(value float64) float64 {
	return Clip(value, 0, 1)
}

// Lerp linearly interpolates between a and b by t. The interpolant t is
// clipped to [0, 1] so that the result always lies between a and b.
func Lerp(a, b, t float64) float64 {
	t = Clip01(t)
	return a + (b-a)*t
}

// Sign returns the sign of a floating point, or 0 if the floating
// point is 0
func Sign(value float64) float64 {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}
