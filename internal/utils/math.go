package utils

import "math"

// RoundToDecimals rounds value to the given number of fractional digits,
// half away from zero.
func RoundToDecimals(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(value*scale) / scale
}

// NearlyEqual reports whether a and b differ by at most epsilon.
// NaN is never nearly equal to anything.
func NearlyEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= epsilon
}

// SquaredDistance returns the squared Euclidean distance between two points
func SquaredDistance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
