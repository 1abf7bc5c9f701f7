package utils

import "math"

// Round rounds a number to 2 decimal places for monetary display
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// WithinEpsilon reports whether two monetary values differ by less than Epsilon
func WithinEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
