package framework

import (
	"math"
)

// NaN is the sentinel marking an undefined component of an integer decision
// vector. Any vector containing it evaluates to a NaN objective vector.
const NaN = math.MinInt

// HasNaN reports whether x contains the NaN sentinel.
func HasNaN(x []int) bool {
	for _, v := range x {
		if v == NaN {
			return true
		}
	}
	return false
}

// NaNVector returns a vector of m NaN values.
func NaNVector(m int) []float64 {
	y := make([]float64, m)
	SetNaN(y)
	return y
}

// SetNaN overwrites every element of y with NaN.
func SetNaN(y []float64) {
	for i := range y {
		y[i] = math.NaN()
	}
}

// IsNaN reports whether any element of y is NaN.
func IsNaN(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Dominates checks if objective vector a dominates b under maximization.
func Dominates(a, b []float64) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			better = true
		}
	}
	return better
}

// Clone returns a copy of an integer vector.
func Clone(x []int) []int {
	return append([]int(nil), x...)
}
