// Package floats provides element-wise float64 kernels for the linvec package.
//
// Binary kernels pair elements by position and stop at the shorter slice.
// Callers that need strict length checks must perform them first.
package floats

import "math"

// Dot calculates the dot product of a and b.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	var ret float64
	for i := range n {
		ret += a[i] * b[i]
	}

	return ret
}

// SumSquares returns the sum of the squared elements of a.
func SumSquares(a []float64) float64 {
	return Dot(a, a)
}

// Norm returns the Euclidean (L2) norm of a.
func Norm(a []float64) float64 {
	return math.Sqrt(SumSquares(a))
}

// Add returns a new slice holding a[i] + b[i].
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))

	dst := make([]float64, n)
	for i := range n {
		dst[i] = a[i] + b[i]
	}

	return dst
}

// Sub returns a new slice holding a[i] - b[i].
func Sub(a, b []float64) []float64 {
	n := min(len(a), len(b))

	dst := make([]float64, n)
	for i := range n {
		dst[i] = a[i] - b[i]
	}

	return dst
}

// Scale returns a new slice holding a[i] * scalar.
func Scale(a []float64, scalar float64) []float64 {
	dst := make([]float64, len(a))
	for i := range a {
		dst[i] = a[i] * scalar
	}

	return dst
}
