package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the Euclidean distance between the feature parts of a and
// b, ignoring the label at index 0.
// Assumes a and b have the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	if len(a) <= 1 {
		return 0
	}
	return floats.Distance(a[1:], b[1:], 2)
}
