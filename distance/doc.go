// Package distance provides the Euclidean metric used by the classifier.
//
// Rows carry their label in column 0, so every function here skips index 0
// and measures only the feature columns 1..F-1. The kernel is gonum's
// floats.Distance with L = 2.
//
// # Usage
//
//	d := distance.Euclidean(row, query) // sqrt(sum (row[i]-query[i])^2), i >= 1
package distance
