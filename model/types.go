package model

import (
	"cmp"
	"fmt"
)

// Label is a binary class label stored in column 0 of every dataset row.
type Label uint8

const (
	// LabelNegative is class 0.
	LabelNegative Label = 0
	// LabelPositive is class 1.
	LabelPositive Label = 1
)

// LabelFromValue converts a raw label cell into a Label.
// ok is false for anything other than exactly 0 or 1.
func LabelFromValue(v float64) (l Label, ok bool) {
	switch v {
	case 0:
		return LabelNegative, true
	case 1:
		return LabelPositive, true
	default:
		return 0, false
	}
}

// String returns the numeric form of the label.
func (l Label) String() string {
	return fmt.Sprintf("%d", uint8(l))
}

// Candidate is the distance of one dataset row to the query.
type Candidate struct {
	// Distance is the Euclidean distance over the feature columns.
	Distance float64
	// Label is the ground-truth label of the row.
	Label Label
	// Origin is the row index in the dataset.
	Origin int
}

// String returns a string representation of the Candidate.
func (c Candidate) String() string {
	return fmt.Sprintf("Cand(%d:%g:%d)", c.Origin, c.Distance, c.Label)
}

// Less reports whether a orders before b.
func Less(a, b Candidate) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Origin < b.Origin
}

// Compare is the three-way form of Less, usable with slices.SortFunc.
func Compare(a, b Candidate) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Origin, b.Origin)
}

// Pool is an ordered candidate sequence.
type Pool []Candidate

// Head returns the first k candidates, or the whole pool if it is shorter.
func (p Pool) Head(k int) Pool {
	if k < 0 {
		k = 0
	}
	if k > len(p) {
		k = len(p)
	}
	return p[:k]
}

// IsSorted reports whether the pool is in candidate order.
func (p Pool) IsSorted() bool {
	for i := 1; i < len(p); i++ {
		if Less(p[i], p[i-1]) {
			return false
		}
	}
	return true
}

// Origins returns the origin index of every candidate, in pool order.
func (p Pool) Origins() []int {
	out := make([]int, len(p))
	for i, c := range p {
		out[i] = c.Origin
	}
	return out
}
