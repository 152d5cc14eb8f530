package dataset

import (
	"fmt"
	"slices"
)

// detached marks a query that is not a row of any dataset.
const detached = -1

// Query is the point to classify.
//
// Its values have the same layout as a Row. The label slot (index 0) is carried
// for symmetry and never used as a feature.
type Query struct {
	values Row
	origin int
}

// NewQuery creates a detached query from a copy of values.
func NewQuery(values []float64) Query {
	return Query{values: slices.Clone(values), origin: detached}
}

// QueryFromRow creates a query that is row i of ds.
// The classifier excludes row i from the neighbor set.
func QueryFromRow(ds *Dataset, i int) (Query, error) {
	if i < 0 || i >= ds.Len() {
		return Query{}, fmt.Errorf("%w: row %d out of range [0, %d)", ErrMalformedInput, i, ds.Len())
	}
	return Query{values: ds.Row(i), origin: i}, nil
}

// Values returns the query vector. It must be treated as read-only.
func (q Query) Values() Row {
	return q.values
}

// Origin returns the dataset row this query was taken from.
// ok is false for detached queries.
func (q Query) Origin() (index int, ok bool) {
	if q.origin == detached {
		return 0, false
	}
	return q.origin, true
}

// Excludes reports whether row i is the query itself.
func (q Query) Excludes(i int) bool {
	return q.origin != detached && q.origin == i
}
