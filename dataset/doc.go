// Package dataset holds the in-memory labeled table the classifier reads.
//
// A Dataset is a fixed-width table of float64 rows. Column 0 of every row is
// the ground-truth label (0 or 1); columns 1..F-1 are the features used by the
// distance metric. A Dataset is validated once by New and is read-only after
// that, so it can be shared by any number of concurrent classifications.
//
// # Query identity
//
// A Query carries an explicit identity token instead of relying on pointer
// equality. QueryFromRow produces a query that is "row i of this dataset";
// the classifier skips exactly that row. NewQuery produces a detached query;
// a detached query never excludes anything, even when its values equal some
// row's values.
//
//	ds, _ := dataset.New(rows)
//	self, _ := dataset.QueryFromRow(ds, 7)   // row 7 is excluded
//	probe := dataset.NewQuery(ds.Row(7))     // row 7 is still a neighbor
package dataset
