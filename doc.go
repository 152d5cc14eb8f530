// Package partknn classifies a query point against a labeled dataset with a
// partitioned, parallel K-Nearest-Neighbors majority vote.
//
// # Quick Start
//
//	ds, _ := loader.Load(ctx, blobstore.NewLocalStore("./data"), "diabetes.csv")
//	clf, _ := partknn.New(partknn.WithK(3), partknn.WithPartitions(4), partknn.WithCutoff(5))
//
//	res, _ := clf.Classify(ctx, ds, dataset.NewQuery([]float64{0, 1, 0, 1, 28.5}))
//	fmt.Println(res.Prediction, partknn.ClassName(res.Prediction))
//
// # Pipeline
//
// A run splits the N dataset rows into P contiguous partitions and works
// through four stages:
//
//  1. Distance: each partition computes the Euclidean distance of its rows
//     to the query, in parallel.
//  2. Selection: each partition keeps its M nearest candidates (the cutoff),
//     in parallel.
//  3. Merge: the P prefixes are concatenated and sorted into a pool of at
//     most P*M candidates.
//  4. Vote: the first K pool entries vote; label 0 wins only on a strict
//     majority, ties go to label 1.
//
// Candidates are ordered by distance and then by row index, so results are
// deterministic for a given dataset, query, K, P and M.
//
// # Choosing M
//
// With M >= K every partition can contribute all of its members of the true
// K nearest neighbors, and the vote is exactly that of a serial KNN (see
// Reference). With M < K a partition that holds more than M of the true
// neighbors is cut short and farther candidates from other partitions take
// their place. That trades accuracy for a smaller merge; the default M=5
// with K=3 is exact.
//
// # Self-exclusion
//
// A query built with dataset.QueryFromRow carries the row index it came from
// and that row is never its own neighbor. A detached query built with
// dataset.NewQuery sees every row, including value-equal ones.
//
// # Errors
//
// Failures are reported as ErrMalformedInput, ErrConfiguration or
// ErrInternalInvariant (test with errors.Is), or as the context error when
// ctx is canceled. A run either fully succeeds or returns no Result.
package partknn
