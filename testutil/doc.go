// Package testutil provides testing utilities for partknn.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Datasets
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.Dataset(1000, 8)          // uniform features, random labels
//	ds := rng.ClusteredDataset(1000, 8, 0.3) // one cluster per label
//
// # Ground Truth
//
//	exact := testutil.ExactTopK(ds, query, k)
package testutil
