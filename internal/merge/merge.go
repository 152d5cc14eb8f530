// Package merge combines per-partition top-M prefixes into one ordered pool.
package merge

import (
	"github.com/hupe1980/partknn/model"
)

// Size returns the total number of candidates across prefixes.
func Size(prefixes [][]model.Candidate) int {
	n := 0
	for _, p := range prefixes {
		n += len(p)
	}
	return n
}

// Merge concatenates prefixes in partition order and sorts the result by
// (distance asc, origin asc). The prefixes are not modified.
//
// Pools are at most P*M entries and each prefix is already ascending, so an
// insertion sort does little work here.
func Merge(prefixes [][]model.Candidate) model.Pool {
	pool := make(model.Pool, 0, Size(prefixes))
	for _, p := range prefixes {
		pool = append(pool, p...)
	}
	SortPool(pool)
	return pool
}

// SortPool sorts pool in place by (distance asc, origin asc).
func SortPool(pool model.Pool) {
	for i := 1; i < len(pool); i++ {
		key := pool[i]
		j := i - 1
		for j >= 0 && model.Less(key, pool[j]) {
			pool[j+1] = pool[j]
			j--
		}
		pool[j+1] = key
	}
}
