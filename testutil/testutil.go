package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/distance"
	"github.com/hupe1980/partknn/model"
)

// RNG is a mutex-guarded random source for reproducible test data.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Rows generates n rows with a random label and features uniform in [0, 1).
func (r *RNG) Rows(n, features int) []dataset.Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := features + 1
	data := make([]float64, n*width)
	rows := make([]dataset.Row, n)
	for i := range n {
		row := data[i*width : (i+1)*width : (i+1)*width]
		row[0] = float64(r.rand.Intn(2))
		for j := 1; j < width; j++ {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}
	return rows
}

// ClusteredRows generates n rows where label 0 is centered at the origin and
// label 1 at (1, ..., 1), each with Gaussian noise of the given spread.
func (r *RNG) ClusteredRows(n, features int, spread float64) []dataset.Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]dataset.Row, n)
	for i := range n {
		label := r.rand.Intn(2)
		row := make(dataset.Row, features+1)
		row[0] = float64(label)
		for j := 1; j <= features; j++ {
			row[j] = float64(label) + r.rand.NormFloat64()*spread
		}
		rows[i] = row
	}
	return rows
}

// Dataset wraps Rows in a Dataset.
func (r *RNG) Dataset(n, features int) *dataset.Dataset {
	return mustDataset(r.Rows(n, features))
}

// ClusteredDataset wraps ClusteredRows in a Dataset.
func (r *RNG) ClusteredDataset(n, features int, spread float64) *dataset.Dataset {
	return mustDataset(r.ClusteredRows(n, features, spread))
}

// Query returns a detached query with uniform features in [0, 1).
func (r *RNG) Query(features int) dataset.Query {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float64, features+1)
	for j := 1; j <= features; j++ {
		v[j] = r.rand.Float64()
	}
	return dataset.NewQuery(v)
}

func mustDataset(rows []dataset.Row) *dataset.Dataset {
	ds, err := dataset.New(rows)
	if err != nil {
		panic(err)
	}
	return ds
}

// ExactTopK returns the k nearest eligible candidates by brute force.
func ExactTopK(ds *dataset.Dataset, q dataset.Query, k int) model.Pool {
	pool := make(model.Pool, 0, ds.Len())
	for i := range ds.Len() {
		if q.Excludes(i) {
			continue
		}
		pool = append(pool, model.Candidate{
			Distance: distance.Euclidean(ds.Row(i), q.Values()),
			Label:    ds.Label(i),
			Origin:   i,
		})
	}
	slices.SortFunc(pool, model.Compare)
	return pool.Head(k)
}

// Overlap returns the fraction of want's origins present in got.
func Overlap(got, want model.Pool) float64 {
	if len(want) == 0 {
		return 1
	}
	seen := make(map[int]struct{}, len(got))
	for _, c := range got {
		seen[c.Origin] = struct{}{}
	}
	hits := 0
	for _, c := range want {
		if _, ok := seen[c.Origin]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}
