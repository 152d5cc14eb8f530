package partknn

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/distance"
	"github.com/hupe1980/partknn/internal/vote"
	"github.com/hupe1980/partknn/model"
)

// Reference classifies q serially: it scores every eligible row, sorts all
// of them and lets the first k vote. It applies the same ordering, exclusion
// and vote rules as Classifier, so for M >= K both return the same
// Neighbors and Prediction. Result.Pool holds every eligible candidate.
func Reference(ctx context.Context, ds *dataset.Dataset, q dataset.Query, k int) (*Result, error) {
	start := time.Now()

	if k <= 0 {
		return nil, &ConfigError{Field: "K", Value: k, Reason: "must be positive"}
	}
	if ds.Len() == 0 {
		return nil, &ConfigError{Field: "N", Reason: "dataset is empty"}
	}
	if err := ds.CheckQuery(q); err != nil {
		return nil, err
	}

	pool := make(model.Pool, 0, ds.Len())
	qv := q.Values()
	for i := range ds.Len() {
		if q.Excludes(i) {
			continue
		}
		pool = append(pool, model.Candidate{
			Distance: distance.Euclidean(ds.Row(i), qv),
			Label:    ds.Label(i),
			Origin:   i,
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(pool, model.Compare)

	tally, err := vote.Count(pool, k)
	if err != nil {
		return nil, &ConfigError{Field: "K", Value: k, Reason: err.Error(), cause: err}
	}

	return &Result{
		Prediction: tally.Prediction(),
		Zeros:      tally.Zeros,
		Ones:       tally.Ones,
		Pool:       pool,
		Neighbors:  pool.Head(k),
		Elapsed:    time.Since(start),
	}, nil
}
