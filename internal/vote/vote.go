// Package vote implements the majority vote over the head of a pool.
package vote

import (
	"fmt"

	"github.com/hupe1980/partknn/model"
)

// Tally holds label counts over the first K pool entries.
type Tally struct {
	Zeros int
	Ones  int
}

// Total returns Zeros + Ones.
func (t Tally) Total() int { return t.Zeros + t.Ones }

// Prediction returns LabelNegative only on a strict majority of zeros.
// Ties, including 0-0, go to LabelPositive.
func (t Tally) Prediction() model.Label {
	if t.Zeros > t.Ones {
		return model.LabelNegative
	}
	return model.LabelPositive
}

// ShortPoolError reports a pool with fewer than K entries.
type ShortPoolError struct {
	K    int
	Have int
}

func (e *ShortPoolError) Error() string {
	return fmt.Sprintf("vote needs %d candidates, pool has %d", e.K, e.Have)
}

// Count tallies labels of pool[:k].
func Count(pool model.Pool, k int) (Tally, error) {
	if k <= 0 || k > len(pool) {
		return Tally{}, &ShortPoolError{K: k, Have: len(pool)}
	}

	var t Tally
	for _, c := range pool[:k] {
		if c.Label == model.LabelNegative {
			t.Zeros++
		} else {
			t.Ones++
		}
	}
	return t, nil
}
