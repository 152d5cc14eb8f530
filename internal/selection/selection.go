package selection

import (
	"fmt"
	"slices"

	"github.com/hupe1980/partknn/internal/queue"
	"github.com/hupe1980/partknn/model"
)

// Strategy names a selection algorithm.
type Strategy string

const (
	StrategyHeap    Strategy = "heap"
	StrategyPartial Strategy = "partial"
	StrategySort    Strategy = "sort"
)

// Strategies lists every built-in strategy.
var Strategies = []Strategy{StrategyHeap, StrategyPartial, StrategySort}

// Selector extracts the ordered top-m prefix of a candidate range.
type Selector interface {
	// Select reorders buf so that buf[:min(m, len(buf))] holds the m best
	// candidates in ascending order, and returns that prefix.
	Select(buf []model.Candidate, m int) []model.Candidate
	// Strategy returns the algorithm name.
	Strategy() Strategy
}

// New returns the built-in Selector for s.
func New(s Strategy) (Selector, error) {
	switch s {
	case StrategyHeap, "":
		return Heap{}, nil
	case StrategyPartial:
		return Partial{}, nil
	case StrategySort:
		return Sort{}, nil
	default:
		return nil, fmt.Errorf("unknown selection strategy %q", s)
	}
}

// Default returns the default Selector.
func Default() Selector {
	return Heap{}
}

func prefixLen(buf []model.Candidate, m int) int {
	if m < 0 {
		return 0
	}
	return min(m, len(buf))
}

// Heap selects with a bounded max-heap holding the m best seen so far.
type Heap struct{}

// Select implements Selector.
func (Heap) Select(buf []model.Candidate, m int) []model.Candidate {
	k := prefixLen(buf, m)
	if k == 0 {
		return buf[:0]
	}

	pq := queue.NewMax(k)
	for _, c := range buf {
		pq.PushItemBounded(c, k)
	}
	// The heap holds copies, so writing back into buf is safe.
	return pq.DrainAscending(buf)
}

// Strategy implements Selector.
func (Heap) Strategy() Strategy { return StrategyHeap }

// Partial runs selection sort over the first m slots only.
type Partial struct{}

// Select implements Selector.
func (Partial) Select(buf []model.Candidate, m int) []model.Candidate {
	k := prefixLen(buf, m)
	for i := range k {
		best := i
		for j := i + 1; j < len(buf); j++ {
			if model.Less(buf[j], buf[best]) {
				best = j
			}
		}
		if best != i {
			buf[i], buf[best] = buf[best], buf[i]
		}
	}
	return buf[:k]
}

// Strategy implements Selector.
func (Partial) Strategy() Strategy { return StrategyPartial }

// Sort fully sorts the range and keeps the first m.
type Sort struct{}

// Select implements Selector.
func (Sort) Select(buf []model.Candidate, m int) []model.Candidate {
	slices.SortFunc(buf, model.Compare)
	return buf[:prefixLen(buf, m)]
}

// Strategy implements Selector.
func (Sort) Strategy() Strategy { return StrategySort }
