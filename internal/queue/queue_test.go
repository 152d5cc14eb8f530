package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/partknn/model"
)

func cands(dists ...float64) []model.Candidate {
	out := make([]model.Candidate, len(dists))
	for i, d := range dists {
		out[i] = model.Candidate{Distance: d, Origin: i}
	}
	return out
}

func TestPriorityQueue_Bounded(t *testing.T) {
	pq := NewMax(3)
	for _, c := range cands(5, 4, 3, 2, 1, 0) {
		pq.PushItemBounded(c, 3)
	}
	require.Equal(t, 3, pq.Len())

	out := pq.DrainAscending(make([]model.Candidate, 3))
	assert.Equal(t, []int{5, 4, 3}, model.Pool(out).Origins())
	assert.Equal(t, 0, pq.Len())
}

func TestPriorityQueue_DrainOrdersTies(t *testing.T) {
	pq := NewMax(4)
	for _, c := range cands(3, 1, 2, 1) {
		pq.PushItemBounded(c, 4)
	}

	out := pq.DrainAscending(make([]model.Candidate, 4))
	// Origins 1 and 3 tie on distance 1.
	assert.Equal(t, []int{1, 3, 2, 0}, model.Pool(out).Origins())
}

func TestPriorityQueue_BoundedTieKeepsLowerOrigin(t *testing.T) {
	pq := NewMax(2)
	assert.True(t, pq.PushItemBounded(model.Candidate{Distance: 1, Origin: 4}, 2))
	assert.True(t, pq.PushItemBounded(model.Candidate{Distance: 1, Origin: 7}, 2))
	// Same distance, higher origin than the worst kept: rejected.
	assert.False(t, pq.PushItemBounded(model.Candidate{Distance: 1, Origin: 9}, 2))
	// Same distance, lower origin: replaces origin 7.
	assert.True(t, pq.PushItemBounded(model.Candidate{Distance: 1, Origin: 2}, 2))

	out := pq.DrainAscending(make([]model.Candidate, 2))
	assert.Equal(t, []int{2, 4}, model.Pool(out).Origins())
}

func TestPriorityQueue_ZeroCapacity(t *testing.T) {
	pq := NewMax(0)
	assert.False(t, pq.PushItemBounded(model.Candidate{}, 0))
	assert.Equal(t, 0, pq.Len())
	assert.Empty(t, pq.DrainAscending(nil))
}
