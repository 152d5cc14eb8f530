// Package queue provides a bounded max-heap of candidates.
package queue

import (
	"container/heap"

	"github.com/hupe1980/partknn/model"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// PriorityQueue is a binary max-heap of candidates ordered by model.Less.
// The worst kept candidate sits on top, which is what a bounded
// "keep the m best" selection needs.
type PriorityQueue struct {
	items []model.Candidate
}

// NewMax initializes a new priority queue with the worst candidate on top.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]model.Candidate, 0, capacity),
	}
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// On a full heap the item replaces the top only if it orders before it.
// It reports whether the item was kept.
func (pq *PriorityQueue) PushItemBounded(item model.Candidate, capacity int) bool {
	if capacity <= 0 {
		return false
	}
	if len(pq.items) < capacity {
		heap.Push(pq, item)
		return true
	}
	if !model.Less(item, pq.items[0]) {
		return false
	}
	pq.items[0] = item
	heap.Fix(pq, 0)
	return true
}

// DrainAscending empties the queue into dst[:Len()] in ascending candidate
// order and returns that prefix. dst must have room for Len() items.
func (pq *PriorityQueue) DrainAscending(dst []model.Candidate) []model.Candidate {
	out := dst[:len(pq.items)]
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(pq).(model.Candidate)
	}
	return out
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less orders the worse candidate first.
func (pq *PriorityQueue) Less(i, j int) bool {
	return model.Less(pq.items[j], pq.items[i])
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push appends x; use heap.Push to keep the heap order.
func (pq *PriorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(model.Candidate))
}

// Pop removes the last element; use heap.Pop to take the top.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}
