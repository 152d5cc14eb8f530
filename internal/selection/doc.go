// Package selection implements the per-partition top-M step.
//
// A Selector moves the m best candidates of one partition's buffer range to
// the front of that range, in ascending candidate order, and returns that
// prefix. "Best" always means the total order of model.Less (distance, then
// origin), so every strategy returns the same prefix for the same input.
//
// Strategies:
//
//   - Heap: bounded max-heap of size m, O(n log m). Default.
//   - Partial: selection sort over the first m slots, O(n*m).
//   - Sort: full sort of the range, O(n log n).
//
// Selectors only touch the slice they are given and keep no state between
// calls, so one Selector may serve every partition concurrently.
package selection
