// Package partition divides an index range into contiguous chunks.
//
// The engine plans over eligible positions, which exclude the query's own row.
//
// A Plan splits [0, N) into P ranges of N/P indices each; the last range absorbs
// the remainder. Each range is owned by exactly one task per pipeline stage,
// which is what lets the stages share one candidate buffer without locks.
//
// Validate re-checks the ownership invariant (disjoint ranges whose union is
// [0, N)) with a roaring bitmap. A violation is an internal defect, reported
// as an *InvariantError.
package partition
