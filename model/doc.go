// Package model defines the value types shared by every stage of the
// classification pipeline.
//
// # Types
//
//   - Label: binary class label (0 or 1)
//   - Candidate: one (distance, label, origin) record per eligible dataset row
//   - Pool: an ordered slice of candidates
//
// # Ordering
//
// Candidates are totally ordered by distance ascending, then by origin index
// ascending. Every sort, heap, and merge in the module uses Less or Compare,
// so equal distances always resolve the same way.
package model
