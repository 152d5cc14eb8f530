// Package engine runs one classification through the partitioned pipeline.
//
//	distance (parallel, one task per partition)
//	  -> barrier
//	selection (parallel, one task per partition)
//	  -> barrier
//	merge (sequential)
//	vote (sequential)
//
// Tasks run on an errgroup bounded by Config.Workers. Each task owns one
// contiguous index range of a shared candidate buffer; no other state is
// shared between tasks. The first failing task cancels the rest and the run
// returns no partial output.
//
// The buffer holds one slot per eligible row. For a query taken from row q,
// positions at or after q map to the next row, so the partitions together
// cover every row except q.
package engine
