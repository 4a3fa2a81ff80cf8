// Package parallel fans node-indexed work out over a bounded pool of goroutines.
//
// What
//
//   - Partition splits [0, nodeCount) into contiguous batches of BatchSize nodes.
//   - ForEachBatch runs one task per batch on an errgroup limited to Concurrency
//     goroutines and blocks until every task returned (a phase barrier).
//   - ForEachNode applies a function to every node id exactly once.
//   - ForEachNodeScoped additionally gives each task a private resource: it is
//     acquired when the task starts and released when it ends, on every exit
//     path including errors and panics.
//
// Determinism
//
//	Batch boundaries depend only on nodeCount and BatchSize, never on
//	Concurrency or on scheduling. A task that seeds its own state from
//	Batch.Index (for example a random stream) therefore produces the same
//	result whatever the worker count.
//
// Errors
//
//   - ErrOptionViolation  for Concurrency < 1 or BatchSize < 1.
//   - ErrWorkerPanic      wraps a recovered panic from a task.
//   - The first task error cancels the shared context; later tasks are not
//     started and the first error is returned.
//   - ctx.Err() when the caller's context is cancelled before all batches ran.
package parallel
