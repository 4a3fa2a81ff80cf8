package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the task granularity used when Options.BatchSize is zero.
const DefaultBatchSize = 1024

// Sentinel errors for the parallel driver.
var (
	// ErrOptionViolation is returned for a non-positive concurrency or batch size.
	ErrOptionViolation = errors.New("parallel: invalid option supplied")

	// ErrWorkerPanic wraps a panic recovered inside a task.
	ErrWorkerPanic = errors.New("parallel: worker panicked")
)

// Options controls the pool size and the task granularity.
// Zero values select DefaultConcurrency() and DefaultBatchSize.
type Options struct {
	Concurrency int
	BatchSize   int
}

// DefaultConcurrency returns the number of usable CPUs.
func DefaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

func (o Options) resolve() (Options, error) {
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency()
	}
	if o.BatchSize == 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Concurrency < 1 {
		return o, fmt.Errorf("%w: concurrency must be ≥ 1 (got %d)", ErrOptionViolation, o.Concurrency)
	}
	if o.BatchSize < 1 {
		return o, fmt.Errorf("%w: batch size must be ≥ 1 (got %d)", ErrOptionViolation, o.BatchSize)
	}
	return o, nil
}

// Batch is a contiguous node range [Start, End) processed by one task.
type Batch struct {
	Index int
	Start int
	End   int
}

// Len returns the number of nodes in the batch.
func (b Batch) Len() int { return b.End - b.Start }

// Partition splits [0, nodeCount) into ceil(nodeCount/batchSize) batches.
// A non-positive batchSize is treated as DefaultBatchSize.
//
// Complexity: O(nodeCount/batchSize).
func Partition(nodeCount, batchSize int) []Batch {
	if nodeCount <= 0 {
		return nil
	}
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	batches := make([]Batch, 0, (nodeCount+batchSize-1)/batchSize)
	var start, end int
	for start = 0; start < nodeCount; start += batchSize {
		end = start + batchSize
		if end > nodeCount {
			end = nodeCount
		}
		batches = append(batches, Batch{Index: len(batches), Start: start, End: end})
	}

	return batches
}

// ForEachBatch runs fn once per batch using at most opts.Concurrency goroutines
// and returns after all started tasks finished.
func ForEachBatch(ctx context.Context, nodeCount int, opts Options, fn func(ctx context.Context, b Batch) error) error {
	o, err := opts.resolve()
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)

	for _, b := range Partition(nodeCount, o.BatchSize) {
		// stop scheduling once a task failed or the caller cancelled
		if gctx.Err() != nil {
			break
		}
		b := b
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: batch %d [%d,%d): %v", ErrWorkerPanic, b.Index, b.Start, b.End, r)
				}
			}()
			if err = gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, b)
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	// a cancellation that only stopped scheduling still means incomplete work
	return ctx.Err()
}

// ForEachNode applies fn to every node in [0, nodeCount) exactly once.
func ForEachNode(ctx context.Context, nodeCount int, opts Options, fn func(node int) error) error {
	return ForEachBatch(ctx, nodeCount, opts, func(_ context.Context, b Batch) error {
		var node int
		for node = b.Start; node < b.End; node++ {
			if err := fn(node); err != nil {
				return err
			}
		}
		return nil
	})
}

// ForEachNodeScoped is ForEachNode with a task-private resource. acquire runs
// once at task start; release runs once at task end whenever acquire succeeded,
// including when fn fails or panics. A release error is joined with the task error.
func ForEachNodeScoped[R any](
	ctx context.Context,
	nodeCount int,
	opts Options,
	acquire func(b Batch) (R, error),
	release func(r R) error,
	fn func(r R, node int) error,
) error {
	return ForEachBatch(ctx, nodeCount, opts, func(_ context.Context, b Batch) (err error) {
		res, err := acquire(b)
		if err != nil {
			return fmt.Errorf("batch %d: acquire: %w", b.Index, err)
		}
		defer func() {
			if release == nil {
				return
			}
			if rerr := release(res); rerr != nil {
				err = errors.Join(err, fmt.Errorf("batch %d: release: %w", b.Index, rerr))
			}
		}()

		var node int
		for node = b.Start; node < b.End; node++ {
			if err = fn(res, node); err != nil {
				return err
			}
		}
		return nil
	})
}
