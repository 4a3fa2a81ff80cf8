package parallel_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	require.Nil(t, parallel.Partition(0, 4))

	got := parallel.Partition(10, 4)
	require.Equal(t, []parallel.Batch{
		{Index: 0, Start: 0, End: 4},
		{Index: 1, Start: 4, End: 8},
		{Index: 2, Start: 8, End: 10},
	}, got)
	require.Equal(t, 2, got[2].Len())

	// non-positive batch size falls back to the default
	require.Len(t, parallel.Partition(parallel.DefaultBatchSize+1, 0), 2)
}

func TestForEachBatch_OptionViolation(t *testing.T) {
	ctx := context.Background()
	noop := func(context.Context, parallel.Batch) error { return nil }

	err := parallel.ForEachBatch(ctx, 10, parallel.Options{Concurrency: -1}, noop)
	require.ErrorIs(t, err, parallel.ErrOptionViolation)

	err = parallel.ForEachBatch(ctx, 10, parallel.Options{BatchSize: -3}, noop)
	require.ErrorIs(t, err, parallel.ErrOptionViolation)
}

// TestForEachNode_ExactlyOnce checks every node is visited once for several
// pool sizes, using a bitmap for coverage and counters for multiplicity.
func TestForEachNode_ExactlyOnce(t *testing.T) {
	const n = 10_007
	for _, conc := range []int{1, 3, 8} {
		counts := make([]int32, n)
		err := parallel.ForEachNode(context.Background(), n, parallel.Options{Concurrency: conc, BatchSize: 100},
			func(node int) error {
				atomic.AddInt32(&counts[node], 1)
				return nil
			})
		require.NoError(t, err)

		seen := roaring.New()
		for node, c := range counts {
			require.EqualValues(t, 1, c, "node %d concurrency %d", node, conc)
			seen.Add(uint32(node))
		}
		require.EqualValues(t, n, seen.GetCardinality())
	}
}

// TestForEachBatch_Disjoint checks batches tile the range without overlap.
func TestForEachBatch_Disjoint(t *testing.T) {
	const n = 5000
	var (
		mu    sync.Mutex
		cover = roaring.New()
		total int
	)
	err := parallel.ForEachBatch(context.Background(), n, parallel.Options{Concurrency: 4, BatchSize: 333},
		func(_ context.Context, b parallel.Batch) error {
			mu.Lock()
			defer mu.Unlock()
			cover.AddRange(uint64(b.Start), uint64(b.End))
			total += b.Len()
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, n, total)
	require.EqualValues(t, n, cover.GetCardinality())
}

func TestForEachNode_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	var visited atomic.Int64
	err := parallel.ForEachNode(context.Background(), 100_000, parallel.Options{Concurrency: 1, BatchSize: 10},
		func(node int) error {
			visited.Add(1)
			if node == 15 {
				return boom
			}
			return nil
		})
	require.ErrorIs(t, err, boom)
	require.Less(t, visited.Load(), int64(100_000), "later batches must not be scheduled")
}

func TestForEachNode_PanicBecomesError(t *testing.T) {
	err := parallel.ForEachNode(context.Background(), 10, parallel.Options{Concurrency: 2, BatchSize: 2},
		func(node int) error {
			if node == 3 {
				panic("bad node")
			}
			return nil
		})
	require.ErrorIs(t, err, parallel.ErrWorkerPanic)
}

func TestForEachNode_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := parallel.ForEachNode(ctx, 10, parallel.Options{}, func(int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

// TestForEachNodeScoped_ReleaseOnAllPaths checks acquire/release pairing on
// success, error and panic.
func TestForEachNodeScoped_ReleaseOnAllPaths(t *testing.T) {
	type scope struct{ batch int }

	run := func(fail func(node int) error) (acquired, released int64, err error) {
		var a, r atomic.Int64
		err = parallel.ForEachNodeScoped(context.Background(), 50, parallel.Options{Concurrency: 4, BatchSize: 5},
			func(b parallel.Batch) (*scope, error) {
				a.Add(1)
				return &scope{batch: b.Index}, nil
			},
			func(*scope) error {
				r.Add(1)
				return nil
			},
			func(_ *scope, node int) error { return fail(node) },
		)
		return a.Load(), r.Load(), err
	}

	acq, rel, err := run(func(int) error { return nil })
	require.NoError(t, err)
	require.EqualValues(t, 10, acq)
	require.Equal(t, acq, rel)

	acq, rel, err = run(func(node int) error {
		if node == 12 {
			return errors.New("traversal failed")
		}
		return nil
	})
	require.Error(t, err)
	require.Equal(t, acq, rel)

	acq, rel, err = run(func(node int) error {
		if node == 7 {
			panic("cursor corrupted")
		}
		return nil
	})
	require.ErrorIs(t, err, parallel.ErrWorkerPanic)
	require.Equal(t, acq, rel)
}

func TestForEachNodeScoped_ReleaseError(t *testing.T) {
	closeErr := errors.New("close failed")
	err := parallel.ForEachNodeScoped(context.Background(), 3, parallel.Options{Concurrency: 1},
		func(parallel.Batch) (int, error) { return 0, nil },
		func(int) error { return closeErr },
		func(int, int) error { return nil },
	)
	require.ErrorIs(t, err, closeErr)
}
