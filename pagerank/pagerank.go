// Package pagerank computes damped rank propagation over a core.Graph.
//
//	score(n) = (1−d)·teleport(n) + d · Σ_{s→n} score(s) / degree(s)
//
// Scores are not normalized: every node starts at 1−d and a node without
// incoming relationships keeps 1−d. teleport(n) is 1 for every node, or only
// for the SourceNodes set when one is given (personalised PageRank).
//
// Relationships are read in the orientation the graph was built with; the
// incoming view comes from core.Transpose. Each iteration is a parallel pass
// over nodes that reads the previous scores and writes only the node's own
// next score, so the result does not depend on Concurrency.
package pagerank

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/memest"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/katalvlaran/graphalgo/progress"
)

// Result holds the scores of every node.
type Result struct {
	Scores      []float64
	Iterations  int
	DidConverge bool
}

// Score returns the score of node, or NaN when node is out of range.
func (r *Result) Score(node int) float64 {
	if node < 0 || node >= len(r.Scores) {
		return math.NaN()
	}
	return r.Scores[node]
}

// Run computes PageRank on g. A nil tracker discards progress.
//
// Errors: ErrInvalidConfig, ErrComputationFailed (wrapping the cause).
// Complexity: O(k·(V + E)) time, O(V + E) extra memory.
func Run(ctx context.Context, g core.Graph, cfg Config, tracker progress.Tracker) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := g.NodeCount()
	personalised := cfg.SourceNodes != nil && !cfg.SourceNodes.IsEmpty()
	if personalised && int64(cfg.SourceNodes.Maximum()) >= int64(n) {
		return nil, fmt.Errorf("%w: source node %d: %w", ErrInvalidConfig, cfg.SourceNodes.Maximum(), core.ErrNodeOutOfRange)
	}
	tracker = progress.OrNull(tracker)

	incoming, err := core.Transpose(g)
	if err != nil {
		return nil, fmt.Errorf("%w: transpose: %w", ErrComputationFailed, err)
	}

	var (
		d       = cfg.DampingFactor
		base    = 1 - d
		prev    = make([]float64, n)
		next    = make([]float64, n)
		degrees = make([]int, n)
		opts    = parallel.Options{Concurrency: cfg.Concurrency, BatchSize: cfg.BatchSize}
		deltas  = make([]float64, len(parallel.Partition(n, cfg.BatchSize)))
	)
	teleport := func(node int) float64 {
		if personalised && !cfg.SourceNodes.Contains(uint32(node)) {
			return 0
		}
		return base
	}
	var node int
	for node = 0; node < n; node++ {
		degrees[node] = g.Degree(node)
		prev[node] = teleport(node)
	}

	tracker.LogMessage(":: Start")
	res := &Result{}
	for res.Iterations < cfg.MaxIterations {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: before iteration %d: %w", ErrComputationFailed, res.Iterations+1, err)
		}
		iter := res.Iterations + 1
		tracker.LogMessage(fmt.Sprintf("Iteration %d :: Start", iter))
		tracker.Reset(int64(g.RelationshipCount()))
		clear(deltas)

		err = parallel.ForEachNodeScoped(ctx, n, opts,
			func(b parallel.Batch) (scope, error) {
				return scope{graph: incoming.ConcurrentCopy(), batch: b.Index}, nil
			},
			func(s scope) error { return core.Release(s.graph) },
			func(s scope, node int) error {
				var sum float64
				err := s.graph.ForEachRelationship(node, func(_, source int) bool {
					sum += prev[source] / float64(degrees[source])
					return true
				})
				if err != nil {
					return err
				}
				tracker.LogProgress(int64(s.graph.Degree(node)))

				next[node] = teleport(node) + d*sum
				deltas[s.batch] = math.Max(deltas[s.batch], math.Abs(next[node]-prev[node]))
				return nil
			},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: iteration %d: %w", ErrComputationFailed, iter, err)
		}
		tracker.LogMessage(fmt.Sprintf("Iteration %d :: Finished", iter))

		prev, next = next, prev
		res.Iterations = iter
		if maxDelta(deltas) < cfg.Tolerance {
			res.DidConverge = true
			break
		}
	}
	tracker.LogMessage(":: Finished")

	res.Scores = prev
	return res, nil
}

// scope is the private state of one task: its graph handle and the slot of
// deltas it owns.
type scope struct {
	graph core.Graph
	batch int
}

func maxDelta(deltas []float64) float64 {
	var m float64
	for _, v := range deltas {
		m = math.Max(m, v)
	}
	return m
}

// MemoryEstimation returns the bytes a run over the given graph size allocates:
// two score arrays, the degree array, the transposed graph and the batch deltas.
func MemoryEstimation(nodeCount, relationshipCount, batchSize int) memest.Estimate {
	n := int64(max(nodeCount, 0))
	if batchSize < 1 {
		batchSize = parallel.DefaultBatchSize
	}
	batches := (n + int64(batchSize) - 1) / int64(batchSize)

	return memest.Fixed(memest.SizeOfFloat64Slice(n)).Times(2).Add(
		memest.Fixed(memest.SizeOfInt64Slice(n)),
		memest.Fixed(memest.SizeOfInt64Slice(n+1)),
		memest.Fixed(memest.SizeOfInt64Slice(int64(max(relationshipCount, 0)))),
		memest.Fixed(memest.SizeOfFloat64Slice(batches)),
	)
}
