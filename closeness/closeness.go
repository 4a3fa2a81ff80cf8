// Package closeness computes closeness centrality over a core.Graph with one
// unweighted breadth-first search per node.
//
//	closeness(s) = (reached(s) − 1) / farness(s)
//	farness(s)   = Σ dist(s, t) over every t ≠ s reachable from s
//
// A node that reaches nothing has closeness 0. With WassermanFaust the score
// is multiplied by (reached(s) − 1)/(V − 1), which penalises nodes that only
// see a small component.
//
// Sources are processed in parallel batches. Each task owns its graph copy,
// its BFS queues and its visited bitset, and writes only the scores of its
// own sources.
//
// Complexity: O(V·(V + E)) time, O(V) memory per worker.
package closeness

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/katalvlaran/graphalgo/progress"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned for a negative concurrency or batch size.
	ErrInvalidConfig = errors.New("closeness: invalid configuration")

	// ErrComputationFailed wraps any failure that aborted a run.
	ErrComputationFailed = errors.New("closeness: computation failed")
)

// Config is the immutable input of one run.
type Config struct {
	Concurrency    int  `yaml:"concurrency"`
	BatchSize      int  `yaml:"batchSize"`
	WassermanFaust bool `yaml:"wassermanFaust"`
}

// Option mutates a Config.
type Option func(*Config)

// WithConcurrency sets the worker count; 0 selects parallel.DefaultConcurrency().
func WithConcurrency(n int) Option {
	return func(c *Config) { c.Concurrency = n }
}

// WithBatchSize sets the number of sources handled by one task.
func WithBatchSize(n int) Option {
	return func(c *Config) { c.BatchSize = n }
}

// WithWassermanFaust enables the component-size correction.
func WithWassermanFaust() Option {
	return func(c *Config) { c.WassermanFaust = true }
}

// Result holds the centrality of every node.
type Result struct {
	Centrality []float64
}

// Run computes closeness centrality for every node of g.
//
// Errors: ErrInvalidConfig, ErrComputationFailed (wrapping the cause).
func Run(ctx context.Context, g core.Graph, tracker progress.Tracker, opts ...Option) (*Result, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return RunConfig(ctx, g, cfg, tracker)
}

// RunConfig is Run with an explicit Config. Zero fields select defaults.
func RunConfig(ctx context.Context, g core.Graph, cfg Config, tracker progress.Tracker) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidConfig)
	}
	if cfg.Concurrency < 0 || cfg.BatchSize < 0 {
		return nil, fmt.Errorf("%w: concurrency %d, batch size %d", ErrInvalidConfig, cfg.Concurrency, cfg.BatchSize)
	}
	tracker = progress.OrNull(tracker)

	n := g.NodeCount()
	res := &Result{Centrality: make([]float64, n)}

	tracker.LogMessage(":: Start")
	tracker.Reset(int64(n))
	err := parallel.ForEachNodeScoped(ctx, n,
		parallel.Options{Concurrency: cfg.Concurrency, BatchSize: cfg.BatchSize},
		func(parallel.Batch) (*walker, error) {
			return newWalker(g.ConcurrentCopy(), n), nil
		},
		func(w *walker) error { return core.Release(w.graph) },
		func(w *walker, source int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reached, farness, err := w.farness(source)
			if err != nil {
				return fmt.Errorf("source %d: %w", source, err)
			}
			res.Centrality[source] = centrality(reached, farness, n, cfg.WassermanFaust)
			tracker.LogProgress(1)
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComputationFailed, err)
	}
	tracker.LogMessage(":: Finished")

	return res, nil
}

func centrality(reached int, farness int64, nodeCount int, wassermanFaust bool) float64 {
	if farness == 0 {
		return 0
	}
	others := float64(reached - 1)
	c := others / float64(farness)
	if wassermanFaust {
		c *= others / float64(nodeCount-1)
	}
	return c
}
