package randomprojection

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/katalvlaran/graphalgo/progress"
	"github.com/katalvlaran/graphalgo/rng"
)

type state uint8

const (
	stateInit state = iota
	stateDone
	stateFailed
)

// RandomProjection is one embedding computation over a fixed graph and Config.
// It is not safe for concurrent use; Compute parallelizes internally.
type RandomProjection struct {
	graph   core.Graph
	cfg     Config
	tracker progress.Tracker

	buffers    *bufferPair
	embeddings *Embeddings
	state      state
	err        error
}

// AllocationSizes describes the allocations of one computation.
type AllocationSizes struct {
	EmbeddingDimension int
	BufferCount        int
	RowLength          int
}

// New validates cfg and allocates the working buffers and the output rows.
// A nil tracker discards progress. Nothing is allocated when cfg is invalid.
//
// Errors: ErrInvalidConfig.
// Complexity: O(V·(2·d + rowLength)) memory.
func New(g core.Graph, cfg Config, tracker progress.Tracker) (*RandomProjection, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.IterationWeights = append([]float64(nil), cfg.IterationWeights...)

	n := g.NodeCount()
	return &RandomProjection{
		graph:      g,
		cfg:        cfg,
		tracker:    progress.OrNull(tracker),
		buffers:    newBufferPair(n, cfg.EmbeddingDimension),
		embeddings: newEmbeddings(n, cfg.RowLength()),
	}, nil
}

// Run is New, Compute and Release in one call.
func Run(ctx context.Context, g core.Graph, cfg Config, tracker progress.Tracker) (*Embeddings, error) {
	rp, err := New(g, cfg, tracker)
	if err != nil {
		return nil, err
	}
	defer rp.Release()

	return rp.Compute(ctx)
}

// Compute generates the seed vectors and runs every iteration. On failure the
// object is left in a terminal failed state and no embeddings are returned.
// A second call returns the outcome of the first.
//
// Errors: ErrComputationFailed (wrapping the cause), ErrReleased.
func (rp *RandomProjection) Compute(ctx context.Context) (*Embeddings, error) {
	switch rp.state {
	case stateDone:
		return rp.embeddings, nil
	case stateFailed:
		return nil, rp.err
	}
	if rp.buffers == nil {
		return nil, ErrReleased
	}

	if err := rp.compute(ctx); err != nil {
		rp.state = stateFailed
		rp.err = err
		rp.embeddings = nil
		return nil, err
	}
	rp.state = stateDone

	return rp.embeddings, nil
}

func (rp *RandomProjection) compute(ctx context.Context) error {
	seed := rng.ClockSeed()
	if rp.cfg.RandomSeed != nil {
		seed = *rp.cfg.RandomSeed
	}

	rp.tracker.LogMessage(":: Start")
	if err := rp.initRandomVectors(ctx, seed); err != nil {
		return fmt.Errorf("%w: random vectors: %w", ErrComputationFailed, err)
	}

	var i int
	for i = 0; i < rp.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: before iteration %d: %w", ErrComputationFailed, i+1, err)
		}
		rp.tracker.LogMessage(fmt.Sprintf("Iteration %d :: Start", i+1))
		rp.tracker.Reset(int64(rp.graph.RelationshipCount()))
		if err := rp.propagate(ctx, i); err != nil {
			return fmt.Errorf("%w: iteration %d: propagate: %w", ErrComputationFailed, i+1, err)
		}
		if err := rp.combine(ctx, i); err != nil {
			return fmt.Errorf("%w: iteration %d: combine: %w", ErrComputationFailed, i+1, err)
		}
		rp.tracker.LogMessage(fmt.Sprintf("Iteration %d :: Finished", i+1))
	}
	rp.tracker.LogMessage(":: Finished")

	return nil
}

// Embeddings returns the result of a successful Compute.
//
// Errors: ErrNotComputed.
func (rp *RandomProjection) Embeddings() (*Embeddings, error) {
	if rp.state != stateDone {
		return nil, ErrNotComputed
	}
	return rp.embeddings, nil
}

// Release drops the working buffers. The returned embeddings stay valid.
// Calling Release more than once is a no-op.
func (rp *RandomProjection) Release() {
	rp.buffers = nil
}

// Sizes reports the dimensions of the allocations made by New.
func (rp *RandomProjection) Sizes() AllocationSizes {
	return AllocationSizes{
		EmbeddingDimension: rp.cfg.EmbeddingDimension,
		BufferCount:        2,
		RowLength:          rp.cfg.RowLength(),
	}
}

// Config returns the configuration of the run.
func (rp *RandomProjection) Config() Config {
	return rp.cfg
}

func (rp *RandomProjection) parallelOptions() parallel.Options {
	return parallel.Options{Concurrency: rp.cfg.Concurrency, BatchSize: rp.cfg.BatchSize}
}
