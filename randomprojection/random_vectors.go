package randomprojection

import (
	"context"
	"math"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/katalvlaran/graphalgo/rng"
)

// seedTask is the private state of one seeding batch.
type seedTask struct {
	graph  core.Graph
	random *rng.HighQuality
}

// initRandomVectors writes the seed vector of every node into the seed buffer.
func (rp *RandomProjection) initRandomVectors(ctx context.Context, seed int64) error {
	var (
		dim         = rp.cfg.EmbeddingDimension
		probability = 1.0 / (2.0 * float64(rp.cfg.Sparsity))
		baseValue   = math.Sqrt(float64(rp.cfg.Sparsity)) / math.Sqrt(float64(dim))
		strength    = rp.cfg.NormalizationStrength
		seeds       = rp.buffers.seeds()
	)

	rp.tracker.LogMessage("Computing random vectors")
	rp.tracker.Reset(int64(rp.graph.NodeCount()))

	return parallel.ForEachNodeScoped(ctx, rp.graph.NodeCount(), rp.parallelOptions(),
		func(b parallel.Batch) (*seedTask, error) {
			return &seedTask{
				graph:  rp.graph.ConcurrentCopy(),
				random: rng.New(rng.DeriveSeed(seed, uint64(b.Index))),
			}, nil
		},
		func(t *seedTask) error {
			return core.Release(t.graph)
		},
		func(t *seedTask, node int) error {
			scaling := 1.0
			if degree := t.graph.Degree(node); degree > 0 {
				scaling = math.Pow(float64(degree), strength)
			}
			fillRandomVector(t.random, seeds[node], probability, scaling*baseValue)
			rp.tracker.LogProgress(1)
			return nil
		},
	)
}

// fillRandomVector draws every entry of dst from {+value, −value, 0} with
// probabilities p, p and 1−2p.
func fillRandomVector(random *rng.HighQuality, dst []float64, p, value float64) {
	var i int
	for i = range dst {
		u := random.Float64()
		switch {
		case u < p:
			dst[i] = value
		case u < 2*p:
			dst[i] = -value
		default:
			dst[i] = 0
		}
	}
}
