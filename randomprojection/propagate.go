package randomprojection

import (
	"context"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/parallel"
	"gonum.org/v1/gonum/floats"
)

// propagate computes iteration i: every node's current vector becomes the mean
// of its targets' previous vectors. Only the node's own current row is written.
func (rp *RandomProjection) propagate(ctx context.Context, i int) error {
	current := rp.buffers.current(i)
	previous := rp.buffers.previous(i)

	return parallel.ForEachNodeScoped(ctx, rp.graph.NodeCount(), rp.parallelOptions(),
		func(parallel.Batch) (core.Graph, error) {
			return rp.graph.ConcurrentCopy(), nil
		},
		core.Release,
		func(g core.Graph, node int) error {
			row := current[node]
			clear(row)
			err := g.ForEachRelationship(node, func(_, target int) bool {
				floats.Add(row, previous[target])
				return true
			})
			if err != nil {
				return err
			}

			degree := g.Degree(node)
			rp.tracker.LogProgress(int64(degree))
			if degree > 0 {
				floats.Scale(1/float64(degree), row)
			}
			return nil
		},
	)
}
