package randomprojection

import (
	"context"

	"github.com/katalvlaran/graphalgo/parallel"
	"gonum.org/v1/gonum/floats"
)

// combine folds iteration i into the output rows. NormalizeL2 and the
// iteration weight both rewrite the current vector in place, so the next
// iteration propagates the normalized, weighted vector.
func (rp *RandomProjection) combine(ctx context.Context, i int) error {
	var (
		dim      = rp.cfg.EmbeddingDimension
		offset   = i * dim
		weighted = rp.cfg.Weighted()
		current  = rp.buffers.current(i)
		rows     = rp.embeddings.rows
		weight   float64
	)
	if weighted {
		weight = rp.cfg.IterationWeights[i]
	}

	return parallel.ForEachNode(ctx, rp.graph.NodeCount(), rp.parallelOptions(), func(node int) error {
		vec := current[node]
		if rp.cfg.NormalizeL2 {
			l2Normalize(vec)
		}
		if weighted {
			floats.Scale(weight, vec)
			floats.Add(rows[node], vec)
		} else {
			copy(rows[node][offset:offset+dim], vec)
		}
		return nil
	})
}
