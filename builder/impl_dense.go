// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodComplete      = "Complete"
	methodGrid          = "Grid"
	methodRandomSparse  = "RandomSparse"
	minCompleteNodes    = 1
	minGridDim          = 1
	minRandomSparseSize = 1
)

// Complete builds K_n (n ≥ 1). Undirected builders get each unordered pair
// {i<j} once; directed builders get every ordered pair (i≠j).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, b, cfg, n); err != nil {
			return err
		}
		return forEachPair(b, n, false, func(i, j int) error {
			return link(methodComplete, b, cfg, i, j)
		})
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice. Vertex (r,c) has index
// r·cols+c; each vertex links to its right neighbour, then its lower one.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addNodes(methodGrid, b, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := link(methodGrid, b, cfg, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, b, cfg, at, at+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph: every admissible pair is linked
// independently with probability p. Pairs are tried in ascending (i, j) order,
// self-pairs only when the builder allows loops.
//
// Requires an RNG (WithSeed/WithRand) when 0 < p < 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseSize, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomSparse, b, cfg, n); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}
		return forEachPair(b, n, b.Looped(), func(i, j int) error {
			if p < 1 && cfg.rng.Float64() >= p {
				return nil
			}
			return link(methodRandomSparse, b, cfg, i, j)
		})
	}
}

// forEachPair visits candidate pairs in ascending order: unordered pairs for
// undirected builders, ordered pairs otherwise.
func forEachPair(b *core.Builder, n int, loops bool, fn func(i, j int) error) error {
	undirected := b.Orientation() == core.Undirected
	for i := 0; i < n; i++ {
		j := 0
		if undirected {
			j = i
		}
		for ; j < n; j++ {
			if i == j && !loops {
				continue
			}
			if err := fn(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}
