// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path builds P_n: relationships i→i+1 for i = 0..n-2 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodPath, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, b, cfg, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n: relationships i→(i+1)%n for i = 0..n-1 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodCycle, b, cfg, n); err != nil {
			return err
		}
		return ring(methodCycle, b, cfg, 0, n)
	}
}

// Star builds a hub (index 0) with relationships 0→i for i = 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodStar, b, cfg, n); err != nil {
			return err
		}
		return spokes(methodStar, b, cfg, n)
	}
}

// Wheel builds W_n: a rim cycle over indices 1..n-1 followed by the spokes
// 0→i (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodWheel, b, cfg, n); err != nil {
			return err
		}
		if err := ring(methodWheel, b, cfg, 1, n-1); err != nil {
			return err
		}
		return spokes(methodWheel, b, cfg, n)
	}
}

// ring links indices first..first+size-1 into a cycle.
func ring(method string, b *core.Builder, cfg builderConfig, first, size int) error {
	for i := 0; i < size; i++ {
		if err := link(method, b, cfg, first+i, first+(i+1)%size); err != nil {
			return err
		}
	}
	return nil
}

func spokes(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 1; i < n; i++ {
		if err := link(method, b, cfg, 0, i); err != nil {
			return err
		}
	}
	return nil
}
