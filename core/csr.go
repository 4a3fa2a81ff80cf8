package core

import (
	"fmt"
)

// CSR is the immutable compressed-sparse-row Graph implementation.
//
// The offsets/targets arrays are shared by every concurrent copy; each copy owns
// only its closed flag and traversed counter, which is why a copy must not be
// handed to more than one goroutine.
type CSR struct {
	offsets     []int
	targets     []int
	orientation Orientation
	ids         *IDMap

	// per-handle traversal state
	isCopy    bool
	closed    bool
	traversed int64
}

// compile-time check
var _ Graph = (*CSR)(nil)

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *CSR) NodeCount() int {
	return len(g.offsets) - 1
}

// RelationshipCount returns the number of stored relationships (an undirected
// relationship between two distinct nodes counts twice).
// Complexity: O(1).
func (g *CSR) RelationshipCount() int {
	return len(g.targets)
}

// Degree returns the number of relationships stored for node, or 0 for an
// out-of-range id.
// Complexity: O(1).
func (g *CSR) Degree(node int) int {
	if node < 0 || node >= g.NodeCount() {
		return 0
	}
	return g.offsets[node+1] - g.offsets[node]
}

// Orientation reports the orientation the graph was built with.
func (g *CSR) Orientation() Orientation {
	return g.orientation
}

// IDs returns the external id mapping (shared, read-only).
func (g *CSR) IDs() *IDMap {
	return g.ids
}

// ToOriginal returns the external id of a dense node id.
func (g *CSR) ToOriginal(node int) (string, error) {
	return g.ids.ToOriginal(node)
}

// ToMapped returns the dense id of an external node id.
func (g *CSR) ToMapped(external string) (int, bool) {
	return g.ids.ToMapped(external)
}

// Targets returns the targets of node as a read-only view of the shared storage.
// Callers must not modify the returned slice.
func (g *CSR) Targets(node int) []int {
	if node < 0 || node >= g.NodeCount() {
		return nil
	}
	return g.targets[g.offsets[node]:g.offsets[node+1]]
}

// ForEachRelationship invokes fn(node, target) for every stored relationship of
// node in insertion order until fn returns false.
//
// Errors: ErrNodeOutOfRange, ErrClosed.
// Complexity: O(deg(node)).
func (g *CSR) ForEachRelationship(node int, fn RelationshipConsumer) error {
	if g.closed {
		return ErrClosed
	}
	if node < 0 || node >= g.NodeCount() {
		return fmt.Errorf("ForEachRelationship(%d), nodes=%d: %w", node, g.NodeCount(), ErrNodeOutOfRange)
	}
	var i int
	for i = g.offsets[node]; i < g.offsets[node+1]; i++ {
		g.traversed++
		if !fn(node, g.targets[i]) {
			break
		}
	}

	return nil
}

// ConcurrentCopy returns a new handle sharing the immutable arrays with g.
// The copy starts open with a zero traversed counter.
// Complexity: O(1).
func (g *CSR) ConcurrentCopy() Graph {
	return &CSR{
		offsets:     g.offsets,
		targets:     g.targets,
		orientation: g.orientation,
		ids:         g.ids,
		isCopy:      true,
	}
}

// Traversed returns how many relationships were visited through this handle.
func (g *CSR) Traversed() int64 {
	return g.traversed
}

// Close releases a concurrent copy; further traversal returns ErrClosed.
// Closing the original graph is a no-op so shared owners are never invalidated.
func (g *CSR) Close() error {
	if g.isCopy {
		g.closed = true
	}
	return nil
}
