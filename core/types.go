// Package core defines the Graph accessor contract, the dense CSR
// implementation, and the options and sentinel errors used to build it.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an external node id is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeOutOfRange indicates a dense node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel relationship was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrClosed indicates traversal through a concurrent copy that was already released.
	ErrClosed = errors.New("core: graph copy is closed")

	// ErrUnknownOrientation indicates an Orientation value outside Natural/Reverse/Undirected.
	ErrUnknownOrientation = errors.New("core: unknown orientation")
)

// Orientation selects how relationships are stored when a graph is built.
type Orientation int

const (
	// Natural stores every relationship as source→target.
	Natural Orientation = iota
	// Reverse stores every relationship as target→source.
	Reverse
	// Undirected stores every relationship in both directions.
	Undirected
)

// String returns the canonical lower-case name of o.
func (o Orientation) String() string {
	switch o {
	case Natural:
		return "natural"
	case Reverse:
		return "reverse"
	case Undirected:
		return "undirected"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation maps a (case-sensitive) name produced by String back to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	switch name {
	case "", "natural":
		return Natural, nil
	case "reverse":
		return Reverse, nil
	case "undirected":
		return Undirected, nil
	default:
		return Natural, fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
	}
}

// RelationshipConsumer receives one (source, target) pair during traversal.
// Returning false stops the traversal of the current node early.
type RelationshipConsumer func(source, target int) bool

// Graph is the read-only accessor every algorithm is written against.
//
// Implementations must be safe for concurrent readers of NodeCount, Degree and
// RelationshipCount. ForEachRelationship may carry per-instance traversal state;
// parallel callers therefore traverse through their own ConcurrentCopy().
type Graph interface {
	// NodeCount returns the number of nodes; ids are dense in [0, NodeCount()).
	NodeCount() int

	// RelationshipCount returns the number of stored relationships.
	RelationshipCount() int

	// Degree returns the number of relationships stored for node.
	Degree(node int) int

	// ForEachRelationship invokes fn for every relationship of node, in storage
	// order, until fn returns false.
	ForEachRelationship(node int, fn RelationshipConsumer) error

	// ConcurrentCopy returns an independent traversal handle over the same data.
	ConcurrentCopy() Graph
}

// GraphOption configures a Builder before relationships are added.
type GraphOption func(c *graphConfig)

// graphConfig holds the construction-time policy of a Builder.
type graphConfig struct {
	orientation Orientation
	allowLoops  bool
	allowMulti  bool
}

// WithOrientation sets the storage orientation (default Natural).
func WithOrientation(o Orientation) GraphOption {
	return func(c *graphConfig) { c.orientation = o }
}

// WithLoops permits self-loops (relationships from a node to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithMultiEdges permits parallel relationships between the same nodes.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}
