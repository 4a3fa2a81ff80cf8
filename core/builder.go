// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable staging area that collects nodes and relationships and compiles
//       them into an immutable CSR.
// Policy:
//   - Loop and multi-edge policy is enforced at insertion time (sentinel errors).
//   - Build() never fails; orientation is applied while compiling.
//   - A Builder is single-goroutine; the CSR it produces is safe for readers.

package core

import "fmt"

// Builder accumulates nodes and relationships for a CSR.
type Builder struct {
	cfg     graphConfig
	ids     *IDMap
	sources []int
	targets []int

	// seen holds source/target pairs when multi-edges are disabled.
	seen map[[2]int]struct{}
}

// NewBuilder creates an empty Builder. By default the graph is Natural,
// without loops and without multi-edges.
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{ids: NewIDMap(0)}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	if !b.cfg.allowMulti {
		b.seen = make(map[[2]int]struct{})
	}

	return b
}

// Orientation reports the orientation the built graph will use.
func (b *Builder) Orientation() Orientation { return b.cfg.orientation }

// Looped reports whether self-loops are permitted.
func (b *Builder) Looped() bool { return b.cfg.allowLoops }

// Multigraph reports whether parallel relationships are permitted.
func (b *Builder) Multigraph() bool { return b.cfg.allowMulti }

// NodeCount returns the number of nodes added so far.
func (b *Builder) NodeCount() int { return b.ids.Len() }

// RelationshipCount returns the number of relationships added so far
// (before orientation is applied).
func (b *Builder) RelationshipCount() int { return len(b.sources) }

// AddNode registers an external id and returns its dense id. Adding an existing
// id is a no-op that returns the previously assigned dense id.
//
// Complexity: O(log V).
func (b *Builder) AddNode(id string) (int, error) {
	node, _, err := b.ids.Add(id)
	if err != nil {
		return 0, fmt.Errorf("AddNode(%q): %w", id, err)
	}
	return node, nil
}

// AddRelationship adds source→target, registering unknown endpoints first.
//
// Errors: ErrEmptyNodeID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(log V) amortised.
func (b *Builder) AddRelationship(source, target string) error {
	if source == "" || target == "" {
		return fmt.Errorf("AddRelationship(%q→%q): %w", source, target, ErrEmptyNodeID)
	}
	// validate before registering nodes so a rejected loop leaves no trace
	if source == target && !b.cfg.allowLoops {
		return fmt.Errorf("AddRelationship(%q→%q): %w", source, target, ErrLoopNotAllowed)
	}
	s, err := b.AddNode(source)
	if err != nil {
		return err
	}
	t, err := b.AddNode(target)
	if err != nil {
		return err
	}

	return b.addDense(s, t, source, target)
}

// AddRelationshipIDs adds source→target between nodes that already exist.
//
// Errors: ErrNodeOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
func (b *Builder) AddRelationshipIDs(source, target int) error {
	n := b.ids.Len()
	if source < 0 || source >= n || target < 0 || target >= n {
		return fmt.Errorf("AddRelationshipIDs(%d→%d), nodes=%d: %w", source, target, n, ErrNodeOutOfRange)
	}
	if source == target && !b.cfg.allowLoops {
		return fmt.Errorf("AddRelationshipIDs(%d→%d): %w", source, target, ErrLoopNotAllowed)
	}
	return b.addDense(source, target, b.ids.byDense[source], b.ids.byDense[target])
}

func (b *Builder) addDense(s, t int, source, target string) error {
	if !b.cfg.allowMulti {
		key := [2]int{s, t}
		if b.cfg.orientation == Undirected && t < s {
			key = [2]int{t, s}
		}
		if _, dup := b.seen[key]; dup {
			return fmt.Errorf("AddRelationship(%q→%q): %w", source, target, ErrMultiEdgeNotAllowed)
		}
		b.seen[key] = struct{}{}
	}
	b.sources = append(b.sources, s)
	b.targets = append(b.targets, t)

	return nil
}

// Build compiles the collected relationships into a CSR using a stable
// counting sort by (oriented) source, so each node's targets keep insertion order.
// The Builder may keep being used afterwards; the CSR does not alias its slices.
//
// Complexity: O(V + E) time and space.
func (b *Builder) Build() *CSR {
	n := b.ids.Len()
	offsets := make([]int, n+1)

	// pass 1: degrees
	b.forEachOriented(func(s, _ int) { offsets[s+1]++ })
	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}

	// pass 2: scatter into target slots
	targets := make([]int, offsets[n])
	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	b.forEachOriented(func(s, t int) {
		targets[cursor[s]] = t
		cursor[s]++
	})

	return &CSR{
		offsets:     offsets,
		targets:     targets,
		orientation: b.cfg.orientation,
		ids:         b.ids,
	}
}

// forEachOriented replays the relationships in insertion order, applying orientation.
func (b *Builder) forEachOriented(fn func(s, t int)) {
	var i, s, t int
	for i = range b.sources {
		s, t = b.sources[i], b.targets[i]
		switch b.cfg.orientation {
		case Reverse:
			fn(t, s)
		case Undirected:
			fn(s, t)
			if s != t {
				fn(t, s)
			}
		default:
			fn(s, t)
		}
	}
}
