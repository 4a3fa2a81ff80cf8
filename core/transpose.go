package core

import (
	"fmt"
	"io"
)

// Transpose returns a CSR whose relationships are those of g reversed, i.e. the
// targets of node n in the result are the nodes that list n as a target in g.
// Each node's incoming sources appear in ascending source order.
//
// When g is a *CSR the result shares its IDMap and records the opposite
// orientation (Undirected stays Undirected).
//
// Complexity: O(V + E) time and space; two traversals of g.
func Transpose(g Graph) (*CSR, error) {
	n := g.NodeCount()
	offsets := make([]int, n+1)

	var (
		node int
		err  error
	)
	for node = 0; node < n; node++ {
		err = g.ForEachRelationship(node, func(_, target int) bool {
			offsets[target+1]++
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("Transpose: count node %d: %w", node, err)
		}
	}
	for node = 0; node < n; node++ {
		offsets[node+1] += offsets[node]
	}

	targets := make([]int, offsets[n])
	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	for node = 0; node < n; node++ {
		err = g.ForEachRelationship(node, func(source, target int) bool {
			targets[cursor[target]] = source
			cursor[target]++
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("Transpose: fill node %d: %w", node, err)
		}
	}

	out := &CSR{offsets: offsets, targets: targets, orientation: Reverse}
	if c, ok := g.(*CSR); ok {
		out.ids = c.ids
		switch c.orientation {
		case Reverse:
			out.orientation = Natural
		case Undirected:
			out.orientation = Undirected
		}
	}
	if out.ids == nil {
		out.ids = NewIDMap(0)
	}

	return out, nil
}

// Release closes g when it implements io.Closer. It is the release half of the
// acquire/release pair used for per-task concurrent copies.
func Release(g Graph) error {
	if c, ok := g.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
