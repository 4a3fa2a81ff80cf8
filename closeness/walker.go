package closeness

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/graphalgo/core"
)

// walker holds the mutable BFS state of one task. It is reused for every
// source of the task.
type walker struct {
	graph   core.Graph
	visited *bitset.BitSet
	queue   []int
	next    []int
}

func newWalker(g core.Graph, nodeCount int) *walker {
	return &walker{
		graph:   g,
		visited: bitset.New(uint(nodeCount)),
		queue:   make([]int, 0, 64),
		next:    make([]int, 0, 64),
	}
}

// farness explores level by level from source and returns the number of
// reached nodes (source included) and the sum of their distances.
func (w *walker) farness(source int) (reached int, farness int64, err error) {
	w.visited.ClearAll()
	w.visited.Set(uint(source))
	w.queue = append(w.queue[:0], source)
	reached = 1

	var depth int64
	for len(w.queue) > 0 {
		depth++
		w.next = w.next[:0]
		for _, node := range w.queue {
			err = w.graph.ForEachRelationship(node, w.discover)
			if err != nil {
				return 0, 0, err
			}
		}
		reached += len(w.next)
		farness += depth * int64(len(w.next))
		w.queue, w.next = w.next, w.queue
	}

	return reached, farness, nil
}

// discover enqueues target on first sight.
func (w *walker) discover(_, target int) bool {
	if !w.visited.Test(uint(target)) {
		w.visited.Set(uint(target))
		w.next = append(w.next, target)
	}
	return true
}
