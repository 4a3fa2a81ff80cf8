package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

// ExampleBuilder demonstrates building a small graph and traversing it.
func ExampleBuilder() {
	// 1) Collect relationships (unknown nodes are registered on the fly):
	b := core.NewBuilder(core.WithOrientation(core.Undirected))
	_ = b.AddRelationship("A", "B")
	_ = b.AddRelationship("B", "C")

	// 2) Compile into the immutable accessor:
	g := b.Build()
	fmt.Println("nodes:", g.NodeCount(), "relationships:", g.RelationshipCount())

	// 3) Traverse the relationships of B:
	node, _ := g.ToMapped("B")
	_ = g.ForEachRelationship(node, func(_, target int) bool {
		id, _ := g.ToOriginal(target)
		fmt.Println("B ->", id)
		return true
	})

	// Output:
	// nodes: 3 relationships: 4
	// B -> A
	// B -> C
}
