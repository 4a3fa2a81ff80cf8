package randomprojection_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/randomprojection"
)

// ExampleRun embeds a directed path a→b→c. Node c has no outgoing
// relationships, so every iteration leaves it at zero.
func ExampleRun() {
	b := core.NewBuilder()
	_ = b.AddRelationship("a", "b")
	_ = b.AddRelationship("b", "c")
	g := b.Build()

	cfg, err := randomprojection.NewConfig(
		randomprojection.WithEmbeddingDimension(4),
		randomprojection.WithIterations(2),
		randomprojection.WithRandomSeed(42),
	)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	emb, err := randomprojection.Run(context.Background(), g, cfg, nil)
	if err != nil {
		fmt.Println("compute:", err)
		return
	}

	c, _ := g.ToMapped("c")
	fmt.Println("rows:", emb.Len(), "row length:", emb.RowLength())
	fmt.Println("c:", emb.Row(c))
	// Output:
	// rows: 3 row length: 8
	// c: [0 0 0 0 0 0 0 0]
}
