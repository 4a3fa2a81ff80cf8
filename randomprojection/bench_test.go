package randomprojection_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/graphalgo/randomprojection"
)

// BenchmarkCompute measures a full run on a 10k-node ring with chords.
func BenchmarkCompute(b *testing.B) {
	g := ringWithChords(b, 10_000)
	cfg, err := randomprojection.NewConfig(
		randomprojection.WithEmbeddingDimension(64),
		randomprojection.WithIterations(3),
		randomprojection.WithRandomSeed(1),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.RelationshipCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = randomprojection.Run(context.Background(), g, cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}
