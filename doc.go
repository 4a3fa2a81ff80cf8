// Package graphalgo computes node embeddings and centralities over large
// in-memory graphs.
//
// The module is organised in layers:
//
//	core/              compressed (CSR) graph, id mapping, builder, transpose
//	rng/               deterministic per-task random streams
//	parallel/          batch partitioning and bounded worker pools
//	progress/          slog logging, progress tracking, Prometheus metrics
//	memest/            memory estimates and budget checks
//	randomprojection/  FastRP node embeddings
//	pagerank/          PageRank and personalised PageRank
//	closeness/         closeness centrality (optionally Wasserman-Faust)
//	builder/           synthetic topologies (path, cycle, star, wheel, grid, random)
//	edgelist/          plain-text edge lists, zstd and lz4 compressed
//	config/            YAML run configuration
//	cmd/graphalgo/     command-line front end
//
// A minimal embedding run:
//
//	b := core.NewBuilder(core.WithOrientation(core.Undirected))
//	_ = b.AddRelationship("a", "b")
//	_ = b.AddRelationship("b", "c")
//	g := b.Build()
//
//	cfg, _ := randomprojection.NewConfig(
//		randomprojection.WithEmbeddingDimension(64),
//		randomprojection.WithRandomSeed(42),
//	)
//	emb, err := randomprojection.Run(ctx, g, cfg, nil)
//
// Every algorithm takes a context.Context for cancellation and an optional
// progress.Tracker; a fixed seed yields identical results for any concurrency.
package graphalgo
