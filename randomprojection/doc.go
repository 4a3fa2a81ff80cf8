// Package randomprojection computes node embeddings by random projection
// (FastRP): every node receives a sparse random seed vector, the vectors are
// propagated along relationships for a fixed number of iterations, and each
// iteration is folded into the node's output row.
//
// What
//
//   - Seed: entry ∈ {+v, −v, 0} with P(+v) = P(−v) = 1/(2·sparsity), where
//     v = degree^normalizationStrength · sqrt(sparsity) / sqrt(dim).
//     An isolated node uses scaling 1 instead of 0^normalizationStrength.
//   - Propagate: current(n) = Σ previous(t) over relationships n→t, divided
//     by max(degree(n), 1).
//   - Combine: optional L2 normalization of current(n) (a zero vector stays zero),
//     then either concatenation (row[i·dim:(i+1)·dim] = current) or, when
//     IterationWeights is set, current *= weight[i] in place and row += current,
//     so later iterations propagate the weighted vector.
//
// Buffers
//
//	Two node×dim buffers A and B alternate roles. Iteration i writes A when i
//	is even and B when i is odd, reading the other one. Seed vectors are
//	written into B so iteration 0 reads them without a copy.
//
// Concurrency
//
//	Every phase is a parallel for-each over contiguous node batches and ends
//	with a barrier. A worker writes only the rows of its own nodes and reads
//	only the previous buffer, so no locks are taken. Each batch acquires its
//	own graph copy and random generator and releases them when it ends.
//
// Determinism
//
//	Batch b draws from a generator seeded with rng.DeriveSeed(seed, b). Batch
//	boundaries depend on NodeCount and BatchSize only, so a fixed RandomSeed
//	gives bit-identical embeddings for every Concurrency.
//
// Errors
//
//	ErrInvalidConfig      – configuration rejected before any allocation
//	ErrComputationFailed  – a worker failed or the context was cancelled
//	ErrNotComputed        – embeddings requested before a successful Compute
//	ErrReleased           – Compute called after Release
//
// Complexity (V nodes, E relationships, d = EmbeddingDimension, k = Iterations)
//
//   - Time:   O(k·(V + E)·d)
//   - Memory: 2·V·d working floats + V·d·k (or V·d with weights) output floats
//
// Usage
//
//	cfg, err := randomprojection.NewConfig(
//		randomprojection.WithEmbeddingDimension(64),
//		randomprojection.WithIterations(4),
//		randomprojection.WithRandomSeed(42),
//	)
//	rp, err := randomprojection.New(g, cfg, tracker)
//	defer rp.Release()
//	emb, err := rp.Compute(ctx)
package randomprojection
