// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures on top of
// core.Builder for tests, examples, benchmarks and the CLI.
//
// The package offers:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...) creates a core.Builder, resolves the
//     builder configuration and applies every Constructor in order.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), PrefixIDFn(prefix) ("v0","v1",…),
//     ExcelColumnIDFn ("A",…,"Z","AA",…), HexIDFn ("0",…,"ff",…).
//   - Options (BuilderOption):
//     – WithIDScheme, WithPrefix, WithSeed, WithRand.
//
// Orientation:
//
//	Constructors emit each relationship once, in a documented order. The
//	core.Builder orientation decides whether it is stored as given, reversed
//	or in both directions. Complete and RandomSparse enumerate ordered pairs
//	for Natural/Reverse graphs and unordered pairs for Undirected graphs.
//
// Determinism:
//
//	Same constructors, options and seed ⇒ identical graphs. WithSeed draws from
//	the rng package's HighQuality generator.
//
// Errors:
//
//	ErrTooFewVertices      – size parameter below the topology minimum
//	ErrInvalidProbability  – p outside [0,1]
//	ErrNeedRandSource      – stochastic constructor without WithSeed/WithRand
//	ErrConstructFailed     – nil constructor passed to BuildGraph
//
// Core errors (loops, multi-edges) are wrapped with the constructor name.
package builder
