// Package gen constructs seeded random graphs for tests and benchmarks.
//
// Generators are deterministic for a fixed seed: vertices are 0..n-1 and
// edge trials run in a stable order (source ascending, then target
// ascending), so a seed pins down the exact graph across runs and platforms.
//
// Sparse samples an Erdős–Rényi style graph: every ordered vertex pair gains
// an edge independently with probability p. Acyclic restricts trials to
// pairs with source < target, yielding a DAG whose edges all point upward.
//
// Options:
//
//   - WithSeed(seed): seed for the sampling RNG; DefaultSeed otherwise.
//   - WithSelfLoops(): admit u→u trials in Sparse (never in Acyclic).
//
// Errors:
//
//   - ErrTooFewVertices: negative vertex count.
//   - ErrInvalidProbability: p outside [0, 1].
package gen
