// Package dense offers an index-compressed adjacency representation for
// traversal-heavy algorithms over adjmap graphs.
//
// The dense package provides:
//
//   - Graph[V] with a bijective vertex↔index mapping (indices are assigned in
//     ascending vertex order, so the layout is deterministic).
//   - Forward and reverse integer adjacency rows for O(1)-per-step walks in
//     either edge direction, without map lookups on the hot path.
//
// Build once with FromAdjacencyMap in O(n + m); the result is read-only.
// Dense graphs are best treated as throwaway substrates: derive one, run the
// traversal, convert indices back through VertexAt.
package dense
