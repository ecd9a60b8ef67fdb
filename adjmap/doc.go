// Package adjmap implements directed graphs as algebraic values: graphs are
// composed with Overlay and Connect instead of being mutated vertex by vertex,
// and every construction path folds into one canonical adjacency map, so
// algebraically equal expressions yield structurally equal values.
//
// What:
//
//   - Graph[V] is an immutable value; the zero value is the empty graph.
//   - Primitive constructors: Empty, Vertex, Overlay, Connect, FromAdjacencySets.
//   - Derived constructors: Vertices, Edges, Overlays, Connects, Clique, Path,
//     Circuit, Star — all definable as folds over the primitives.
//   - Transformations: GMap (vertex relabeling), Induce, Transpose,
//     RemoveVertex, RemoveEdge, ReplaceVertex.
//   - A total order (Compare) refining the subgraph relation, and a canonical
//     textual form (String) naming the simplest constructor that denotes the
//     graph.
//
// Laws (checked by the package tests):
//
//   - Overlay is commutative, associative and idempotent, with identity Empty.
//   - Connect is associative, with identity Empty, and distributes over
//     Overlay: Connect(x, Overlay(y, z)) == Overlay(Connect(x, y), Connect(x, z)).
//   - Decomposition: Connect(Connect(x, y), z) ==
//     Overlays(Connect(x, y), Connect(x, z), Connect(y, z)).
//
// Invariant (closure): every vertex appearing in a successor set is also a key
// of the adjacency map. All constructors preserve it; Consistent asserts it in
// tests.
//
// Complexity:
//
//   - Overlay: O(n + m); Connect: O(n + m + n_x·n_y) for the cross edges.
//   - Ordered views (VertexList, EdgeList): O(n log n + m log m).
//   - Compare, Equal, String: linear in the ordered views they consume.
//
// Determinism: every ordered view and the canonical form enumerate vertices
// and edges in ascending order, so results are identical across runs and
// across construction histories of equal graphs.
package adjmap
