// Package scc computes strongly connected components and the condensation
// of adjmap graphs.
//
// What:
//
//   - Condense(g) decomposes g into its strongly connected components with
//     Kosaraju's two-pass algorithm over the dense substrate.
//   - Each component is materialized as its induced subgraph — a
//     nonempty.Graph carrying the component's internal edges and cycles.
//   - The condensed graph is derived by relabeling every vertex of g to its
//     component id through adjmap.GMap, so collapsing and edge merging follow
//     from the ordinary constructor folding rather than bespoke merge logic.
//
// Why:
//
//   - Dependency analysis: components are exactly the circular groups.
//   - Scheduling: the condensed graph orders components for a topological walk.
//   - Reachability: two vertices are mutually reachable iff they share a
//     component.
//
// Algorithm (Kosaraju):
//
//  1. Forward pass records vertices in post-order (finish order).
//  2. Reverse-edge pass visits vertices in reverse finish order; every fresh
//     root claims exactly one component.
//  3. One row pass assigns each vertex and each intra-component edge to its
//     component's induced subgraph.
//  4. adjmap.GMap relabels g vertex→component id into the condensed graph.
//
// Component ids follow discovery order of pass 2, which is a topological
// order of the condensation: every cross-component edge goes from a lower id
// to a higher id.
//
// Self-loops: an edge between two vertices of one component becomes a
// self-loop on that component's condensed vertex. Textbook condensations
// erase these; here they are kept deliberately, surfacing internal cycle
// structure (a condensed vertex has a self-loop iff its component contains
// an edge).
//
// Complexity:
//
//   - Condense: O(n + m) for both passes and the induced subgraphs, plus
//     O(n log n + m log m) inherited from building the dense substrate.
//
// Determinism: traversal roots and successor rows are always processed in
// ascending order, so equal inputs produce identical condensations —
// component ids, component values and condensed graph alike.
package scc
