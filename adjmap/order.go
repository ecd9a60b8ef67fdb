package adjmap

import (
	"cmp"
	"maps"
	"slices"
)

// Equal reports whether g and h have identical canonical mappings: the same
// vertex set and the same successor set per vertex. Because every constructor
// folds into the canonical map, algebraically equal expressions are Equal no
// matter how they were built.
//
// Complexity: O(n + m)
func (g Graph[V]) Equal(h Graph[V]) bool {
	return maps.EqualFunc(g.adj, h.adj, func(a, b map[V]struct{}) bool {
		return maps.Equal(a, b)
	})
}

// Compare orders g against h by the size-lexicographic rule and returns
// -1, 0 or +1. The comparison chain, short-circuiting on the first
// inequality:
//
//  1. vertex count;
//  2. vertex sets as ascending sequences;
//  3. edge count;
//  4. the canonical mapping, successor rows compared in ascending vertex
//     order.
//
// The resulting total order refines the subgraph relation: IsSubgraphOf(g, h)
// implies Compare ≤ 0. In particular Empty precedes every graph,
// x ≤ Overlay(x, y) and Overlay(x, y) ≤ Connect(x, y).
//
// Complexity: O(n log n + m log m)
func (g Graph[V]) Compare(h Graph[V]) int {
	// 1. Vertex count.
	if c := cmp.Compare(len(g.adj), len(h.adj)); c != 0 {
		return c
	}

	// 2. Vertex sequences, lexicographically.
	gv, hv := g.VertexList(), h.VertexList()
	if c := slices.Compare(gv, hv); c != 0 {
		return c
	}

	// 3. Edge count.
	if c := cmp.Compare(g.EdgeCount(), h.EdgeCount()); c != 0 {
		return c
	}

	// 4. Successor rows; the vertex sets already agree, so row order is
	// shared and the first differing row decides.
	for _, v := range gv {
		if c := slices.Compare(g.Successors(v), h.Successors(v)); c != 0 {
			return c
		}
	}

	return 0
}

// IsSubgraphOf reports whether every vertex and every edge of g occurs in h.
//
// Complexity: O(n + m)
func (g Graph[V]) IsSubgraphOf(h Graph[V]) bool {
	var hsucc map[V]struct{}
	var ok bool
	for v, succ := range g.adj {
		if hsucc, ok = h.adj[v]; !ok {
			return false
		}
		for w := range succ {
			if _, ok = hsucc[w]; !ok {
				return false
			}
		}
	}

	return true
}
