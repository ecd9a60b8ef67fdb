package adjmap

import "cmp"

// Graph is a directed graph represented by its canonical adjacency map:
// each vertex maps to the set of its direct successors. Graphs are immutable
// values; constructors always return fresh structure and never modify their
// operands, so values may be shared and compared freely.
//
// The zero value is the empty graph and is ready to use.
//
// Closure invariant: every vertex contained in a successor set is also a key
// of the map. Every constructor in this package preserves it.
type Graph[V cmp.Ordered] struct {
	// adj[u][v] present means edge u→v. A nil map means no vertices;
	// successor sets are always non-nil for present keys.
	adj map[V]map[V]struct{}
}

// Edge is a directed edge as a plain value pair. Self-loops (From == To) are
// permitted.
type Edge[V cmp.Ordered] struct {
	// From is the source vertex.
	From V

	// To is the target vertex.
	To V
}

// AdjacencySet pairs a vertex with a set of its successors, the row shape
// consumed by FromAdjacencySets. Successors may repeat and need no order.
type AdjacencySet[V cmp.Ordered] struct {
	// Vertex is the row's source vertex.
	Vertex V

	// Successors lists direct successors of Vertex.
	Successors []V
}

// Empty returns the graph with no vertices. It is the identity of both
// Overlay and Connect, and equals the zero value of Graph.
//
// Complexity: O(1)
func Empty[V cmp.Ordered]() Graph[V] {
	return Graph[V]{}
}

// Vertex returns the graph containing the single vertex v and no edges.
//
// Complexity: O(1)
func Vertex[V cmp.Ordered](v V) Graph[V] {
	return Graph[V]{adj: map[V]map[V]struct{}{v: {}}}
}

// Overlay returns the union of x and y: the result holds every vertex of
// either operand, and for each vertex the union of its successor sets.
// No vertex or edge is ever removed. Overlay is commutative, associative and
// idempotent, with identity Empty.
//
// Complexity: O(n + m)
func Overlay[V cmp.Ordered](x, y Graph[V]) Graph[V] {
	// Identity short-cuts; immutability makes sharing the operand safe.
	if len(x.adj) == 0 {
		return y
	}
	if len(y.adj) == 0 {
		return x
	}

	adj := make(map[V]map[V]struct{}, len(x.adj)+len(y.adj))
	mergeInto(adj, x.adj)
	mergeInto(adj, y.adj)

	return Graph[V]{adj: adj}
}

// Connect returns Overlay(x, y) plus an edge u→v for every vertex u of x and
// every vertex v of y. Sharing a vertex between the operands therefore yields
// a self-loop on it. Connect is associative (not commutative), has identity
// Empty, and distributes over Overlay.
//
// Complexity: O(n + m), counting the materialized cross edges in m
func Connect[V cmp.Ordered](x, y Graph[V]) Graph[V] {
	// With either side empty there are no cross edges: Connect degenerates
	// to Overlay, and Overlay to the other operand.
	if len(x.adj) == 0 {
		return y
	}
	if len(y.adj) == 0 {
		return x
	}

	// 1. Union of both operands.
	adj := make(map[V]map[V]struct{}, len(x.adj)+len(y.adj))
	mergeInto(adj, x.adj)
	mergeInto(adj, y.adj)

	// 2. Full cross-edge set from x's vertices to y's vertices.
	var set map[V]struct{}
	for u := range x.adj {
		set = adj[u]
		for v := range y.adj {
			set[v] = struct{}{}
		}
	}

	return Graph[V]{adj: adj}
}

// FromAdjacencySets builds a graph from (vertex, successor set) rows.
// Every vertex mentioned anywhere — as a row's vertex or inside any successor
// set — becomes a key of the result, closing the invariant even for
// successors that have no row of their own. Rows repeating a vertex have
// their successor sets unioned.
//
// Complexity: O(n + m) over all rows
func FromAdjacencySets[V cmp.Ordered](sets ...AdjacencySet[V]) Graph[V] {
	if len(sets) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(sets))
	var row map[V]struct{}
	for _, s := range sets {
		row = ensure(adj, s.Vertex)
		for _, w := range s.Successors {
			row[w] = struct{}{}
			ensure(adj, w)
		}
	}

	return Graph[V]{adj: adj}
}

// Consistent reports whether every vertex referenced inside a successor set
// is also a key of g. All constructors preserve this closure invariant, so
// Consistent exists for validation and test assertions, never for runtime
// control flow.
//
// Complexity: O(n + m)
func Consistent[V cmp.Ordered](g Graph[V]) bool {
	for _, succ := range g.adj {
		for w := range succ {
			if _, ok := g.adj[w]; !ok {
				return false
			}
		}
	}

	return true
}

// ensure returns the successor set of v in adj, inserting an empty one if v
// is not yet a key.
func ensure[V cmp.Ordered](adj map[V]map[V]struct{}, v V) map[V]struct{} {
	set, ok := adj[v]
	if !ok {
		set = make(map[V]struct{})
		adj[v] = set
	}

	return set
}

// mergeInto unions src into dst, key by key and set by set.
func mergeInto[V cmp.Ordered](dst, src map[V]map[V]struct{}) {
	var set map[V]struct{}
	for v, succ := range src {
		set = ensure(dst, v)
		for w := range succ {
			set[w] = struct{}{}
		}
	}
}
