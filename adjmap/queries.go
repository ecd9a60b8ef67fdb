package adjmap

import "slices"

// IsEmpty reports whether g has no vertices.
func (g Graph[V]) IsEmpty() bool {
	return len(g.adj) == 0
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1)
func (g Graph[V]) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of edges.
//
// Complexity: O(n)
func (g Graph[V]) EdgeCount() int {
	count := 0
	for _, succ := range g.adj {
		count += len(succ)
	}

	return count
}

// HasVertex reports whether v is a vertex of g.
func (g Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the edge from→to is present in g.
func (g Graph[V]) HasEdge(from, to V) bool {
	succ, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = succ[to]

	return ok
}

// VertexList returns the vertices of g in ascending order.
//
// Complexity: O(n log n)
func (g Graph[V]) VertexList() []V {
	vs := make([]V, 0, len(g.adj))
	for v := range g.adj {
		vs = append(vs, v)
	}
	slices.Sort(vs)

	return vs
}

// EdgeList returns the edges of g in ascending (From, To) order.
//
// Complexity: O(n log n + m log m)
func (g Graph[V]) EdgeList() []Edge[V] {
	es := make([]Edge[V], 0, g.EdgeCount())
	for _, v := range g.VertexList() {
		for _, w := range g.Successors(v) {
			es = append(es, Edge[V]{From: v, To: w})
		}
	}

	return es
}

// Successors returns the direct successors of v in ascending order.
// A vertex absent from g has no successors.
//
// Complexity: O(deg log deg)
func (g Graph[V]) Successors(v V) []V {
	succ, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]V, 0, len(succ))
	for w := range succ {
		out = append(out, w)
	}
	slices.Sort(out)

	return out
}

// Predecessors returns the vertices with an edge into v, ascending.
//
// Complexity: O(n log n)
func (g Graph[V]) Predecessors(v V) []V {
	if _, ok := g.adj[v]; !ok {
		return nil
	}
	out := make([]V, 0)
	for u, succ := range g.adj {
		if _, ok := succ[v]; ok {
			out = append(out, u)
		}
	}
	slices.Sort(out)

	return out
}

// AdjacencyMap returns a copy of the canonical mapping with each successor
// set as an ascending slice. Mutating the copy does not affect g.
//
// Complexity: O(n log n + m log m)
func (g Graph[V]) AdjacencyMap() map[V][]V {
	out := make(map[V][]V, len(g.adj))
	for v := range g.adj {
		out[v] = g.Successors(v)
	}

	return out
}
