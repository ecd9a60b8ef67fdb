package adjmap

import "cmp"

// Derived constructors. Each is semantically a fold of the primitives in
// graph.go; the direct implementations below produce the identical canonical
// map without the intermediate values.

// Vertices returns the edgeless graph over the given vertices. Duplicates
// collapse, as Overlay(Vertex(v), Vertex(v)) would.
//
// Complexity: O(n)
func Vertices[V cmp.Ordered](vs ...V) Graph[V] {
	if len(vs) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(vs))
	for _, v := range vs {
		ensure(adj, v)
	}

	return Graph[V]{adj: adj}
}

// Edges returns the graph holding exactly the given edges and their endpoint
// vertices. Duplicate edges collapse.
//
// Complexity: O(m)
func Edges[V cmp.Ordered](es ...Edge[V]) Graph[V] {
	if len(es) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(es))
	for _, e := range es {
		ensure(adj, e.From)[e.To] = struct{}{}
		ensure(adj, e.To)
	}

	return Graph[V]{adj: adj}
}

// Overlays folds Overlay over the given graphs; Overlays() is Empty.
//
// Complexity: O(n + m) summed over the operands
func Overlays[V cmp.Ordered](gs ...Graph[V]) Graph[V] {
	adj := make(map[V]map[V]struct{})
	for _, g := range gs {
		mergeInto(adj, g.adj)
	}
	if len(adj) == 0 {
		return Graph[V]{}
	}

	return Graph[V]{adj: adj}
}

// Connects folds Connect over the given graphs; Connects() is Empty.
// Associativity of Connect makes the fold direction irrelevant.
func Connects[V cmp.Ordered](gs ...Graph[V]) Graph[V] {
	out := Graph[V]{}
	for _, g := range gs {
		out = Connect(out, g)
	}

	return out
}

// Clique returns the graph with an edge from every listed vertex to every
// vertex listed after it: Connects(Vertex(v1), ..., Vertex(vn)). A vertex
// listed twice gains a self-loop, exactly as the Connect fold dictates.
//
// Complexity: O(n²)
func Clique[V cmp.Ordered](vs ...V) Graph[V] {
	if len(vs) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(vs))
	for _, v := range vs {
		ensure(adj, v)
	}
	// Edge u→w for every position pair i < j, self-loops included when
	// vs repeats a vertex.
	var set map[V]struct{}
	for i, u := range vs {
		set = adj[u]
		for _, w := range vs[i+1:] {
			set[w] = struct{}{}
		}
	}

	return Graph[V]{adj: adj}
}

// Path returns the graph of consecutive edges vs[0]→vs[1]→...→vs[n-1].
// A single vertex yields Vertex(v); no vertices yield Empty.
//
// Complexity: O(n)
func Path[V cmp.Ordered](vs ...V) Graph[V] {
	if len(vs) == 0 {
		return Graph[V]{}
	}
	if len(vs) == 1 {
		return Vertex(vs[0])
	}

	es := make([]Edge[V], len(vs)-1)
	for i := range es {
		es[i] = Edge[V]{From: vs[i], To: vs[i+1]}
	}

	return Edges(es...)
}

// Circuit returns Path(vs...) closed with an edge from the last vertex back
// to the first. Circuit(v) is the self-loop on v; Circuit() is Empty.
//
// Complexity: O(n)
func Circuit[V cmp.Ordered](vs ...V) Graph[V] {
	if len(vs) == 0 {
		return Graph[V]{}
	}

	closed := make([]V, 0, len(vs)+1)
	closed = append(closed, vs...)
	closed = append(closed, vs[0])

	return Path(closed...)
}

// Star returns Connect(Vertex(hub), Vertices(leaves...)): an edge from hub to
// every leaf. With no leaves it is Vertex(hub); a hub listed among the leaves
// gains a self-loop.
//
// Complexity: O(n)
func Star[V cmp.Ordered](hub V, leaves ...V) Graph[V] {
	if len(leaves) == 0 {
		return Vertex(hub)
	}

	return Connect(Vertex(hub), Vertices(leaves...))
}
