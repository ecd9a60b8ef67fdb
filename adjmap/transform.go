package adjmap

import "cmp"

// GMap returns the graph obtained by relabeling every vertex of g through f,
// folding the images with the same union rules the constructors use. GMap is
// therefore a graph homomorphism: vertices with equal images collapse into
// one, their successor sets merge, and an edge between two vertices sharing
// an image becomes a self-loop. The closure invariant is preserved because
// every successor's image is keyed alongside its source's.
//
// f must be deterministic; it is applied to each vertex at least once.
//
// Complexity: O(n + m)
func GMap[V, W cmp.Ordered](g Graph[V], f func(V) W) Graph[W] {
	if len(g.adj) == 0 {
		return Graph[W]{}
	}

	// 1. Key every image so vertices without successors survive relabeling.
	adj := make(map[W]map[W]struct{}, len(g.adj))
	for v := range g.adj {
		ensure(adj, f(v))
	}

	// 2. Union the relabeled successor sets image by image.
	var set map[W]struct{}
	for v, succ := range g.adj {
		set = adj[f(v)]
		for w := range succ {
			set[f(w)] = struct{}{}
		}
	}

	return Graph[W]{adj: adj}
}

// Induce returns the subgraph of g over the vertices satisfying keep: those
// vertices and every edge with both endpoints among them.
//
// Complexity: O(n + m)
func Induce[V cmp.Ordered](g Graph[V], keep func(V) bool) Graph[V] {
	if len(g.adj) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(g.adj))
	var set map[V]struct{}
	for v, succ := range g.adj {
		if !keep(v) {
			continue
		}
		set = make(map[V]struct{}, len(succ))
		for w := range succ {
			// Closure of g guarantees w is a key, so keep(w) alone
			// decides membership.
			if keep(w) {
				set[w] = struct{}{}
			}
		}
		adj[v] = set
	}
	if len(adj) == 0 {
		return Graph[V]{}
	}

	return Graph[V]{adj: adj}
}

// Transpose returns g with every edge reversed. Vertices are unchanged;
// transposing twice restores the original graph.
//
// Complexity: O(n + m)
func Transpose[V cmp.Ordered](g Graph[V]) Graph[V] {
	if len(g.adj) == 0 {
		return Graph[V]{}
	}

	adj := make(map[V]map[V]struct{}, len(g.adj))
	for v := range g.adj {
		ensure(adj, v)
	}
	for v, succ := range g.adj {
		for w := range succ {
			adj[w][v] = struct{}{}
		}
	}

	return Graph[V]{adj: adj}
}

// RemoveVertex returns g without v and without every edge touching v.
// Removing an absent vertex returns g unchanged.
//
// Complexity: O(n + m)
func RemoveVertex[V cmp.Ordered](g Graph[V], v V) Graph[V] {
	if !g.HasVertex(v) {
		return g
	}

	return Induce(g, func(u V) bool { return u != v })
}

// RemoveEdge returns g without the edge from→to. Vertices are kept; removing
// an absent edge returns g unchanged.
//
// Complexity: O(n + m)
func RemoveEdge[V cmp.Ordered](g Graph[V], from, to V) Graph[V] {
	if !g.HasEdge(from, to) {
		return g
	}

	adj := make(map[V]map[V]struct{}, len(g.adj))
	mergeInto(adj, g.adj)
	delete(adj[from], to)

	return Graph[V]{adj: adj}
}

// ReplaceVertex returns g with every occurrence of old relabeled to new.
// If new is already a vertex, old collapses into it, merging their edges.
//
// Complexity: O(n + m)
func ReplaceVertex[V cmp.Ordered](g Graph[V], old, new V) Graph[V] {
	return GMap(g, func(v V) V {
		if v == old {
			return new
		}

		return v
	})
}
