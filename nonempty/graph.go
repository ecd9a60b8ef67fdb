package nonempty

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/algraph/adjmap"
)

// ErrEmptyGraph reports an empty graph where a non-empty one is required:
// returned by FromGraph, and the panic value of MustGraph and of the
// fail-fast checks on zero-value misuse.
var ErrEmptyGraph = errors.New("nonempty: graph is empty")

// Graph is a directed graph with at least one vertex. The zero value is not
// usable; see the package documentation.
type Graph[V cmp.Ordered] struct {
	g adjmap.Graph[V]
}

// Vertex returns the graph containing the single vertex v.
func Vertex[V cmp.Ordered](v V) Graph[V] {
	return Graph[V]{g: adjmap.Vertex(v)}
}

// Edge returns the graph with the single edge from→to and its endpoints.
func Edge[V cmp.Ordered](from, to V) Graph[V] {
	return Graph[V]{g: adjmap.Connect(adjmap.Vertex(from), adjmap.Vertex(to))}
}

// Overlay returns the union of x and y, as adjmap.Overlay. The result is
// non-empty whenever either operand is.
func Overlay[V cmp.Ordered](x, y Graph[V]) Graph[V] {
	return Graph[V]{g: adjmap.Overlay(x.g, y.g)}
}

// Connect returns the adjmap.Connect of x and y: their union plus an edge
// from every vertex of x to every vertex of y.
func Connect[V cmp.Ordered](x, y Graph[V]) Graph[V] {
	return Graph[V]{g: adjmap.Connect(x.g, y.g)}
}

// Vertices returns the edgeless graph over v and more; at least one vertex
// is required by the signature.
func Vertices[V cmp.Ordered](v V, more ...V) Graph[V] {
	return Graph[V]{g: adjmap.Overlay(adjmap.Vertex(v), adjmap.Vertices(more...))}
}

// Edges returns the graph holding edge e, the edges in more, and all their
// endpoints.
func Edges[V cmp.Ordered](e adjmap.Edge[V], more ...adjmap.Edge[V]) Graph[V] {
	return Graph[V]{g: adjmap.Edges(append([]adjmap.Edge[V]{e}, more...)...)}
}

// Clique returns the graph with an edge from every listed vertex to every
// vertex listed after it.
func Clique[V cmp.Ordered](v V, more ...V) Graph[V] {
	return Graph[V]{g: adjmap.Clique(append([]V{v}, more...)...)}
}

// Star returns the graph with an edge from hub to every leaf.
func Star[V cmp.Ordered](hub V, leaves ...V) Graph[V] {
	return Graph[V]{g: adjmap.Star(hub, leaves...)}
}

// FromGraph wraps g as a non-empty graph, or returns ErrEmptyGraph if g has
// no vertices.
func FromGraph[V cmp.Ordered](g adjmap.Graph[V]) (Graph[V], error) {
	if g.IsEmpty() {
		return Graph[V]{}, ErrEmptyGraph
	}

	return Graph[V]{g: g}, nil
}

// MustGraph is FromGraph panicking on an empty argument. Use it for graphs
// known non-empty by construction, in the manner of regexp.MustCompile.
func MustGraph[V cmp.Ordered](g adjmap.Graph[V]) Graph[V] {
	ne, err := FromGraph(g)
	if err != nil {
		panic(err)
	}

	return ne
}

// ToGraph returns the wrapped adjmap.Graph, opening the full core API. The
// zero value converts to the empty graph.
func (g Graph[V]) ToGraph() adjmap.Graph[V] {
	return g.g
}

// Consistent reports whether g satisfies the closure invariant of package
// adjmap and is non-empty. For validation and test assertions only.
func Consistent[V cmp.Ordered](g Graph[V]) bool {
	return !g.g.IsEmpty() && adjmap.Consistent(g.g)
}

// VertexCount returns the number of vertices, at least 1 for any
// constructed value.
func (g Graph[V]) VertexCount() int { return g.g.VertexCount() }

// EdgeCount returns the number of edges.
func (g Graph[V]) EdgeCount() int { return g.g.EdgeCount() }

// HasVertex reports whether v is a vertex of g.
func (g Graph[V]) HasVertex(v V) bool { return g.g.HasVertex(v) }

// HasEdge reports whether the edge from→to is present in g.
func (g Graph[V]) HasEdge(from, to V) bool { return g.g.HasEdge(from, to) }

// VertexList returns the vertices of g in ascending order.
func (g Graph[V]) VertexList() []V { return g.g.VertexList() }

// EdgeList returns the edges of g in ascending (From, To) order.
func (g Graph[V]) EdgeList() []adjmap.Edge[V] { return g.g.EdgeList() }

// Equal reports whether g and h have identical canonical mappings. It panics
// with ErrEmptyGraph on a zero-value receiver or argument.
func (g Graph[V]) Equal(h Graph[V]) bool {
	g.mustNonEmpty()
	h.mustNonEmpty()

	return g.g.Equal(h.g)
}

// Compare orders g against h by the size-lexicographic rule of
// adjmap.Graph.Compare. It panics with ErrEmptyGraph on a zero-value
// receiver or argument.
func (g Graph[V]) Compare(h Graph[V]) int {
	g.mustNonEmpty()
	h.mustNonEmpty()

	return g.g.Compare(h.g)
}

// String renders the canonical textual form of adjmap.Graph.String. It
// panics with ErrEmptyGraph on a zero-value receiver; a constructed
// non-empty graph never selects the "empty" case.
func (g Graph[V]) String() string {
	g.mustNonEmpty()

	return g.g.String()
}

// mustNonEmpty is the fail-fast guard: an empty representation here can only
// come from a zero value that bypassed the constructors.
func (g Graph[V]) mustNonEmpty() {
	if g.g.IsEmpty() {
		panic(ErrEmptyGraph)
	}
}
