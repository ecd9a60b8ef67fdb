package convert

import (
	"cmp"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/algraph/adjmap"
)

// Directed bundles an exported gonum graph with its vertex↔id mapping and
// the self-loops the export had to leave out.
type Directed[V cmp.Ordered] struct {
	graph *simple.DirectedGraph
	ids   map[V]int64 // vertex → node id
	verts []V         // node id → vertex, ascending
	loops []V         // vertices carrying a self-loop in the source, ascending
}

// ToDirected exports g as a simple directed gonum graph. Node ids are
// assigned 0..n-1 in ascending vertex order, so equal graphs export
// identically. Self-loops are not representable in a simple graph; they are
// skipped and reported by Loops.
//
// Complexity: O(n log n + m log m)
func ToDirected[V cmp.Ordered](g adjmap.Graph[V]) *Directed[V] {
	dg := simple.NewDirectedGraph()

	// 1. Nodes in ascending vertex order.
	verts := g.VertexList()
	ids := make(map[V]int64, len(verts))
	var id int64
	for i, v := range verts {
		id = int64(i)
		ids[v] = id
		dg.AddNode(simple.Node(id))
	}

	// 2. Edges; self-loops are collected instead of set.
	var loops []V
	for _, e := range g.EdgeList() {
		if e.From == e.To {
			loops = append(loops, e.From)
			continue
		}
		dg.SetEdge(dg.NewEdge(dg.Node(ids[e.From]), dg.Node(ids[e.To])))
	}

	return &Directed[V]{graph: dg, ids: ids, verts: verts, loops: loops}
}

// Graph returns the underlying gonum graph.
func (d *Directed[V]) Graph() *simple.DirectedGraph {
	return d.graph
}

// NodeID returns the gonum node id of vertex v, or false if v was not a
// vertex of the exported graph.
func (d *Directed[V]) NodeID(v V) (int64, bool) {
	id, ok := d.ids[v]

	return id, ok
}

// VertexOf returns the vertex with gonum node id, or false if the id was not
// assigned by the export.
func (d *Directed[V]) VertexOf(id int64) (V, bool) {
	if id < 0 || id >= int64(len(d.verts)) {
		var zero V

		return zero, false
	}

	return d.verts[id], true
}

// Loops returns, in ascending order, the vertices whose self-loops the
// export omitted. An empty result means the export is edge-exact.
func (d *Directed[V]) Loops() []V {
	return d.loops
}

// FromDirected folds any directed gonum graph into an adjmap.Graph over its
// node ids. Iteration order does not matter: FromAdjacencySets unions rows
// into the one canonical form.
//
// Complexity: O(n + m)
func FromDirected(dg graph.Directed) adjmap.Graph[int64] {
	var sets []adjmap.AdjacencySet[int64]
	nodes := dg.Nodes()
	var row adjmap.AdjacencySet[int64]
	var to graph.Nodes
	for nodes.Next() {
		row = adjmap.AdjacencySet[int64]{Vertex: nodes.Node().ID()}
		to = dg.From(row.Vertex)
		for to.Next() {
			row.Successors = append(row.Successors, to.Node().ID())
		}
		sets = append(sets, row)
	}

	return adjmap.FromAdjacencySets(sets...)
}
