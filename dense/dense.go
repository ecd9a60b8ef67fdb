package dense

import (
	"cmp"

	"github.com/katalvlaran/algraph/adjmap"
)

// Graph is the dense-index form of an adjmap.Graph: vertices are numbered
// 0..n-1 in ascending vertex order, and adjacency is stored as integer rows
// in both edge directions. The structure is read-only after construction.
type Graph[V cmp.Ordered] struct {
	verts []V       // index → vertex, ascending
	index map[V]int // vertex → index
	fwd   [][]int   // fwd[i] lists successor indices of verts[i], ascending
	rev   [][]int   // rev[i] lists predecessor indices of verts[i], ascending
}

// FromAdjacencyMap builds the dense form of g.
//
// Complexity: O(n + m) beyond g's ordered views
func FromAdjacencyMap[V cmp.Ordered](g adjmap.Graph[V]) *Graph[V] {
	// 1. Assign indices in ascending vertex order.
	verts := g.VertexList()
	index := make(map[V]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	// 2. Forward rows from the sorted successor views; the index assignment
	// is monotone, so each row is already ascending.
	fwd := make([][]int, len(verts))
	rev := make([][]int, len(verts))
	var row []int
	for i, v := range verts {
		succ := g.Successors(v)
		row = make([]int, len(succ))
		for k, w := range succ {
			row[k] = index[w]
		}
		fwd[i] = row

		// 3. Reverse rows pick up sources in ascending i, so they too end
		// up sorted without an extra pass.
		for _, j := range row {
			rev[j] = append(rev[j], i)
		}
	}

	return &Graph[V]{verts: verts, index: index, fwd: fwd, rev: rev}
}

// Order returns the number of vertices.
func (d *Graph[V]) Order() int {
	return len(d.verts)
}

// Size returns the number of edges.
func (d *Graph[V]) Size() int {
	count := 0
	for _, row := range d.fwd {
		count += len(row)
	}

	return count
}

// VertexAt returns the vertex with dense index i. It panics if i is out of
// range, as a slice index would.
func (d *Graph[V]) VertexAt(i int) V {
	return d.verts[i]
}

// IndexOf returns the dense index of v, or false if v is not a vertex.
func (d *Graph[V]) IndexOf(v V) (int, bool) {
	i, ok := d.index[v]

	return i, ok
}

// Succs returns the successor indices of vertex index i, ascending. The
// returned slice is a view into the graph; callers must not modify it.
func (d *Graph[V]) Succs(i int) []int {
	return d.fwd[i]
}

// Preds returns the predecessor indices of vertex index i, ascending. The
// returned slice is a view into the graph; callers must not modify it.
func (d *Graph[V]) Preds(i int) []int {
	return d.rev[i]
}
