package scc

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algraph/adjmap"
	"github.com/katalvlaran/algraph/dense"
	"github.com/katalvlaran/algraph/nonempty"
)

// Condensation is the result of decomposing a graph into strongly connected
// components. Component ids are dense integers 0..Count()-1 in a topological
// order of the condensed graph: a cross-component edge always leads from a
// lower id to a higher id.
type Condensation[V cmp.Ordered] struct {
	components []nonempty.Graph[V]
	membership map[V]int
	condensed  adjmap.Graph[int]
}

// Condense computes the strongly connected components of g and its
// condensation. The result is deterministic: equal graphs condense
// identically.
//
// Complexity: O(n log n + m log m), dominated by building the dense substrate
func Condense[V cmp.Ordered](g adjmap.Graph[V]) *Condensation[V] {
	d := dense.FromAdjacencyMap(g)
	n := d.Order()

	// 1. Order pass: forward DFS from every unvisited vertex, roots in
	// ascending vertex order, recording post-order.
	w := &walker[V]{
		d:       d,
		visited: make([]bool, n),
		finish:  make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		if !w.visited[i] {
			w.finishOrder(i)
		}
	}

	// 2. Assignment pass: walk reverse edges in reverse finish order; each
	// fresh root claims one component.
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	count := 0
	var r int
	for k := n - 1; k >= 0; k-- {
		if r = w.finish[k]; comp[r] < 0 {
			w.collect(r, count, comp)
			count++
		}
	}

	// 3. Induced subgraphs in one row pass: every vertex contributes its
	// row, every intra-component edge lands in exactly one component.
	rows := make([][]adjmap.AdjacencySet[V], count)
	var c int
	var row adjmap.AdjacencySet[V]
	for i := 0; i < n; i++ {
		c = comp[i]
		row = adjmap.AdjacencySet[V]{Vertex: d.VertexAt(i)}
		for _, j := range d.Succs(i) {
			if comp[j] == c {
				row.Successors = append(row.Successors, d.VertexAt(j))
			}
		}
		rows[c] = append(rows[c], row)
	}
	components := make([]nonempty.Graph[V], count)
	for c = 0; c < count; c++ {
		components[c] = nonempty.MustGraph(adjmap.FromAdjacencySets(rows[c]...))
	}

	// 4. Condense by relabeling through the membership function; GMap's
	// constructor folding collapses each component and turns its internal
	// edges into a self-loop on the collapsed vertex.
	membership := make(map[V]int, n)
	for i := 0; i < n; i++ {
		membership[d.VertexAt(i)] = comp[i]
	}
	condensed := adjmap.GMap(g, func(v V) int { return membership[v] })

	return &Condensation[V]{
		components: components,
		membership: membership,
		condensed:  condensed,
	}
}

// Count returns the number of strongly connected components.
func (c *Condensation[V]) Count() int {
	return len(c.components)
}

// Component returns the induced subgraph of component i. It panics if i is
// out of range, as a slice index would.
func (c *Condensation[V]) Component(i int) nonempty.Graph[V] {
	return c.components[i]
}

// Components returns the induced subgraphs of all components in id order,
// topologically sorted (sources of the condensation first).
func (c *Condensation[V]) Components() []nonempty.Graph[V] {
	return slices.Clone(c.components)
}

// ComponentOf returns the component id of vertex v, or false if v was not a
// vertex of the condensed graph.
func (c *Condensation[V]) ComponentOf(v V) (int, bool) {
	i, ok := c.membership[v]

	return i, ok
}

// Graph returns the condensed graph over component ids: one vertex per
// component, cross edges from lower ids to higher ids, and a self-loop on
// every component that contains an edge. Condensing an empty graph yields
// the empty graph.
func (c *Condensation[V]) Graph() adjmap.Graph[int] {
	return c.condensed
}

// walker carries the shared state of both Kosaraju passes over one dense
// substrate.
type walker[V cmp.Ordered] struct {
	d       *dense.Graph[V]
	visited []bool
	finish  []int // vertex indices in post-order
}

// finishOrder runs the first-pass DFS from vertex index i over forward rows,
// appending each vertex as it finishes.
func (w *walker[V]) finishOrder(i int) {
	w.visited[i] = true
	for _, j := range w.d.Succs(i) {
		if !w.visited[j] {
			w.finishOrder(j)
		}
	}
	w.finish = append(w.finish, i)
}

// collect claims for component c every vertex reachable from i over reverse
// rows and not yet claimed by an earlier component.
func (w *walker[V]) collect(i, c int, comp []int) {
	comp[i] = c
	for _, j := range w.d.Preds(i) {
		if comp[j] < 0 {
			w.collect(j, c, comp)
		}
	}
}
