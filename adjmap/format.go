package adjmap

import (
	"cmp"
	"fmt"
	"strings"
)

// String renders g as its canonical textual form: the simplest constructor
// expression denoting the graph. The case is selected from the canonical
// mapping alone, in priority order:
//
//	empty                                 no vertices
//	vertex 1                              one vertex, no edges
//	vertices [1, 2]                       several vertices, no edges
//	edge 1 2                              one edge covering every vertex
//	edges [(1, 2), (2, 3)]                several edges covering every vertex
//	overlay (vertex 3) (edge 1 2)         edges plus isolated vertices
//
// Vertices print with %v in ascending order; edges sort ascending by
// (source, target). Equal graphs always render identically.
//
// Complexity: O(n log n + m log m)
func (g Graph[V]) String() string {
	// 1. No vertices at all.
	vs := g.VertexList()
	if len(vs) == 0 {
		return "empty"
	}

	// 2. Vertices only.
	es := g.EdgeList()
	if len(es) == 0 {
		return vertexLiteral(vs)
	}

	// 3. Edges covering the whole vertex set.
	iso := isolated(g, vs)
	if len(iso) == 0 {
		return edgeLiteral(es)
	}

	// 4. Isolated vertices overlaid with the edge part.
	return "overlay (" + vertexLiteral(iso) + ") (" + edgeLiteral(es) + ")"
}

// vertexLiteral renders an ascending vertex slice as "vertex v" or
// "vertices [v1, v2, ...]".
func vertexLiteral[V cmp.Ordered](vs []V) string {
	if len(vs) == 1 {
		return fmt.Sprintf("vertex %v", vs[0])
	}

	var sb strings.Builder
	sb.WriteString("vertices [")
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// edgeLiteral renders an ascending edge slice as "edge u v" or
// "edges [(u1, v1), (u2, v2), ...]".
func edgeLiteral[V cmp.Ordered](es []Edge[V]) string {
	if len(es) == 1 {
		return fmt.Sprintf("edge %v %v", es[0].From, es[0].To)
	}

	var sb strings.Builder
	sb.WriteString("edges [")
	for i, e := range es {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%v, %v)", e.From, e.To)
	}
	sb.WriteByte(']')

	return sb.String()
}

// isolated returns, in ascending order, the vertices of vs touched by no
// edge of g. vs must be g's ascending vertex list.
func isolated[V cmp.Ordered](g Graph[V], vs []V) []V {
	touched := make(map[V]struct{}, len(g.adj))
	for v, succ := range g.adj {
		for w := range succ {
			touched[v] = struct{}{}
			touched[w] = struct{}{}
		}
	}

	var iso []V
	for _, v := range vs {
		if _, ok := touched[v]; !ok {
			iso = append(iso, v)
		}
	}

	return iso
}
