package nonempty_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algraph/adjmap"
	"github.com/katalvlaran/algraph/nonempty"
)

func TestConstructors_AlwaysNonEmpty(t *testing.T) {
	graphs := map[string]nonempty.Graph[int]{
		"vertex":   nonempty.Vertex(1),
		"edge":     nonempty.Edge(1, 2),
		"overlay":  nonempty.Overlay(nonempty.Vertex(1), nonempty.Vertex(2)),
		"connect":  nonempty.Connect(nonempty.Vertex(1), nonempty.Vertex(2)),
		"vertices": nonempty.Vertices(3, 1, 2),
		"edges":    nonempty.Edges(adjmap.Edge[int]{From: 1, To: 2}, adjmap.Edge[int]{From: 2, To: 2}),
		"clique":   nonempty.Clique(1, 2, 3),
		"star":     nonempty.Star(0, 4, 5),
	}

	for name, g := range graphs {
		assert.True(t, nonempty.Consistent(g), name)
		assert.GreaterOrEqual(t, g.VertexCount(), 1, name)
	}
}

func TestEdge_MatchesConnectOfVertices(t *testing.T) {
	g := nonempty.Edge(1, 2)

	assert.Equal(t, "edge 1 2", g.String())
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	assert.True(t, g.Equal(nonempty.Connect(nonempty.Vertex(1), nonempty.Vertex(2))))
}

func TestVertices_SingleRequiredVertex(t *testing.T) {
	g := nonempty.Vertices(7)

	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, "vertex 7", g.String())
}

func TestFromGraph_RejectsEmpty(t *testing.T) {
	_, err := nonempty.FromGraph(adjmap.Empty[int]())
	require.ErrorIs(t, err, nonempty.ErrEmptyGraph)

	g, err := nonempty.FromGraph(adjmap.Circuit(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestMustGraph_PanicsOnEmpty(t *testing.T) {
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() {
		nonempty.MustGraph(adjmap.Empty[string]())
	})

	assert.NotPanics(t, func() {
		g := nonempty.MustGraph(adjmap.Vertex("root"))
		assert.True(t, g.HasVertex("root"))
	})
}

func TestZeroValue_FailsFast(t *testing.T) {
	var zero nonempty.Graph[int]
	one := nonempty.Vertex(1)

	assert.False(t, nonempty.Consistent(zero))
	assert.True(t, zero.ToGraph().IsEmpty())
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() { _ = zero.String() })
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() { _ = zero.Equal(one) })
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() { _ = one.Equal(zero) })
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() { _ = zero.Compare(one) })
	assert.PanicsWithValue(t, nonempty.ErrEmptyGraph, func() { _ = one.Compare(zero) })
}

func TestToGraph_RoundTrip(t *testing.T) {
	base := adjmap.Overlay(adjmap.Vertex(9), adjmap.Clique(1, 2, 3))

	g, err := nonempty.FromGraph(base)
	require.NoError(t, err)
	assert.True(t, base.Equal(g.ToGraph()))
}

func TestQueries_DelegateToWrappedGraph(t *testing.T) {
	g := nonempty.Overlay(nonempty.Star(1, 2, 3), nonempty.Vertex(8))
	base := g.ToGraph()

	assert.Equal(t, base.VertexCount(), g.VertexCount())
	assert.Equal(t, base.EdgeCount(), g.EdgeCount())
	assert.Equal(t, base.VertexList(), g.VertexList())
	assert.Equal(t, base.EdgeList(), g.EdgeList())
	assert.Equal(t, base.HasVertex(8), g.HasVertex(8))
	assert.Equal(t, base.HasEdge(1, 3), g.HasEdge(1, 3))
	assert.Equal(t, base.String(), g.String())
}

func TestAlgebra_CarriesOverFromCore(t *testing.T) {
	x := nonempty.Edge(1, 2)
	y := nonempty.Vertex(3)

	// Overlay and Connect agree with the core operations on unwrapped values.
	assert.True(t, nonempty.Overlay(x, y).ToGraph().Equal(adjmap.Overlay(x.ToGraph(), y.ToGraph())))
	assert.True(t, nonempty.Connect(x, y).ToGraph().Equal(adjmap.Connect(x.ToGraph(), y.ToGraph())))

	// Overlay is still commutative and idempotent; connect still distributes.
	assert.True(t, nonempty.Overlay(x, y).Equal(nonempty.Overlay(y, x)))
	assert.True(t, nonempty.Overlay(x, x).Equal(x))

	z := nonempty.Vertex(4)
	lhs := nonempty.Connect(x, nonempty.Overlay(y, z))
	rhs := nonempty.Overlay(nonempty.Connect(x, y), nonempty.Connect(x, z))
	assert.True(t, lhs.Equal(rhs))
}

func TestCompare_MatchesCoreOrder(t *testing.T) {
	x := nonempty.Vertex(1)
	y := nonempty.Edge(1, 2)

	assert.Equal(t, x.ToGraph().Compare(y.ToGraph()), x.Compare(y))
	assert.Equal(t, -1, x.Compare(y))
	assert.Equal(t, 0, x.Compare(nonempty.Vertex(1)))
}

func ExampleEdge() {
	g := nonempty.Edge("lib", "app")
	fmt.Println(g)
	// Output:
	// edge lib app
}

func ExampleMustGraph() {
	g := nonempty.MustGraph(adjmap.Circuit(1, 2, 3))
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// 3 3
}
