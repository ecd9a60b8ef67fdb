package scc_test

import (
	"fmt"

	"github.com/katalvlaran/algraph/adjmap"
	"github.com/katalvlaran/algraph/scc"
)

// ExampleCondense collapses a cycle feeding a path: the cycle becomes
// component 0 with a self-loop, the path vertices follow in topological order.
func ExampleCondense() {
	g := adjmap.Overlay(adjmap.Circuit(1, 2, 3), adjmap.Path(3, 4, 5))
	c := scc.Condense(g)

	fmt.Println("components:", c.Count())
	for i := 0; i < c.Count(); i++ {
		fmt.Printf("component %d: %v\n", i, c.Component(i))
	}
	fmt.Println("condensed:", c.Graph())
	// Output:
	// components: 3
	// component 0: edges [(1, 2), (2, 3), (3, 1)]
	// component 1: vertex 4
	// component 2: vertex 5
	// condensed: edges [(0, 0), (0, 1), (1, 2)]
}

// ExampleCondensation_ComponentOf looks up which component a vertex landed in.
func ExampleCondensation_ComponentOf() {
	g := adjmap.Overlays(
		adjmap.Circuit(1, 2),
		adjmap.Circuit(3, 4),
		adjmap.Edges(adjmap.Edge[int]{From: 2, To: 3}),
	)
	c := scc.Condense(g)

	for _, v := range []int{1, 2, 3, 4} {
		id, _ := c.ComponentOf(v)
		fmt.Printf("vertex %d in component %d\n", v, id)
	}
	// Output:
	// vertex 1 in component 0
	// vertex 2 in component 0
	// vertex 3 in component 1
	// vertex 4 in component 1
}
