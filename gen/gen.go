package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/algraph/adjmap"
)

var (
	// ErrTooFewVertices indicates a negative vertex count. Zero is valid
	// and yields the empty graph.
	ErrTooFewVertices = errors.New("gen: vertex count too small")

	// ErrInvalidProbability indicates an edge probability outside the
	// closed interval [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

// Sparse samples a graph over vertices 0..n-1, including each ordered pair
// edge independently with probability p. All n vertices are present even
// when isolated. Trials run source ascending then target ascending, so the
// result is fully determined by (n, p, seed).
//
// Complexity: O(n²) trials
func Sparse(n int, p float64, opts ...Option) (adjmap.Graph[int], error) {
	rng, err := setup("Sparse", n, p, opts)
	if err != nil {
		return adjmap.Empty[int](), err
	}

	o := resolve(opts)
	var es []adjmap.Edge[int]
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v && !o.SelfLoops {
				continue
			}
			if rng.Float64() < p {
				es = append(es, adjmap.Edge[int]{From: u, To: v})
			}
		}
	}

	return adjmap.Overlay(allVertices(n), adjmap.Edges(es...)), nil
}

// Acyclic samples a DAG over vertices 0..n-1: only pairs with source <
// target are tried, so every edge points upward and no cycle can form.
// Deterministic for a fixed (n, p, seed) like Sparse.
//
// Complexity: O(n²) trials
func Acyclic(n int, p float64, opts ...Option) (adjmap.Graph[int], error) {
	rng, err := setup("Acyclic", n, p, opts)
	if err != nil {
		return adjmap.Empty[int](), err
	}

	var es []adjmap.Edge[int]
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				es = append(es, adjmap.Edge[int]{From: u, To: v})
			}
		}
	}

	return adjmap.Overlay(allVertices(n), adjmap.Edges(es...)), nil
}

// setup validates the shared (n, p) contract and returns the seeded RNG.
func setup(method string, n int, p float64, opts []Option) (*rand.Rand, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return rand.New(rand.NewSource(resolve(opts).Seed)), nil
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// allVertices returns the edgeless graph over 0..n-1.
func allVertices(n int) adjmap.Graph[int] {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}

	return adjmap.Vertices(vs...)
}
