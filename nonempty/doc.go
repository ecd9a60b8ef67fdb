// Package nonempty provides graphs that cannot be empty by construction.
//
// Graph[V] wraps an adjmap.Graph[V] and reuses its operators; the
// constructors simply never accept zero vertices (enforced by their
// signatures), and Overlay/Connect preserve non-emptiness whenever an operand
// is non-empty. Semantics, equality, ordering and the canonical textual form
// are exactly those of package adjmap.
//
// The zero value of Graph is not usable: it wraps the empty graph, which
// this package exists to rule out. Build values with the constructors or
// convert a checked adjmap.Graph with FromGraph/MustGraph. String, Equal and
// Compare panic with ErrEmptyGraph when invoked on a zero value, since such
// a value can only mean the non-emptiness invariant was already broken
// upstream.
package nonempty
