// Package algraph is an in-memory playground for building graphs from
// algebraic expressions — compose with overlay and connect instead of
// mutating vertex and edge sets, and get structural equality for free.
//
// 🚀 What is algraph?
//
//	A small, deterministic, value-semantics library that brings together:
//		• Algebraic construction: empty, vertex, overlay, connect
//		• Canonical form: equal graph expressions compare equal — always
//		• Total order: a size-lexicographic order refining the subgraph relation
//		• Canonical text: every graph renders as its simplest constructor call
//		• Non-empty graphs: a variant whose constructors cannot yield empty
//		• Condensation: Kosaraju strongly connected components, components as graphs
//		• Interop: export to gonum for the wider algorithm ecosystem
//
// ✨ Why choose algraph?
//
//   - Value semantics – graphs are immutable values; share them freely
//   - Deterministic – every operation yields identical results across runs
//   - Lawful – overlay and connect obey a published algebra, tested as such
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under six subpackages:
//
//	adjmap/   — the canonical adjacency-map graph: constructors, order, rendering
//	nonempty/ — graphs that cannot be empty by construction
//	dense/    — index-compressed adjacency for linear-time traversal
//	scc/      — Kosaraju condensation over the dense form
//	convert/  — adapters into gonum's graph types
//	gen/      — seeded random graphs for tests and benchmarks
//
// Quick algebraic example:
//
//	    1───▶2
//	         │
//	         ▼
//	    4◀───3
//
//	is Connect(Vertex(1), Vertex(2)) overlaid with Path(2, 3, 4) — and it
//	prints as "edges [(1, 2), (2, 3), (3, 4)]" no matter how you built it.
//
// Dive into the adjmap package first; the rest of the library is defined in
// terms of its canonical form.
//
//	go get github.com/katalvlaran/algraph
package algraph
