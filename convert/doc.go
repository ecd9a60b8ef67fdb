// Package convert adapts adjmap graphs to and from gonum's graph types,
// opening the wider algorithm ecosystem (topo, path, flow, ...) to graphs
// built algebraically.
//
// ToDirected exports an adjmap.Graph into a *simple.DirectedGraph together
// with a deterministic vertex↔id mapping: node ids are assigned 0..n-1 in
// ascending vertex order. Simple graphs reject self-loops, so loop edges are
// omitted from the export and reported through Loops; reachability between
// distinct vertices, and hence the SCC partition, is unaffected.
//
// FromDirected folds any graph.Directed back into an adjmap.Graph over node
// ids, making round trips and imports from gonum-built graphs possible.
package convert
