// Package graph defines the immutable dense-index graph model shared by
// every shortest-path engine in pathbench.
//
// This file declares Edge, Arc, sentinel errors, and the NoPredecessor
// marker used by predecessor vectors throughout the module.
//
// Errors:
//
//	ErrInvalidEdge     - an edge references a vertex outside [0, V).
//	ErrBadVertexCount  - a negative vertex count was supplied.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrInvalidEdge indicates an edge endpoint is negative or ≥ the vertex count.
	// Construction fails as a whole; no partial graph is ever produced.
	ErrInvalidEdge = errors.New("graph: edge endpoint out of range")

	// ErrBadVertexCount indicates a negative vertex count was supplied.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")
)

// NoPredecessor is the "none" marker stored in predecessor vectors for
// vertices that have no predecessor (the source, and unreachable vertices).
const NoPredecessor = -1

// Edge is a directed, weighted connection between two dense vertex ids.
//
// Weight is a signed real number: Bellman-Ford accepts negative weights,
// while Dijkstra requires Weight ≥ 0 as a precondition.
// Meta carries optional pass-through annotations (street name, road class,
// posted speed, …) supplied by the data-preparation layer. The algorithm
// core never reads, interprets, or validates Meta — it exists solely so a
// presentation layer can annotate reconstructed routes.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the target vertex id.
	To int

	// Weight is the cost of traversing the edge.
	Weight float64

	// Meta holds optional pass-through metadata keyed by column name.
	// Nil for edges without annotations.
	Meta map[string]string
}

// Arc is a single adjacency entry: the tail of an outgoing edge.
// The owning vertex is implied by its position in the adjacency list.
type Arc struct {
	// To is the neighbor vertex id.
	To int

	// Weight is the cost of the edge leading to To.
	Weight float64
}
