// Package dijkstra defines sentinel errors for the single-source
// shortest-path engines in this package.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrInvalidSource if the source vertex is outside [0, V).
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra engines.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source vertex id is negative
	// or ≥ the graph's vertex count.
	ErrInvalidSource = errors.New("dijkstra: source vertex out of range")
)
