// Package bellmanford defines sentinel errors for the Bellman-Ford
// shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrInvalidSource if the source vertex is outside [0, V).
package bellmanford

import "errors"

// Sentinel errors returned by the Bellman-Ford engine.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrInvalidSource indicates that the source vertex id is negative
	// or ≥ the graph's vertex count.
	ErrInvalidSource = errors.New("bellmanford: source vertex out of range")
)
