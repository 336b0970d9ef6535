// Package path defines sentinel errors for predecessor-chain path
// reconstruction.
//
// Errors (sentinel):
//
//	– ErrInvalidVertex       if source or target is outside the vector's range.
//	– ErrNoPath              if the target is unreachable from the source.
//	– ErrCorruptPredecessors if the predecessor chain is malformed (cycle
//	  or out-of-range back-pointer) — indicates a bug in the producer.
//	– ErrNotAdjacent         if a route hop has no connecting edge (Cost).
package path

import "errors"

// Sentinel errors for path reconstruction and route costing.
var (
	// ErrInvalidVertex indicates a source or target id outside [0, V).
	ErrInvalidVertex = errors.New("path: vertex out of range")

	// ErrNoPath indicates the target is unreachable from the source:
	// the predecessor chain does not terminate at the source. This is a
	// recoverable "no route" condition, not a bug.
	ErrNoPath = errors.New("path: target unreachable from source")

	// ErrCorruptPredecessors indicates the predecessor vector violates its
	// invariants: backtracking exceeded the vertex count (a cycle) or a
	// back-pointer left the valid id range. A correct engine never
	// produces such a vector.
	ErrCorruptPredecessors = errors.New("path: corrupt predecessor vector")

	// ErrNotAdjacent indicates a route contains consecutive vertices with
	// no connecting edge.
	ErrNotAdjacent = errors.New("path: route vertices not adjacent")
)
