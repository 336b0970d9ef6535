// Package graph implements the dual-representation graph model:
// an adjacency list for vertex-centric engines (Dijkstra) and a flat
// edge list for edge-centric engines (Bellman-Ford).
//
// Both representations preserve edge insertion order exactly. Order is
// semantically load-bearing: it fixes Bellman-Ford's relaxation sequence
// and makes every engine in this module fully deterministic.
package graph

import "fmt"

// Graph is an immutable weighted directed graph over dense vertex ids
// 0..V-1 (no gaps). It is built once per dataset by New and read-only
// thereafter, so concurrent readers need no locking.
type Graph struct {
	numVertices int
	adjacency   [][]Arc // adjacency[u] lists outgoing arcs of u in insertion order
	edges       []Edge  // flat edge list in insertion order
}

// New constructs a Graph from an ordered edge list over vertexCount dense
// vertex ids. Both representations are built in O(V+E) time and O(V+E)
// space. The edge slice is copied, so callers may reuse or mutate their
// slice afterwards without affecting the Graph.
//
// Returns ErrBadVertexCount if vertexCount < 0, and ErrInvalidEdge if any
// edge references a vertex outside [0, vertexCount). On error no partial
// graph is produced.
//
// Self-loops and parallel edges are permitted; insertion order is kept.
func New(edges []Edge, vertexCount int) (*Graph, error) {
	// 1) Validate the vertex count before touching any edge.
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, vertexCount)
	}

	// 2) Validate every endpoint up front so construction is all-or-nothing.
	var (
		e Edge
		i int
	)
	for i, e = range edges {
		if e.From < 0 || e.From >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d source %d not in [0,%d)", ErrInvalidEdge, i, e.From, vertexCount)
		}
		if e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d target %d not in [0,%d)", ErrInvalidEdge, i, e.To, vertexCount)
		}
	}

	// 3) Count out-degrees so each adjacency row is allocated exactly once.
	degree := make([]int, vertexCount)
	for _, e = range edges {
		degree[e.From]++
	}

	// 4) Build both representations, appending in input order.
	g := &Graph{
		numVertices: vertexCount,
		adjacency:   make([][]Arc, vertexCount),
		edges:       make([]Edge, len(edges)),
	}
	copy(g.edges, edges)
	var u int
	for u = 0; u < vertexCount; u++ {
		if degree[u] > 0 {
			g.adjacency[u] = make([]Arc, 0, degree[u])
		}
	}
	for _, e = range g.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], Arc{To: e.To, Weight: e.Weight})
	}

	return g, nil
}

// VertexCount returns V, the number of vertices (dense ids 0..V-1).
func (g *Graph) VertexCount() int { return g.numVertices }

// EdgeCount returns E, the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex id of this graph.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.numVertices }

// Neighbors returns the outgoing arcs of u in edge insertion order.
// The returned slice is a read-only view into the Graph; callers must
// not modify it. Returns nil when u is out of range or has no arcs.
func (g *Graph) Neighbors(u int) []Arc {
	if !g.HasVertex(u) {
		return nil
	}

	return g.adjacency[u]
}

// Edges returns the full edge list in insertion order.
// The returned slice is a read-only view into the Graph; callers must
// not modify it.
func (g *Graph) Edges() []Edge { return g.edges }
