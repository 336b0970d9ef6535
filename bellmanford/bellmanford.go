// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on weighted directed graphs.
//
// Unlike Dijkstra, Bellman-Ford tolerates negative edge weights and
// reports — rather than miscomputes — the presence of a reachable
// negative cycle. The engine performs up to V−1 relaxation passes over
// the flat edge list in insertion order, stopping early after any pass
// that improves nothing.
//
// Complexity:
//
//	– Time:  O(V·E) worst case, O(E) best case (early termination after
//	  the first zero-update pass).
//	– Space: O(V) for the distance and predecessor vectors.
//
// Determinism: the relaxation order is exactly the edge insertion order
// preserved by graph.Graph, so results (including which of several
// equal-cost predecessors wins) are identical across runs.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/routelab/pathbench/graph"
)

// ShortestPaths computes shortest distances from source to every vertex
// of g by iterative edge relaxation.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v,
//     or math.Inf(1) if v is unreachable. dist[source] == 0.
//   - prev: prev[v] is the predecessor of v on a shortest path,
//     or graph.NoPredecessor for the source and unreachable vertices.
//   - negCycle: true if a negative-weight cycle is reachable from source.
//     This is an informational flag, not an error: the returned distances
//     are the last values computed before detection and do not reflect
//     the (undefined) true shortest distance for cycle-affected vertices.
//     Callers must check the flag before trusting dist.
//   - err: ErrNilGraph or ErrInvalidSource on invalid input.
//
// Both vectors are freshly allocated per call; g is never mutated.
func ShortestPaths(g *graph.Graph, source int) ([]float64, []int, bool, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, false, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, false, fmt.Errorf("%w: source %d, vertex count %d", ErrInvalidSource, source, g.VertexCount())
	}

	// 2) Allocate fresh per-invocation state.
	V := g.VertexCount()
	dist := make([]float64, V)
	prev := make([]int, V)
	inf := math.Inf(1)
	var v int
	for v = 0; v < V; v++ {
		dist[v] = inf
		prev[v] = graph.NoPredecessor
	}
	dist[source] = 0

	// 3) Main passes: relax every edge, in insertion order, up to V−1 times.
	//    After pass i, all shortest paths using at most i edges are final.
	edges := g.Edges()
	var (
		pass    int
		e       graph.Edge
		newDist float64
		updated bool
	)
	for pass = 0; pass < V-1; pass++ {
		updated = false
		for _, e = range edges {
			// Relaxing from an unreached vertex is meaningless (∞ + w).
			if math.IsInf(dist[e.From], 1) {
				continue
			}
			newDist = dist[e.From] + e.Weight
			if newDist < dist[e.To] {
				dist[e.To] = newDist
				prev[e.To] = e.From
				updated = true
			}
		}
		// A pass with zero updates means every distance is final.
		if !updated {
			break
		}
	}

	// 4) Validation pass: any edge still relaxable witnesses a negative
	//    cycle reachable from the source.
	negCycle := false
	for _, e = range edges {
		if math.IsInf(dist[e.From], 1) {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			negCycle = true

			break
		}
	}

	return dist, prev, negCycle, nil
}
