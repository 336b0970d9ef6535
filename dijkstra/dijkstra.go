// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted directed graphs with non-negative edge weights.
//
// The primary engine, ShortestPaths, uses an array-based greedy selector:
// each round linearly scans all unsettled vertices for the minimum
// tentative distance, settles it, and relaxes its outgoing arcs.
//
// Complexity:
//
//	– Time:  O(V²) selection + O(E) total relaxation
//	   • V rounds, each scanning up to V unsettled vertices.
//	   • Every arc is relaxed at most once, when its tail is settled.
//	– Space: O(V)
//	   • One distance vector, one predecessor vector, one settled vector.
//
// The quadratic selector is a deliberate design choice, not an oversight:
// downstream latency comparisons against Bellman-Ford depend on this exact
// cost profile. ShortestPathsHeap is provided as a separate, additional
// variant for callers who want the heap-based asymptotics instead.
//
// Precondition: every edge weight must be ≥ 0. The engine performs no
// negative-weight detection and never alters weights; if the precondition
// is violated, both termination behavior and result correctness are
// unspecified.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/routelab/pathbench/graph"
)

// ShortestPaths computes shortest distances from source to every vertex
// of g using the array-based greedy selector.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v,
//     or math.Inf(1) if v is unreachable. dist[source] == 0.
//   - prev: prev[v] is the predecessor of v on a shortest path,
//     or graph.NoPredecessor for the source and unreachable vertices.
//   - err:  ErrNilGraph or ErrInvalidSource on invalid input.
//
// Both vectors are freshly allocated per call; callers may retain them
// for later path reconstruction or discard them immediately. g itself is
// never mutated.
//
// Determinism: ties in the greedy selection go to the smallest vertex
// index, and arcs are relaxed in edge insertion order, so results are
// identical across runs for the same graph and source.
func ShortestPaths(g *graph.Graph, source int) ([]float64, []int, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %d, vertex count %d", ErrInvalidSource, source, g.VertexCount())
	}

	// 2) Allocate fresh per-invocation state.
	V := g.VertexCount()
	dist := make([]float64, V)
	prev := make([]int, V)
	settled := make([]bool, V)
	inf := math.Inf(1)
	var v int
	for v = 0; v < V; v++ {
		dist[v] = inf
		prev[v] = graph.NoPredecessor
	}
	dist[source] = 0

	// 3) Settle one vertex per round, at most V rounds.
	var (
		round   int
		u       int
		arc     graph.Arc
		newDist float64
	)
	for round = 0; round < V; round++ {
		// 3a) Linear scan for the unsettled vertex with minimum distance.
		//     The strict "<" keeps ties on the smallest vertex index.
		u = -1
		best := inf
		for v = 0; v < V; v++ {
			if !settled[v] && dist[v] < best {
				best = dist[v]
				u = v
			}
		}

		// 3b) Every remaining vertex is unreachable; nothing left to settle.
		if u == -1 {
			break
		}

		// 3c) Settle u: dist[u] is final.
		settled[u] = true

		// 3d) Relax each outgoing arc of u, in insertion order.
		for _, arc = range g.Neighbors(u) {
			if settled[arc.To] {
				continue
			}
			newDist = dist[u] + arc.Weight
			if newDist < dist[arc.To] {
				dist[arc.To] = newDist
				prev[arc.To] = u
			}
		}
	}

	return dist, prev, nil
}
