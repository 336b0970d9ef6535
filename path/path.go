// Package path reconstructs shortest-path routes from the predecessor
// vectors produced by the dijkstra and bellmanford engines, and prices
// explicit routes against a graph.
package path

import (
	"fmt"
	"math"

	"github.com/routelab/pathbench/graph"
)

// Reconstruct backtracks the predecessor vector prev from target to
// source and returns the route as an ordered vertex sequence from source
// to target inclusive. len(prev) is taken as the vertex count V.
//
// Returns:
//
//   - ErrInvalidVertex if source or target is outside [0, len(prev)).
//   - ErrNoPath if target is unreachable: prev[target] is
//     graph.NoPredecessor while target ≠ source, or the chain terminates
//     at a vertex other than source.
//   - ErrCorruptPredecessors if backtracking takes more than V steps or a
//     back-pointer leaves [0, V) — a cyclic or malformed vector that a
//     correct engine never produces. The bound guarantees termination.
//
// Complexity: O(V) time, O(V) space for the route.
func Reconstruct(prev []int, source, target int) ([]int, error) {
	V := len(prev)

	// 1) Validate endpoints against the vector's own range.
	if source < 0 || source >= V {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidVertex, source, V)
	}
	if target < 0 || target >= V {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrInvalidVertex, target, V)
	}

	// 2) The trivial route: target is the source itself.
	if target == source {
		return []int{source}, nil
	}

	// 3) No back-pointer at the target means no route exists.
	if prev[target] == graph.NoPredecessor {
		return nil, fmt.Errorf("%w: target %d has no predecessor", ErrNoPath, target)
	}

	// 4) Backtrack target → source, bounded by V steps so a cyclic vector
	//    fails loudly instead of looping forever.
	route := make([]int, 0, 8)
	current := target
	var steps int
	for current != graph.NoPredecessor {
		if steps >= V {
			return nil, fmt.Errorf("%w: backtracking exceeded %d steps", ErrCorruptPredecessors, V)
		}
		route = append(route, current)
		next := prev[current]
		if next != graph.NoPredecessor && (next < 0 || next >= V) {
			return nil, fmt.Errorf("%w: predecessor of %d is %d, not in [0,%d)", ErrCorruptPredecessors, current, next, V)
		}
		current = next
		steps++
	}

	// 5) A chain that ends anywhere but the source is not a route from it.
	if route[len(route)-1] != source {
		return nil, fmt.Errorf("%w: chain from %d terminates at %d, not %d", ErrNoPath, target, route[len(route)-1], source)
	}

	// 6) Reverse in place: route was collected target-first.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}

// Cost sums the edge weights along an explicit route in g. When parallel
// edges connect a hop, the cheapest one is charged — consistent with what
// a shortest-path engine would have traversed.
//
// Returns ErrInvalidVertex if the route is empty or leaves the graph, and
// ErrNotAdjacent if consecutive route vertices share no edge.
func Cost(g *graph.Graph, route []int) (float64, error) {
	if len(route) == 0 {
		return 0, fmt.Errorf("%w: empty route", ErrInvalidVertex)
	}

	var (
		total float64
		i     int
		arc   graph.Arc
	)
	for i = 0; i < len(route); i++ {
		if !g.HasVertex(route[i]) {
			return 0, fmt.Errorf("%w: route vertex %d", ErrInvalidVertex, route[i])
		}
	}
	for i = 0; i+1 < len(route); i++ {
		hop := math.Inf(1)
		for _, arc = range g.Neighbors(route[i]) {
			if arc.To == route[i+1] && arc.Weight < hop {
				hop = arc.Weight
			}
		}
		if math.IsInf(hop, 1) {
			return 0, fmt.Errorf("%w: no edge %d→%d", ErrNotAdjacent, route[i], route[i+1])
		}
		total += hop
	}

	return total, nil
}
