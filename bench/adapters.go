// Canonical Algorithm adapters for the engines shipped with this module.
// Each adapter performs one full single-source computation and discards
// the result vectors, which is exactly what the latency comparison wants.

package bench

import (
	"github.com/routelab/pathbench/bellmanford"
	"github.com/routelab/pathbench/dijkstra"
	"github.com/routelab/pathbench/graph"
)

// Dijkstra adapts the array-based O(V²) greedy engine.
func Dijkstra() Algorithm {
	return Algorithm{
		Name: "Dijkstra",
		Run: func(g *graph.Graph, source int) error {
			_, _, err := dijkstra.ShortestPaths(g, source)

			return err
		},
	}
}

// DijkstraHeap adapts the heap-based Dijkstra variant.
func DijkstraHeap() Algorithm {
	return Algorithm{
		Name: "Dijkstra-Heap",
		Run: func(g *graph.Graph, source int) error {
			_, _, err := dijkstra.ShortestPathsHeap(g, source)

			return err
		},
	}
}

// BellmanFord adapts the edge-relaxation engine. The negative-cycle flag
// is informational and deliberately not treated as a failure.
func BellmanFord() Algorithm {
	return Algorithm{
		Name: "Bellman-Ford",
		Run: func(g *graph.Graph, source int) error {
			_, _, _, err := bellmanford.ShortestPaths(g, source)

			return err
		},
	}
}
