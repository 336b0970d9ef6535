// Package dijkstra_test contains unit tests for both Dijkstra engines.
// These tests validate input checking, the worked reference graph, the
// smallest-index tie-break of the array selector, unreachable vertices,
// self-loops, and array/heap result equivalence.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/routelab/pathbench/dijkstra"
	"github.com/routelab/pathbench/graph"
)

// engine is either ShortestPaths or ShortestPathsHeap; every behavioral
// test runs against both.
type engine struct {
	name string
	fn   func(*graph.Graph, int) ([]float64, []int, error)
}

func engines() []engine {
	return []engine{
		{"array", dijkstra.ShortestPaths},
		{"heap", dijkstra.ShortestPathsHeap},
	}
}

// buildWorked constructs the reference graph
// 0→1(4), 0→2(1), 2→1(1), 1→3(1), 2→3(5) over 4 vertices.
func buildWorked(t testing.TB) *graph.Graph {
	t.Helper()
	g, err := graph.New([]graph.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 5},
	}, 4)
	if err != nil {
		t.Fatalf("building worked graph: %v", err)
	}

	return g
}

// buildRandom constructs a connected directed graph with n vertices and
// roughly extra additional random edges. Weights are integer-valued so
// float sums along alternative equal-cost paths stay exact.
func buildRandom(t testing.TB, n, extra int, seed int64) *graph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	edges := make([]graph.Edge, 0, n-1+extra)
	// Chain 0→1→…→n-1 guarantees reachability from vertex 0.
	for v := 1; v < n; v++ {
		edges = append(edges, graph.Edge{From: v - 1, To: v, Weight: float64(1 + r.Intn(10))})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, graph.Edge{
			From:   r.Intn(n),
			To:     r.Intn(n),
			Weight: float64(1 + r.Intn(100)),
		})
	}

	g, err := graph.New(edges, n)
	if err != nil {
		t.Fatalf("building random graph: %v", err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs fail with the right sentinels.
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	for _, eng := range engines() {
		t.Run(eng.name, func(t *testing.T) {
			_, _, err := eng.fn(nil, 0)
			if !errors.Is(err, dijkstra.ErrNilGraph) {
				t.Fatalf("expected ErrNilGraph, got %v", err)
			}
		})
	}
}

func TestShortestPaths_InvalidSource(t *testing.T) {
	g := buildWorked(t)
	for _, eng := range engines() {
		t.Run(eng.name, func(t *testing.T) {
			for _, source := range []int{-1, 4, 100} {
				_, _, err := eng.fn(g, source)
				if !errors.Is(err, dijkstra.ErrInvalidSource) {
					t.Errorf("source %d: expected ErrInvalidSource, got %v", source, err)
				}
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Worked reference graph: exact distances and predecessors.
// ------------------------------------------------------------------------

func TestShortestPaths_WorkedExample(t *testing.T) {
	g := buildWorked(t)
	wantDist := []float64{0, 2, 1, 3}

	for _, eng := range engines() {
		t.Run(eng.name, func(t *testing.T) {
			dist, prev, err := eng.fn(g, 0)
			if err != nil {
				t.Fatal(err)
			}
			for v, want := range wantDist {
				if dist[v] != want {
					t.Errorf("dist[%d] = %v; want %v", v, dist[v], want)
				}
			}
			// Shortest path to 3 is 0→2→1→3.
			if prev[0] != graph.NoPredecessor {
				t.Errorf("prev[source] = %d; want NoPredecessor", prev[0])
			}
			if prev[2] != 0 || prev[1] != 2 || prev[3] != 1 {
				t.Errorf("unexpected predecessors: %v", prev)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 3. Tie-break: the array selector settles the smallest vertex index.
// ------------------------------------------------------------------------

func TestShortestPaths_TieBreakSmallestIndex(t *testing.T) {
	// Vertices 1 and 2 both reach distance 1; vertex 3 is reachable from
	// either at equal total cost. Vertex 1 settles first (smaller index),
	// relaxes 3 first, and the later equal-cost relaxation via 2 must not
	// displace it.
	g, err := graph.New([]graph.Edge{
		{From: 0, To: 2, Weight: 1}, // inserted before 0→1 on purpose
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 1, To: 3, Weight: 1},
	}, 4)
	if err != nil {
		t.Fatal(err)
	}

	_, prev, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if prev[3] != 1 {
		t.Errorf("prev[3] = %d; want 1 (vertex 1 settles before vertex 2)", prev[3])
	}
}

// ------------------------------------------------------------------------
// 4. Unreachable vertices and self-loops.
// ------------------------------------------------------------------------

func TestShortestPaths_UnreachableIsInf(t *testing.T) {
	// 0→1, vertex 2 isolated.
	g, err := graph.New([]graph.Edge{{From: 0, To: 1, Weight: 1}}, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, eng := range engines() {
		t.Run(eng.name, func(t *testing.T) {
			dist, prev, err := eng.fn(g, 0)
			if err != nil {
				t.Fatal(err)
			}
			if !math.IsInf(dist[2], 1) {
				t.Errorf("dist[2] = %v; want +Inf", dist[2])
			}
			if prev[2] != graph.NoPredecessor {
				t.Errorf("prev[2] = %d; want NoPredecessor", prev[2])
			}
		})
	}
}

func TestShortestPaths_SelfLoopNeverImproves(t *testing.T) {
	// A positive self-loop on the source must never lower dist[source].
	g, err := graph.New([]graph.Edge{
		{From: 0, To: 0, Weight: 5},
		{From: 0, To: 1, Weight: 2},
	}, 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, eng := range engines() {
		t.Run(eng.name, func(t *testing.T) {
			dist, prev, err := eng.fn(g, 0)
			if err != nil {
				t.Fatal(err)
			}
			if dist[0] != 0 {
				t.Errorf("dist[0] = %v; want 0", dist[0])
			}
			if prev[0] != graph.NoPredecessor {
				t.Errorf("prev[0] = %d; want NoPredecessor", prev[0])
			}
		})
	}
}

func TestShortestPaths_SingleVertex(t *testing.T) {
	g, err := graph.New(nil, 1)
	if err != nil {
		t.Fatal(err)
	}

	dist, prev, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 || prev[0] != graph.NoPredecessor {
		t.Errorf("dist=%v prev=%v; want dist[0]=0, prev[0]=NoPredecessor", dist, prev)
	}
}

// ------------------------------------------------------------------------
// 5. Fresh state per invocation, and array/heap equivalence.
// ------------------------------------------------------------------------

func TestShortestPaths_FreshVectorsPerCall(t *testing.T) {
	g := buildWorked(t)

	dist1, prev1, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	dist2, prev2, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Retained results must be independent of later invocations.
	dist2[1] = -99
	prev2[1] = 42
	if dist1[1] != 2 || prev1[1] != 2 {
		t.Errorf("earlier result mutated: dist1=%v prev1=%v", dist1, prev1)
	}
}

func TestShortestPaths_ArrayAndHeapAgree(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g := buildRandom(t, 150, 600, seed)

		distArr, _, err := dijkstra.ShortestPaths(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		distHeap, _, err := dijkstra.ShortestPathsHeap(g, 0)
		if err != nil {
			t.Fatal(err)
		}

		for v := range distArr {
			if distArr[v] != distHeap[v] {
				t.Fatalf("seed %d: dist[%d] array=%v heap=%v", seed, v, distArr[v], distHeap[v])
			}
		}
	}
}
