// Heap-based variant of the Dijkstra engine.
//
// ShortestPathsHeap is an additional engine, not a replacement for the
// array-based ShortestPaths: the quadratic selector is the reference
// behavior that the benchmark harness compares against. This variant uses
// a min-heap with the "lazy decrease-key" strategy: instead of updating
// entries in place, improved distances push duplicates that are skipped
// when popped if the vertex is already settled.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (heap may hold up to E stale entries)

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routelab/pathbench/graph"
)

// ShortestPathsHeap computes shortest distances from source to every
// vertex of g using a min-heap selector. For any graph satisfying the
// non-negative-weight precondition it produces exactly the same distance
// and predecessor vectors as ShortestPaths.
//
// Returns and errors are identical to ShortestPaths.
func ShortestPathsHeap(g *graph.Graph, source int) ([]float64, []int, error) {
	// 1) Validate inputs, same order and errors as the array engine.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %d, vertex count %d", ErrInvalidSource, source, g.VertexCount())
	}

	// 2) Fresh per-invocation state.
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

	// 3) Seed the heap with the source at distance 0.
	pq := make(nodePQ, 0, V)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// 4) Main loop: pop the closest vertex, skip stale entries, relax arcs.
	var (
		item    *nodeItem
		u       int
		arc     graph.Arc
		newDist float64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u = item.id

		// Stale entry from the lazy decrease-key strategy.
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, arc = range g.Neighbors(u) {
			if settled[arc.To] {
				continue
			}
			newDist = dist[u] + arc.Weight
			// Strict "<" avoids pushing duplicates for equal distances,
			// and keeps the earliest relaxation as the tie-winner — the
			// same tie-break the array selector produces.
			if newDist < dist[arc.To] {
				dist[arc.To] = newDist
				prev[arc.To] = u
				heap.Push(&pq, &nodeItem{id: arc.To, dist: newDist})
			}
		}
	}

	return dist, prev, nil
}

// nodeItem is a heap entry pairing a vertex with its tentative distance.
type nodeItem struct {
	id   int     // vertex id
	dist float64 // tentative distance from the source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with ties
// broken by the smaller vertex id for deterministic pop order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
