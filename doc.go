// Package pathbench compares single-source shortest-path algorithms on
// weighted directed graphs and measures their repeated-invocation latency.
//
// 🚀 What is pathbench?
//
//	A small, deterministic library built around one question: how do the
//	classic shortest-path algorithms actually behave against each other
//	on the same dense-id graph?
//		• graph/       — immutable dual-representation model (adjacency list + edge list)
//		• dijkstra/    — array-based O(V²) greedy engine, plus a heap-based variant
//		• bellmanford/ — edge-relaxation engine with negative-cycle detection
//		• path/        — predecessor-chain route reconstruction and costing
//		• bench/       — repeated-invocation latency harness with CSV persistence
//		• dataset/     — CSV edge-list loader with pass-through metadata
//
// ✨ Why pathbench?
//
//   - Deterministic by construction – edge insertion order is preserved and
//     drives relaxation order and tie-breaks, so every run is reproducible
//   - Faithful cost profiles – the O(V²) array selector is kept on purpose;
//     the heap variant is an addition, never a silent replacement
//   - Honest measurement – the timing window wraps the algorithm call and
//     nothing else
//   - Pure Go – no cgo, read-only graphs safe for concurrent readers
//
// Quick flow:
//
//	edge list ──▶ graph.New ──▶ dijkstra / bellmanford ──▶ path.Reconstruct
//	                  │
//	                  └──▶ bench.Run ──▶ bench.WriteCSV
//
// Dive into each package's doc.go and runnable examples for details.
//
//	go get github.com/routelab/pathbench
package pathbench
