// Package netmetrics computes a standard battery of node-centrality metrics
// over a directed graph and returns them as aligned, min-max normalized
// numeric arrays ready for comparison and visualization.
//
// 🚀 What is netmetrics?
//
//	A small, concurrent, pure-Go centrality engine that brings together:
//		• Core primitives: a dense-index directed multigraph, built once and frozen
//		• PageRank: damped random walk with explicit dangling-mass redistribution
//		• Betweenness: Brandes accumulation (BFS or Dijkstra stage)
//		• Closeness: Wasserman–Faust correction for disconnected graphs
//		• Spectral scores: Eigenvector, Katz, and HITS hub/authority
//		• Alignment: one table, one canonical node order, seven metric columns
//
// ✨ Why choose netmetrics?
//
//   - Predictable – every vector has length N, never a NaN, never a panic
//   - Concurrent – independent metrics run on a bounded worker pool
//   - Honest – iteration-capped results are flagged, not silently returned
//   - Pure Go – no cgo, no numeric runtime to ship
//
// Everything is organized under focused subpackages:
//
//	core/        — Graph, arcs, weights, freeze-after-build lifecycle
//	builder/     — deterministic topology factories for fixtures and demos
//	pagerank/    — damped power-method PageRank
//	betweenness/ — Brandes betweenness centrality
//	closeness/   — Wasserman–Faust closeness centrality
//	spectral/    — eigenvector, Katz, and HITS power iterations
//	metrics/     — the facade: parallel run, alignment, normalization
//
// Quick ASCII example:
//
//	0 ──▶ 1 ──▶ 2 ──▶ 3
//
//	a four-node path: node 3 is a dangling sink, node 0 reaches everyone.
//
// Start with metrics.Compute for the whole battery, or call any algorithm
// package directly when you need a single score.
//
//	go get github.com/netmetrics/netmetrics
package netmetrics
