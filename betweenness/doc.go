// Package betweenness computes betweenness centrality for every node of a
// directed core.Graph using Brandes' dependency-accumulation algorithm.
//
// 🚀 What is betweenness?
//
//	For every ordered pair (s, t), the fraction of shortest s→t paths that
//	pass through a node v, summed over all pairs. Nodes sitting on many
//	shortest paths act as brokers of the graph.
//
// The naive all-pairs formulation costs O(V³); Brandes reduces it to one
// single-source stage per node plus a reverse accumulation pass over the
// shortest-path DAG:
//
//   - unweighted graphs: a BFS stage, O(V·E) total
//   - weighted graphs: a binary-heap Dijkstra stage with lazy decrease-key,
//     O(V·(E + V log V)) total; negative arc weights are rejected up front
//     with ErrNegativeWeight
//
// Disconnected pairs contribute zero; self-loops and parallel arcs are
// handled as in any multigraph (a parallel arc is a distinct shortest path).
//
// By default scores are normalized by (N−1)(N−2), the number of ordered
// pairs a node can sit between in a directed graph; disable with
// WithNormalized(false). Normalization is a no-op for N < 3.
//
// ⚙️ Usage:
//
//	scores, err := betweenness.Compute(g)
//	if err != nil { ... }
//
// Performance:
//
//   - Time:   O(V·E) unweighted, O(V·(E + V log V)) weighted
//   - Memory: O(V + E)
package betweenness
