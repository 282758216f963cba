// SPDX-License-Identifier: MIT
// Package: netmetrics/builder
//
// Package builder provides deterministic topology factories over core.Graph:
// Path, Cycle, Star, Complete, and RandomSparse.
//
// Design contract (strict):
//   - Factories return a fully constructed, unfrozen *core.Graph; the caller
//     decides when to Freeze.
//   - Determinism: same parameters (and seed, for RandomSparse) ⇒ identical
//     graphs, including arc insertion order.
//   - Vertices occupy the dense index space 0..n-1; edges are emitted in a
//     stable, documented order.
//   - Weight policy: on a core.WithWeighted() graph every emitted arc carries
//     weight 1.0; on an unweighted graph arcs use the core unit weight.
//   - Safety: never panic; return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability) from factories.
//
// These topologies are the fixtures the centrality test properties are
// written against: a directed cycle has uniform betweenness, an out-star
// maximizes the hub score of its center, a path exercises dangling-node
// handling in PageRank.
package builder
