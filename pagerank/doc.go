// Package pagerank computes the stationary distribution of a damped random
// walk over a directed core.Graph (the PageRank score).
//
// 🚀 What is PageRank?
//
//	The probability that a random surfer, following out-arcs with
//	probability d and teleporting uniformly with probability 1−d, is
//	found at each node in the long run:
//
//	  rank(v) = (1−d)/N + d · Σ_{u→v} rank(u)·w(u,v)/outstrength(u)
//
// ✨ Key guarantees:
//   - Dangling nodes (zero out-strength) redistribute their mass uniformly
//     over all nodes each iteration, so Σ rank(v) = 1 holds at every step,
//     including for graphs that are nothing but dangling nodes.
//   - Non-convergence is not an error: when the iteration cap is reached
//     before the L1 delta drops below tolerance, the last iterate is
//     returned with Result.Converged == false.
//   - Weighted graphs split a node's mass proportionally to arc weight;
//     on unweighted graphs this reduces to the classic 1/outdeg split.
//
// ⚙️ Usage:
//
//	res, err := pagerank.Compute(g,
//	    pagerank.WithDamping(0.85),
//	    pagerank.WithTolerance(1e-8),
//	)
//	if err != nil { ... }
//	if !res.Converged { /* approximate result, flagged not fatal */ }
//
// Performance:
//
//   - Time:   O(maxIter · (V + E))
//   - Memory: O(V)
package pagerank
