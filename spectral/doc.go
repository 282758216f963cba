// Package spectral groups the three power-iteration centrality scores:
// eigenvector centrality, Katz centrality, and HITS hub/authority.
//
// 🚀 What do they measure?
//
//	Eigenvector — importance proportional to the importance of the nodes
//	pointing at you: the dominant eigenvector of the adjacency matrix,
//	approximated by repeated multiply-and-renormalize.
//
//	Katz — eigenvector's fix for sparse reachability: every node gets a
//	baseline β and every in-path contributes attenuated by αᵏ, so scores
//	stay meaningful on DAGs where pure eigenvector collapses to zero.
//
//	HITS — two mutually recursive roles: a good hub points at good
//	authorities, a good authority is pointed at by good hubs.
//
// All three share the same convergence contract as pagerank:
// a (tolerance, max-iterations) pair, a Converged flag on the result,
// and no error on hitting the cap — approximate results are flagged,
// not discarded.
//
// Directionality convention (fixed): scores flow along arc direction.
// Eigenvector and Katz aggregate over incoming arcs, so x′(v) sums over
// u→v; HITS authority aggregates incoming hub mass and hub aggregates
// outgoing authority mass. Arc weight scales every contribution.
//
// Degenerate graphs take explicit fallbacks instead of dividing by zero:
// an edgeless graph yields all-zero eigenvector and HITS vectors and an
// all-β Katz vector.
//
// ⚙️ Usage:
//
//	eig, err := spectral.Eigenvector(g)
//	ktz, err := spectral.Katz(g, spectral.WithAlpha(0.05))
//	hits, err := spectral.HITS(g)
//
// Performance (each):
//
//   - Time:   O(maxIter · (V + E))
//   - Memory: O(V)
package spectral
