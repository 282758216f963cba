// pagerank.go implements the damped power method with explicit
// dangling-mass redistribution.

package pagerank

import (
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// Compute runs the power method on g and returns the PageRank vector in
// canonical node order.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. All supplied options must be valid (ErrOptionViolation).
//
// Dangling handling: a node with zero (or non-positive, on weighted graphs)
// out-strength transfers its mass uniformly to all nodes, so total
// probability mass stays exactly 1 at every iteration.
//
// Non-convergence is reported via Result.Converged, never as an error.
//
// Complexity:
//
//   - Time:  O(maxIter · (V + E))
//   - Space: O(V)
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if n == 0 {
		// Zero-node graph: empty vector, trivially converged.
		return &Result{Scores: []float64{}, Converged: true}, nil
	}

	// 3) Precompute out-strengths and the dangling set.
	//    Non-positive out-strength is treated as dangling: there is no
	//    meaningful way to split mass across such an arc set.
	outw := make([]float64, n)
	dangling := make([]bool, n)
	for u := 0; u < n; u++ {
		outw[u] = g.OutStrength(u)
		dangling[u] = outw[u] <= 0
	}

	// 4) Power iteration: uniform start, two alternating vectors.
	rank := make([]float64, n)
	next := make([]float64, n)
	uniform := 1.0 / float64(n)
	for v := range rank {
		rank[v] = uniform
	}

	var (
		d         = o.Damping
		base      = (1 - d) / float64(n)
		iter      int
		delta     float64
		converged bool
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		// Dangling mass collected this round.
		var m float64
		for u := 0; u < n; u++ {
			if dangling[u] {
				m += rank[u]
			}
		}

		// Teleport term plus uniform dangling redistribution.
		floor := base + d*m/float64(n)
		for v := 0; v < n; v++ {
			next[v] = floor
		}

		// Push each node's damped mass along its out-arcs,
		// proportionally to arc weight.
		for u := 0; u < n; u++ {
			if dangling[u] {
				continue
			}
			share := d * rank[u] / outw[u]
			for _, a := range g.OutArcs(u) {
				next[a.To] += share * a.Weight
			}
		}

		// L1 change between successive iterates.
		delta = 0
		for v := 0; v < n; v++ {
			delta += math.Abs(next[v] - rank[v])
		}
		rank, next = next, rank

		if delta < o.Tolerance {
			converged = true

			break
		}
	}
	if iter > o.MaxIterations {
		iter = o.MaxIterations
	}

	return &Result{Scores: rank, Iterations: iter, Converged: converged}, nil
}
