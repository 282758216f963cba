// hits.go implements Hyperlink-Induced Topic Search: alternating hub and
// authority refinement with per-step L2 normalization.

package spectral

import (
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// HITS computes hub and authority scores by mutual refinement from uniform
// starting vectors:
//
//	authority′(v) = Σ_{u→v} w(u,v)·hub(u)
//	hub′(v)       = Σ_{v→w} w(v,w)·authority′(w)
//
// each followed by L2 normalization, alternated until the combined L1
// change of both vectors drops below tolerance·N or the iteration cap is
// reached (reported via HITSResult.Converged, never an error).
//
// A graph with zero edges degrades to all-zero hub and authority vectors;
// the same fallback applies if either vector collapses to zero mid-run
// (possible with negative weights), so normalization never divides by zero.
//
// Complexity:
//
//   - Time:  O(maxIter · (V + E))
//   - Space: O(V)
func HITS(g *core.Graph, opts ...Option) (*HITSResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	if n == 0 {
		return &HITSResult{Hub: []float64{}, Authority: []float64{}, Converged: true}, nil
	}
	if g.EdgeCount() == 0 {
		// No arcs: nobody points and nobody is pointed at.
		return &HITSResult{
			Hub:       make([]float64, n),
			Authority: make([]float64, n),
			Converged: true,
		}, nil
	}

	hub := make([]float64, n)
	auth := make([]float64, n)
	newHub := make([]float64, n)
	newAuth := make([]float64, n)
	start := 1.0 / math.Sqrt(float64(n))
	for v := 0; v < n; v++ {
		hub[v] = start
		auth[v] = start
	}

	threshold := o.Tolerance * float64(n)
	var (
		iter      int
		converged bool
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		// Authority update from current hubs.
		for v := 0; v < n; v++ {
			var sum float64
			for _, a := range g.InArcs(v) {
				sum += a.Weight * hub[a.To]
			}
			newAuth[v] = sum
		}
		if !normalizeL2(newAuth) {
			return &HITSResult{Hub: make([]float64, n), Authority: make([]float64, n), Iterations: iter, Converged: true}, nil
		}

		// Hub update from the fresh authorities.
		for v := 0; v < n; v++ {
			var sum float64
			for _, a := range g.OutArcs(v) {
				sum += a.Weight * newAuth[a.To]
			}
			newHub[v] = sum
		}
		if !normalizeL2(newHub) {
			return &HITSResult{Hub: make([]float64, n), Authority: make([]float64, n), Iterations: iter, Converged: true}, nil
		}

		// Combined L1 change of both vectors.
		var delta float64
		for v := 0; v < n; v++ {
			delta += math.Abs(newAuth[v] - auth[v])
			delta += math.Abs(newHub[v] - hub[v])
		}
		auth, newAuth = newAuth, auth
		hub, newHub = newHub, hub

		if delta < threshold {
			converged = true

			break
		}
	}
	if iter > o.MaxIterations {
		iter = o.MaxIterations
	}

	return &HITSResult{Hub: hub, Authority: auth, Iterations: iter, Converged: converged}, nil
}

// normalizeL2 rescales x to unit L2 norm in place.
// Reports false when the norm is zero and x must not be used.
func normalizeL2(x []float64) bool {
	var norm float64
	for _, s := range x {
		norm += s * s
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return false
	}
	for i := range x {
		x[i] /= norm
	}

	return true
}
