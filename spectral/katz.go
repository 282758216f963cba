// katz.go implements Katz centrality by fixed-point iteration of
// x(v) = α·Σ_{u→v} w(u,v)·x(u) + β.

package spectral

import (
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// Katz computes Katz centrality under the incoming-arc convention with
// attenuation α and baseline β (see WithAlpha, WithBeta; defaults 0.1 and
// 1.0). Scores are returned raw — unlike eigenvector they have an absolute
// scale anchored by β.
//
// Convergence requires α below the reciprocal spectral radius; the default
// is conservative. A diverging or slow run hits the iteration cap and is
// reported via Result.Converged, never as an error.
//
// An edgeless graph converges immediately to the all-β vector.
//
// Complexity:
//
//   - Time:  O(maxIter · (V + E))
//   - Space: O(V)
func Katz(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	if n == 0 {
		return &Result{Scores: []float64{}, Converged: true}, nil
	}

	// Baseline start: x = β everywhere.
	x := make([]float64, n)
	next := make([]float64, n)
	for v := range x {
		x[v] = o.Beta
	}

	var (
		iter      int
		converged bool
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		for v := 0; v < n; v++ {
			var sum float64
			for _, a := range g.InArcs(v) {
				sum += a.Weight * x[a.To]
			}
			next[v] = o.Alpha*sum + o.Beta
		}

		var delta float64
		for v := 0; v < n; v++ {
			delta += math.Abs(next[v] - x[v])
		}
		x, next = next, x

		if delta < o.Tolerance {
			converged = true

			break
		}
	}
	if iter > o.MaxIterations {
		iter = o.MaxIterations
	}

	return &Result{Scores: x, Iterations: iter, Converged: converged}, nil
}
