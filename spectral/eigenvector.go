// eigenvector.go implements power iteration on the incoming-arc adjacency:
// multiply, L2-normalize, repeat until the direction stabilizes.

package spectral

import (
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// Eigenvector approximates the dominant eigenvector of g's adjacency under
// the incoming-arc convention: x′(v) = Σ_{u→v} w(u,v)·x(u), followed by L2
// normalization each step.
//
// Convergence: Σ|x′−x| < tolerance·N, or the iteration cap (reported via
// Result.Converged, never an error).
//
// Degenerate fallback: if the multiplied vector collapses to zero (an
// edgeless graph, or any graph whose adjacency is nilpotent, such as a DAG)
// the all-zero vector is returned as a defined result instead of attempting
// to normalize it.
//
// Complexity:
//
//   - Time:  O(maxIter · (V + E))
//   - Space: O(V)
func Eigenvector(g *core.Graph, opts ...Option) (*Result, error) {
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

	// Uniform start on the unit L2 sphere.
	x := make([]float64, n)
	next := make([]float64, n)
	start := 1.0 / math.Sqrt(float64(n))
	for v := range x {
		x[v] = start
	}

	threshold := o.Tolerance * float64(n)
	var (
		iter      int
		converged bool
	)
	for iter = 1; iter <= o.MaxIterations; iter++ {
		// next = Aᵀx under the incoming-arc convention.
		for v := 0; v < n; v++ {
			var sum float64
			for _, a := range g.InArcs(v) {
				sum += a.Weight * x[a.To]
			}
			next[v] = sum
		}

		// L2 norm; a zero vector cannot be normalized — take the fallback.
		var norm float64
		for _, s := range next {
			norm += s * s
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			return &Result{Scores: make([]float64, n), Iterations: iter, Converged: true}, nil
		}
		for v := range next {
			next[v] /= norm
		}

		var delta float64
		for v := 0; v < n; v++ {
			delta += math.Abs(next[v] - x[v])
		}
		x, next = next, x

		if delta < threshold {
			converged = true

			break
		}
	}
	if iter > o.MaxIterations {
		iter = o.MaxIterations
	}

	return &Result{Scores: x, Iterations: iter, Converged: converged}, nil
}
