// align.go implements the Table, the alignment guard that merges
// independently computed vectors under the canonical node order, and
// min-max normalization.

package metrics

import "fmt"

// Table is the aligned result of one engine run: seven metric vectors, all
// of length N, indexed by the canonical node order 0..N-1.
//
// A Table is immutable after creation and owned exclusively by the caller;
// accessors return shared slices that must not be mutated.
type Table struct {
	nodeCount    int
	values       map[Metric][]float64
	nonConverged map[Metric]bool
	normalized   bool
}

// NodeCount returns N, the length of every vector in the table.
func (t *Table) NodeCount() int { return t.nodeCount }

// Normalized reports whether min-max normalization was applied.
func (t *Table) Normalized() bool { return t.normalized }

// Vector returns the values of metric m in canonical node order.
// The second result is false for an unknown metric.
func (t *Table) Vector(m Metric) ([]float64, bool) {
	vec, ok := t.values[m]

	return vec, ok
}

// Converged reports whether metric m met its tolerance before the
// iteration cap. Non-iterative metrics (betweenness, closeness) and
// unknown metrics report true.
func (t *Table) Converged(m Metric) bool { return !t.nonConverged[m] }

// NonConverged returns, in canonical column order, the metrics that hit
// their iteration cap. Empty for a fully converged run.
func (t *Table) NonConverged() []Metric {
	var out []Metric
	for _, m := range allMetrics {
		if t.nonConverged[m] {
			out = append(out, m)
		}
	}

	return out
}

// Assemble merges per-metric vectors into a Table keyed by the canonical
// node index. This is a pure re-indexing/merge step: nothing is recomputed,
// but every incoming vector is checked against the canonical node count n.
//
// Fails with ErrAlignment (wrapped with the metric name) when a canonical
// metric is missing, an unknown key appears, or a vector's length differs
// from n. Vectors are copied, so the Table stays valid however the caller
// reuses its buffers.
//
// Complexity: O(M·N) for M metrics.
func Assemble(n int, vectors map[Metric][]float64) (*Table, error) {
	for m := range vectors {
		if !knownMetric(m) {
			return nil, fmt.Errorf("%w: unknown metric %q", ErrAlignment, m)
		}
	}

	values := make(map[Metric][]float64, len(allMetrics))
	for _, m := range allMetrics {
		vec, ok := vectors[m]
		if !ok {
			return nil, fmt.Errorf("%w: missing metric %q", ErrAlignment, m)
		}
		if len(vec) != n {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrAlignment, m, len(vec), n)
		}
		values[m] = append([]float64(nil), vec...)
	}

	return &Table{
		nodeCount:    n,
		values:       values,
		nonConverged: make(map[Metric]bool, len(allMetrics)),
	}, nil
}

// knownMetric reports whether m is one of the seven canonical keys.
func knownMetric(m Metric) bool {
	for _, k := range allMetrics {
		if k == m {
			return true
		}
	}

	return false
}

// markNonConverged records the metrics that hit their iteration cap.
// Called once by the engine before the Table is handed to the caller.
func (t *Table) markNonConverged(flags map[Metric]bool) {
	for m, capped := range flags {
		if capped {
			t.nonConverged[m] = true
		}
	}
}

// normalize applies MinMax to every column in place.
func (t *Table) normalize() {
	for _, vec := range t.values {
		minMaxInPlace(vec)
	}
	t.normalized = true
}

// MinMax returns a copy of xs linearly rescaled to [0,1]:
// (x − min) / (max − min). The degenerate case max == min maps every
// element to 0, never NaN. An empty input yields an empty output.
func MinMax(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	minMaxInPlace(out)

	return out
}

// minMaxInPlace rescales xs in place; the transient (min, max) pair is
// recomputed per call and never persisted.
func minMaxInPlace(xs []float64) {
	if len(xs) == 0 {
		return
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		// Constant column: defined as all-zero rather than 0/0.
		for i := range xs {
			xs[i] = 0
		}

		return
	}
	scale := 1 / (hi - lo)
	for i := range xs {
		xs[i] = (xs[i] - lo) * scale
	}
}
