// Package metrics is the facade of netmetrics: it runs the full centrality
// battery over one frozen core.Graph and returns a single aligned Table.
//
// 🚀 What does it do?
//
//	One call, metrics.Compute, fans the seven metrics out over a bounded
//	worker pool (PageRank, Betweenness, Closeness, Eigenvector, Katz, and
//	the HITS hub/authority pair), joins at a barrier, verifies that every
//	vector is aligned to the canonical node order 0..N-1, and optionally
//	min-max normalizes each metric into [0,1].
//
// ✨ Guarantees:
//   - Every vector in the Table has length exactly N; a mismatch aborts
//     with ErrAlignment naming the offending metric.
//   - No NaN ever appears: degenerate algorithm cases resolve to 0 at the
//     source, and min-max normalization maps a constant vector to all-0.
//   - Fail-fast: the first algorithm error aborts the run; there is no
//     partial table.
//   - Iteration-capped metrics land in Table.NonConverged instead of being
//     silently indistinguishable from converged ones.
//   - Reentrant: configuration travels in explicit Options, never in
//     process-wide state; concurrent Compute calls on the same frozen
//     graph are safe.
//
// ⚙️ Usage:
//
//	tbl, err := metrics.Compute(ctx, g,
//	    metrics.WithWorkers(4),
//	    metrics.WithNormalize(true),
//	)
//	if err != nil { ... }
//	pr, _ := tbl.Vector(metrics.MetricPageRank)
//
// The graph is frozen by Compute; build it fully before calling.
package metrics
