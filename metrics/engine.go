// engine.go orchestrates the metric battery: parallel fan-out over a
// bounded worker pool, a join barrier, alignment, then normalization.

package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/netmetrics/netmetrics/betweenness"
	"github.com/netmetrics/netmetrics/closeness"
	"github.com/netmetrics/netmetrics/core"
	"github.com/netmetrics/netmetrics/pagerank"
	"github.com/netmetrics/netmetrics/spectral"
)

// Compute runs all seven centrality metrics over g and returns their
// aligned Table.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. All supplied options must be valid (ErrOptionViolation).
//
// Compute freezes g, so the graph must be fully constructed beforehand;
// after the freeze the algorithms share it without any locking, each
// writing only its private output vector.
//
// The algorithm stage runs on a worker pool bounded by Options.Workers.
// The assembly step is a barrier: it waits for every task. A failing task
// (for example a negative weight reaching a shortest-path metric) aborts
// the run with that task's error; already-running tasks finish but their
// results are discarded. Iteration-capped metrics do not fail; they are
// listed in Table.NonConverged.
//
// ctx is consulted before each task starts; a run that is already past
// fan-out completes normally. Passing nil ctx is allowed.
//
// Complexity: bounded by betweenness, O(V·E + maxIter·(V+E)) overall.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Construction-then-freeze: from here on the graph is read-only.
	g.Freeze()
	n := g.NodeCount()

	// Private result slots, one per task; no shared mutable state.
	var (
		pr   *pagerank.Result
		btw  []float64
		cls  []float64
		eig  *spectral.Result
		ktz  *spectral.Result
		hits *spectral.HITSResult
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	run := func(task func() error) {
		eg.Go(func() error {
			// Skip launching once the run is doomed or cancelled.
			if err := ctx.Err(); err != nil {
				return err
			}

			return task()
		})
	}

	run(func() error {
		var err error
		pr, err = pagerank.Compute(g,
			pagerank.WithDamping(o.Damping),
			pagerank.WithTolerance(o.Tolerance),
			pagerank.WithMaxIterations(o.MaxIterations),
		)

		return err
	})
	run(func() error {
		var err error
		btw, err = betweenness.Compute(g)

		return err
	})
	run(func() error {
		var err error
		cls, err = closeness.Compute(g)

		return err
	})
	run(func() error {
		var err error
		eig, err = spectral.Eigenvector(g,
			spectral.WithTolerance(o.Tolerance),
			spectral.WithMaxIterations(o.MaxIterations),
		)

		return err
	})
	run(func() error {
		var err error
		ktz, err = spectral.Katz(g,
			spectral.WithAlpha(o.KatzAlpha),
			spectral.WithBeta(o.KatzBeta),
			spectral.WithTolerance(o.Tolerance),
			spectral.WithMaxIterations(o.MaxIterations),
		)

		return err
	})
	run(func() error {
		// Hub and authority refine each other; one task yields both vectors.
		var err error
		hits, err = spectral.HITS(g,
			spectral.WithTolerance(o.Tolerance),
			spectral.WithMaxIterations(o.MaxIterations),
		)

		return err
	})

	// Barrier: all-or-nothing, first error wins.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	table, err := Assemble(n, map[Metric][]float64{
		MetricPageRank:      pr.Scores,
		MetricBetweenness:   btw,
		MetricCloseness:     cls,
		MetricEigenvector:   eig.Scores,
		MetricKatz:          ktz.Scores,
		MetricHITSHub:       hits.Hub,
		MetricHITSAuthority: hits.Authority,
	})
	if err != nil {
		return nil, err
	}

	table.markNonConverged(map[Metric]bool{
		MetricPageRank:      !pr.Converged,
		MetricEigenvector:   !eig.Converged,
		MetricKatz:          !ktz.Converged,
		MetricHITSHub:       !hits.Converged,
		MetricHITSAuthority: !hits.Converged,
	})

	if o.Normalize {
		table.normalize()
	}

	return table, nil
}
