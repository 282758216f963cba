// Package metrics defines the canonical metric keys, engine options and
// sentinel errors of the facade.
package metrics

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/netmetrics/netmetrics/pagerank"
	"github.com/netmetrics/netmetrics/spectral"
)

// Metric names one column of the Table. The seven canonical keys below are
// the only valid values; they double as stable column names for downstream
// persistence.
type Metric string

// The fixed metric battery.
const (
	MetricPageRank      Metric = "pagerank"
	MetricBetweenness   Metric = "betweenness"
	MetricCloseness     Metric = "closeness"
	MetricEigenvector   Metric = "eigenvector"
	MetricKatz          Metric = "katz"
	MetricHITSHub       Metric = "hits_hub"
	MetricHITSAuthority Metric = "hits_authority"
)

// allMetrics fixes the canonical column order.
var allMetrics = [...]Metric{
	MetricPageRank,
	MetricBetweenness,
	MetricCloseness,
	MetricEigenvector,
	MetricKatz,
	MetricHITSHub,
	MetricHITSAuthority,
}

// AllMetrics returns the seven canonical metric keys in column order.
// The returned slice is a fresh copy.
func AllMetrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics[:])

	return out
}

// Sentinel errors for the facade.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("metrics: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("metrics: invalid option supplied")

	// ErrAlignment is returned when an incoming metric vector is missing,
	// unknown, or does not match the canonical node count. Always wrapped
	// with the offending metric's name.
	ErrAlignment = errors.New("metrics: metric vector misaligned")
)

// Options holds the engine configuration passed into Compute.
//
// Normalize     – min-max rescale each metric into [0,1] (default true).
// Workers       – parallelism bound for the algorithm stage
//                 (default runtime.NumCPU()).
// Damping       – PageRank damping factor d (default 0.85).
// KatzAlpha     – Katz attenuation α (default 0.1).
// KatzBeta      – Katz baseline β (default 1.0).
// Tolerance     – shared convergence tolerance of the iterative metrics
//                 (default 1e-8).
// MaxIterations – shared iteration cap of the iterative metrics
//                 (default 100).
type Options struct {
	Normalize     bool
	Workers       int
	Damping       float64
	KatzAlpha     float64
	KatzBeta      float64
	Tolerance     float64
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// Option configures the engine via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// DefaultOptions returns the documented engine defaults. The numeric knobs
// mirror the per-algorithm defaults so that calling an algorithm package
// directly or through the facade yields the same numbers.
func DefaultOptions() Options {
	return Options{
		Normalize:     true,
		Workers:       runtime.NumCPU(),
		Damping:       pagerank.DefaultDamping,
		KatzAlpha:     spectral.DefaultAlpha,
		KatzBeta:      spectral.DefaultBeta,
		Tolerance:     pagerank.DefaultTolerance,
		MaxIterations: pagerank.DefaultMaxIterations,
	}
}

// WithNormalize toggles per-metric min-max normalization.
func WithNormalize(on bool) Option {
	return func(o *Options) { o.Normalize = on }
}

// WithWorkers bounds the parallel algorithm stage. Must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithDamping sets the PageRank damping factor. Must satisfy 0 < d < 1.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1), got %g", ErrOptionViolation, d)

			return
		}
		o.Damping = d
	}
}

// WithKatzAlpha sets the Katz attenuation factor. Must be positive.
func WithKatzAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 {
			o.err = fmt.Errorf("%w: katz alpha must be positive, got %g", ErrOptionViolation, a)

			return
		}
		o.KatzAlpha = a
	}
}

// WithKatzBeta sets the Katz baseline.
func WithKatzBeta(b float64) Option {
	return func(o *Options) { o.KatzBeta = b }
}

// WithTolerance sets the shared convergence tolerance. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive, got %g", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the shared iteration cap. Must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}
