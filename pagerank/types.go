// Package pagerank defines options, result types and sentinel errors for the
// damped power-method PageRank computation.
package pagerank

import (
	"errors"
	"fmt"
)

// Sentinel errors for PageRank execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)

// Default tuning knobs, the conventional literature values.
const (
	// DefaultDamping is the damping factor d of the random walk.
	DefaultDamping = 0.85

	// DefaultTolerance is the L1 convergence threshold between iterates.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the power-method loop.
	DefaultMaxIterations = 100
)

// Options holds the tuning knobs of the power method.
//
// Damping       – teleport complement d ∈ (0, 1).
// Tolerance     – stop once Σ|rankₜ₊₁ − rankₜ| < Tolerance.
// MaxIterations – hard cap; hitting it yields Converged=false, not an error.
type Options struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// Option configures PageRank behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// DefaultOptions returns Options with the documented defaults:
// Damping 0.85, Tolerance 1e-8, MaxIterations 100.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithDamping sets the damping factor d. Must satisfy 0 < d < 1.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1), got %g", ErrOptionViolation, d)

			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the L1 convergence threshold. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive, got %g", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap. Must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// Result is the outcome of a PageRank run.
//
// Scores is aligned to the canonical node index 0..N-1 and sums to 1 within
// floating-point tolerance (for N > 0). Converged reports whether the L1
// delta dropped below tolerance before the iteration cap; Iterations is the
// number of power-method steps actually performed.
type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}
