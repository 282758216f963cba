// Package spectral defines shared options, result types and sentinel errors
// for the power-iteration centrality scores.
package spectral

import (
	"errors"
	"fmt"
)

// Sentinel errors for spectral execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spectral: invalid option supplied")
)

// Default tuning knobs shared by the three algorithms.
const (
	// DefaultTolerance is the L1 convergence threshold between iterates.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps every power-iteration loop.
	DefaultMaxIterations = 100

	// DefaultAlpha is the conservative Katz attenuation factor; it
	// guarantees convergence whenever the spectral radius is below 10.
	DefaultAlpha = 0.1

	// DefaultBeta is the Katz baseline score every node receives.
	DefaultBeta = 1.0
)

// Options holds the tuning knobs of the spectral algorithms.
// Alpha and Beta apply to Katz only and are ignored elsewhere.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Alpha         float64
	Beta          float64

	// internal error recorded during option parsing
	err error
}

// Option configures spectral behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the algorithm is invoked.
type Option func(*Options)

// DefaultOptions returns Options with the documented defaults:
// Tolerance 1e-8, MaxIterations 100, Alpha 0.1, Beta 1.0.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
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

// WithAlpha sets the Katz attenuation factor α. Must be positive; values
// at or above 1/spectral-radius diverge, which the Converged flag reports.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 {
			o.err = fmt.Errorf("%w: alpha must be positive, got %g", ErrOptionViolation, a)

			return
		}
		o.Alpha = a
	}
}

// WithBeta sets the Katz baseline β added to every node each iteration.
func WithBeta(b float64) Option {
	return func(o *Options) { o.Beta = b }
}

// resolve folds opts over the defaults and returns the recorded option
// error, if any.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of an eigenvector or Katz run: the score vector in
// canonical node order, the number of iterations performed, and whether the
// tolerance was met before the cap.
type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// HITSResult is the outcome of a HITS run: the hub and authority vectors in
// canonical node order, plus the shared iteration/convergence bookkeeping.
type HITSResult struct {
	Hub        []float64
	Authority  []float64
	Iterations int
	Converged  bool
}
