// Package betweenness defines options and sentinel errors for Brandes'
// betweenness centrality.
package betweenness

import "errors"

// Sentinel errors for betweenness execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("betweenness: graph is nil")

	// ErrNegativeWeight is returned when a weighted graph carries a negative
	// arc weight; shortest-path accumulation requires non-negative weights.
	ErrNegativeWeight = errors.New("betweenness: negative edge weight encountered")
)

// Options configures betweenness computation.
//
// Normalized – divide each score by (N−1)(N−2), the directed pair count.
// Default true; a no-op for graphs with fewer than three nodes.
type Options struct {
	Normalized bool
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// DefaultOptions returns Options with normalization enabled.
func DefaultOptions() Options {
	return Options{Normalized: true}
}

// WithNormalized toggles the (N−1)(N−2) normalization.
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}
