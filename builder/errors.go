// SPDX-License-Identifier: MIT
// Package: netmetrics/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w wrapping.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the allowed minimum for
// the requested topology (Path/Cycle/Star/Complete minima are documented per
// factory).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. Covers RandomSparse(p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")
