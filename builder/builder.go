// SPDX-License-Identifier: MIT
// Package: netmetrics/builder
//
// builder.go — implementations of the topology factories.
//
// Contract (all factories):
//   - Validate parameters early; return sentinel errors, never panic.
//   - Emit vertices as the dense index space 0..n-1 and arcs in a stable,
//     documented order.
//   - Weight policy: weight 1.0 on weighted graphs, unit weight otherwise.
//
// Determinism:
//   - Deterministic arc emission order per factory.
//   - RandomSparse is deterministic for a fixed seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/netmetrics/netmetrics/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodSparse   = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 2
	minStarNodes     = 2
	minCompleteNodes = 1
)

// edgeWeight returns the weight to pass to AddEdge for graph g:
// 1.0 on weighted graphs, 0 (stored as unit weight) otherwise.
func edgeWeight(g *core.Graph) float64 {
	if g.Weighted() {
		return 1.0
	}

	return 0
}

// newGraph allocates the n-node graph for a factory, wrapping constructor
// failures with the factory name.
func newGraph(method string, n int, opts []core.GraphOption) (*core.Graph, error) {
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: NewGraph(%d): %w", method, n, err)
	}

	return g, nil
}

// Path builds the directed path P_n: arcs i→i+1 for i=0..n-2.
// Node n-1 is a dangling sink, node 0 has no in-arcs.
// Requires n ≥ 2 (ErrTooFewVertices).
// Complexity: O(n).
func Path(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	g, err := newGraph(methodPath, n, opts)
	if err != nil {
		return nil, err
	}

	w := edgeWeight(g)
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i-1, i, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodPath, i-1, i, err)
		}
	}

	return g, nil
}

// Cycle builds the directed cycle C_n: arcs i→(i+1) mod n for i=0..n-1.
// Every node has in-degree and out-degree exactly 1.
// Requires n ≥ 2 (ErrTooFewVertices).
// Complexity: O(n).
func Cycle(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	g, err := newGraph(methodCycle, n, opts)
	if err != nil {
		return nil, err
	}

	w := edgeWeight(g)
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Star builds the directed out-star S_n: node 0 is the hub with arcs 0→i for
// i=1..n-1. The leaves are pure authorities (no out-arcs), the hub a pure
// hub (no in-arcs).
// Requires n ≥ 2 (ErrTooFewVertices).
// Complexity: O(n).
func Star(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	g, err := newGraph(methodStar, n, opts)
	if err != nil {
		return nil, err
	}

	w := edgeWeight(g)
	for i := 1; i < n; i++ {
		if err = g.AddEdge(0, i, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0→%d): %w", methodStar, i, err)
		}
	}

	return g, nil
}

// Complete builds the complete directed graph K_n: arcs u→v for every
// ordered pair u ≠ v, emitted in row-major order.
// Requires n ≥ 1 (ErrTooFewVertices).
// Complexity: O(n²).
func Complete(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	g, err := newGraph(methodComplete, n, opts)
	if err != nil {
		return nil, err
	}

	w := edgeWeight(g)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err = g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, u, v, err)
			}
		}
	}

	return g, nil
}

// RandomSparse builds an Erdős–Rényi-like directed graph: every ordered pair
// u ≠ v receives an arc independently with probability p, scanned in
// row-major order with a private RNG seeded by seed.
// Deterministic for fixed (n, p, seed).
// Requires n ≥ 1 (ErrTooFewVertices) and 0 ≤ p ≤ 1 (ErrInvalidProbability).
// Complexity: O(n²).
func RandomSparse(n int, p float64, seed int64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minCompleteNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodSparse, p, ErrInvalidProbability)
	}
	g, err := newGraph(methodSparse, n, opts)
	if err != nil {
		return nil, err
	}

	// Private RNG: determinism must not depend on the global rand state.
	rng := rand.New(rand.NewSource(seed))
	w := edgeWeight(g)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodSparse, u, v, err)
			}
		}
	}

	return g, nil
}
