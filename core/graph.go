// graph.go implements mutation and read accessors for Graph.
//
// Mutation (AddEdge, Freeze) is single-writer by contract; read accessors
// are safe for concurrent use once the graph is frozen.

package core

import "fmt"

// NodeCount returns N, the size of the dense node index space.
func (g *Graph) NodeCount() int { return len(g.out) }

// EdgeCount returns the number of arcs added so far.
// Parallel arcs and self-loops each count once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Weighted reports whether the graph carries caller-supplied weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// HasNegativeWeight reports whether any arc carries a negative weight.
// Maintained incrementally, so shortest-path algorithms can fail fast
// without rescanning the arc set.
func (g *Graph) HasNegativeWeight() bool { return g.hasNeg }

// Freeze marks the graph immutable. Subsequent AddEdge calls fail with
// ErrFrozenGraph. Freeze is idempotent.
func (g *Graph) Freeze() { g.frozen = true }

// AddEdge appends the directed arc u→v with weight w.
//
// Validation (in order):
//  1. The graph must not be frozen (ErrFrozenGraph).
//  2. u and v must lie in [0, N) (ErrVertexOutOfRange).
//  3. On an unweighted graph w must be 0; the arc is stored with unit
//     weight (ErrBadWeight otherwise).
//
// Self-loops (u == v) and parallel arcs are always permitted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if g.frozen {
		return ErrFrozenGraph
	}
	n := len(g.out)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: tail %d with %d nodes", ErrVertexOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: head %d with %d nodes", ErrVertexOutOfRange, v, n)
	}
	if !g.weighted {
		if w != 0 {
			return fmt.Errorf("%w: weight=%g on edge %d→%d", ErrBadWeight, w, u, v)
		}
		w = unitWeight
	}
	if w < 0 {
		g.hasNeg = true
	}

	g.out[u] = append(g.out[u], Arc{To: v, Weight: w})
	g.in[v] = append(g.in[v], Arc{To: u, Weight: w})
	g.edgeCount++

	return nil
}

// OutArcs returns the arcs leaving v, in insertion order.
// The returned slice is shared with the graph and must not be mutated.
// Returns nil for an out-of-range index.
func (g *Graph) OutArcs(v int) []Arc {
	if v < 0 || v >= len(g.out) {
		return nil
	}

	return g.out[v]
}

// InArcs returns the arcs entering v; Arc.To holds the tail node.
// The returned slice is shared with the graph and must not be mutated.
// Returns nil for an out-of-range index.
func (g *Graph) InArcs(v int) []Arc {
	if v < 0 || v >= len(g.in) {
		return nil
	}

	return g.in[v]
}

// OutDegree returns the number of arcs leaving v (self-loops and parallel
// arcs included), or 0 for an out-of-range index.
func (g *Graph) OutDegree(v int) int { return len(g.OutArcs(v)) }

// InDegree returns the number of arcs entering v, or 0 for an out-of-range
// index.
func (g *Graph) InDegree(v int) int { return len(g.InArcs(v)) }

// OutStrength returns the sum of weights on arcs leaving v.
// On unweighted graphs this equals OutDegree(v). Random-walk metrics use
// it to split a node's mass across its out-neighbors.
func (g *Graph) OutStrength(v int) float64 {
	var s float64
	for _, a := range g.OutArcs(v) {
		s += a.Weight
	}

	return s
}
