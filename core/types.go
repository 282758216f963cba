// Package core defines the directed Graph consumed by every centrality
// algorithm in netmetrics, together with its construction options and
// sentinel errors.
//
// A Graph lives in a dense, zero-based node index space 0..N-1: indices are
// contiguous and none may be skipped, so every algorithm can emit its output
// as a plain slice aligned to that canonical order. Self-loops and parallel
// arcs are always permitted. Weights are optional: an unweighted graph
// reports unit weight (1.0) on every arc.
//
// Lifecycle: a Graph is constructed once, populated with AddEdge, and then
// frozen for the duration of metric computation. After Freeze, mutation
// fails with ErrFrozenGraph; read accessors need no synchronization because
// no writer exists.
//
// This file declares Arc, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrBadNodeCount     - negative node count passed to NewGraph.
//	ErrVertexOutOfRange - an edge references a node index outside [0, N).
//	ErrBadWeight        - non-zero weight provided to an unweighted graph.
//	ErrFrozenGraph      - mutation attempted after Freeze.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrBadNodeCount indicates a negative node count passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrFrozenGraph indicates a mutation attempted after Freeze.
	ErrFrozenGraph = errors.New("core: graph is frozen")
)

// unitWeight is the weight reported for every arc of an unweighted graph.
const unitWeight = 1.0

// Arc is one directed connection to a neighboring node.
//
// Arcs are stored per tail node; parallel arcs appear as separate entries.
type Arc struct {
	// To is the head node index.
	To int

	// Weight is the arc weight (unitWeight on unweighted graphs).
	Weight float64
}

// GraphOption configures behavior of a Graph before construction.
type GraphOption func(g *Graph)

// WithWeighted allows caller-supplied arc weights.
// Negative weights are accepted at construction; algorithms that require
// non-negative weights reject them with their own sentinel errors.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory directed multigraph shared by all algorithms.
//
// Node indices are dense and fixed at construction; arcs are appended with
// AddEdge. Out- and in-adjacency are both materialized so that every
// algorithm has O(1) amortized access to the neighbor lists it needs.
type Graph struct {
	// Configuration flags
	weighted bool // allow non-unit weights
	frozen   bool // true once Freeze was called

	// Storage
	edgeCount int     // number of arcs added so far
	hasNeg    bool    // true if any arc has a negative weight
	out       [][]Arc // out[u] = arcs u→v
	in        [][]Arc // in[v] = arcs u→v, keyed by head
}

// NewGraph creates a Graph with n nodes (indices 0..n-1) and no arcs.
// n may be zero; a zero-node graph is valid and yields empty metric vectors.
// Returns ErrBadNodeCount if n is negative.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadNodeCount
	}
	g := &Graph{
		out: make([][]Arc, n),
		in:  make([][]Arc, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
