// Package closeness computes closeness centrality over a directed
// core.Graph with the Wasserman–Faust correction for disconnected graphs.
//
// For a node v that reaches r(v) nodes (itself included) with total
// shortest-path distance S(v) to the others:
//
//	closeness(v) = ((r−1)/(N−1)) · ((r−1)/S)
//
// The leading factor scales the classic inverse-farness by the fraction of
// the graph actually reachable, so scores of nodes in different components
// stay comparable. A node that reaches nothing beyond itself (an isolated
// node or a pure sink) gets closeness exactly 0; the division by zero is
// special-cased away, never returned as NaN.
//
// Distances come from a BFS stage on unweighted graphs and a binary-heap
// Dijkstra stage on weighted ones; negative arc weights are rejected with
// ErrNegativeWeight.
package closeness

import (
	"container/heap"
	"errors"
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// Sentinel errors for closeness execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("closeness: graph is nil")

	// ErrNegativeWeight is returned when a weighted graph carries a negative
	// arc weight; shortest paths require non-negative weights.
	ErrNegativeWeight = errors.New("closeness: negative edge weight encountered")
)

// Compute returns the Wasserman–Faust closeness of every node, aligned to
// the canonical node order 0..N-1.
//
// Complexity:
//
//   - Time:  O(V·E) unweighted, O(V·(E + V log V)) weighted
//   - Space: O(V)
func Compute(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Weighted() && g.HasNegativeWeight() {
		return nil, ErrNegativeWeight
	}

	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		// A single node (or none) has no one to be close to.
		return scores, nil
	}

	dist := make([]float64, n)
	for s := 0; s < n; s++ {
		if g.Weighted() {
			dijkstraDist(g, s, dist)
		} else {
			bfsDist(g, s, dist)
		}

		// Fold distances into reach count and total farness.
		var (
			reached int
			total   float64
		)
		for v := 0; v < n; v++ {
			if math.IsInf(dist[v], 1) {
				continue
			}
			reached++
			total += dist[v] // dist[s] == 0 contributes nothing
		}
		if reached <= 1 || total <= 0 {
			continue // sink or isolated node: closeness stays 0
		}

		r := float64(reached - 1)
		scores[s] = (r / float64(n-1)) * (r / total)
	}

	return scores, nil
}

// bfsDist fills dist with unweighted shortest-path distances from s,
// math.Inf(1) for unreachable nodes.
func bfsDist(g *core.Graph, s int, dist []float64) {
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[s] = 0

	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nd := dist[v] + 1
		for _, a := range g.OutArcs(v) {
			if nd < dist[a.To] {
				dist[a.To] = nd
				queue = append(queue, a.To)
			}
		}
	}
}

// dijkstraDist fills dist with weighted shortest-path distances from s,
// using the same lazy-decrease-key heap strategy as the betweenness stage.
func dijkstraDist(g *core.Graph, s int, dist []float64) {
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[s] = 0

	pq := distPQ{{id: s, dist: 0}}
	heap.Init(&pq)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		if item.dist > dist[item.id] {
			continue // stale entry
		}
		for _, a := range g.OutArcs(item.id) {
			if nd := item.dist + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(&pq, &distItem{id: a.To, dist: nd})
			}
		}
	}
}

// distItem pairs a vertex with its tentative distance from the source.
type distItem struct {
	id   int
	dist float64
}

// distPQ is a min-heap of *distItem ordered by dist ascending.
type distPQ []*distItem

func (pq distPQ) Len() int           { return len(pq) }
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *distItem.
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
