// betweenness.go implements Brandes' algorithm: one single-source
// shortest-path stage per node (BFS or Dijkstra), then a dependency
// accumulation pass over the shortest-path DAG in non-increasing distance
// order.

package betweenness

import (
	"container/heap"
	"math"

	"github.com/netmetrics/netmetrics/core"
)

// Compute returns the betweenness centrality of every node, aligned to the
// canonical node order 0..N-1.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Weighted graphs must carry no negative arc weight (ErrNegativeWeight);
//     the check is O(1) thanks to the flag core maintains incrementally.
//
// Complexity:
//
//   - Time:  O(V·E) unweighted, O(V·(E + V log V)) weighted
//   - Space: O(V + E)
func Compute(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.Weighted() && g.HasNegativeWeight() {
		return nil, ErrNegativeWeight
	}

	n := g.NodeCount()
	cb := make([]float64, n)
	if n == 0 {
		return cb, nil
	}

	// Single-source state, reused across sources to avoid reallocation.
	st := newSourceState(n)
	for s := 0; s < n; s++ {
		if g.Weighted() {
			st.dijkstra(g, s)
		} else {
			st.bfs(g, s)
		}
		st.accumulate(s, cb)
	}

	// Normalize by the number of ordered (s,t) pairs a node can mediate.
	if o.Normalized && n > 2 {
		scale := 1.0 / (float64(n-1) * float64(n-2))
		for v := range cb {
			cb[v] *= scale
		}
	}

	return cb, nil
}

// sourceState holds the per-source Brandes bookkeeping: path counts σ,
// predecessor lists, distances, and the finalization order.
type sourceState struct {
	sigma []float64 // σ[v]: number of shortest s→v paths
	dist  []float64 // shortest distance from s (math.Inf(1) if unreachable)
	preds [][]int   // predecessors of v on shortest s→v paths
	order []int     // vertices in non-decreasing finalized distance
	delta []float64 // dependency accumulator
	seen  []bool    // finalized flag (Dijkstra) / enqueued flag (BFS)
}

func newSourceState(n int) *sourceState {
	return &sourceState{
		sigma: make([]float64, n),
		dist:  make([]float64, n),
		preds: make([][]int, n),
		order: make([]int, 0, n),
		delta: make([]float64, n),
		seen:  make([]bool, n),
	}
}

// reset prepares the state for a new source s.
func (st *sourceState) reset(s int) {
	for v := range st.sigma {
		st.sigma[v] = 0
		st.dist[v] = math.Inf(1)
		st.preds[v] = st.preds[v][:0]
		st.delta[v] = 0
		st.seen[v] = false
	}
	st.order = st.order[:0]
	st.sigma[s] = 1
	st.dist[s] = 0
}

// bfs runs the unweighted shortest-path stage from s, counting paths per
// arc so that parallel arcs yield distinct shortest paths.
func (st *sourceState) bfs(g *core.Graph, s int) {
	st.reset(s)

	queue := append(st.order[:0:0], s) // fresh queue, order stays separate
	st.seen[s] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		st.order = append(st.order, v)

		nd := st.dist[v] + 1
		for _, a := range g.OutArcs(v) {
			w := a.To
			if !st.seen[w] {
				st.seen[w] = true
				st.dist[w] = nd
				queue = append(queue, w)
			}
			// Count this arc as a shortest path iff it advances one level.
			if st.dist[w] == nd {
				st.sigma[w] += st.sigma[v]
				st.preds[w] = append(st.preds[w], v)
			}
		}
	}
}

// dijkstra runs the weighted shortest-path stage from s using the
// lazy-decrease-key strategy: shorter candidates are pushed as duplicates
// and stale entries are skipped when popped.
func (st *sourceState) dijkstra(g *core.Graph, s int) {
	st.reset(s)

	pq := nodePQ{{id: s, dist: 0}}
	heap.Init(&pq)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		v := item.id
		if st.seen[v] {
			continue // stale heap entry
		}
		st.seen[v] = true
		st.order = append(st.order, v)

		for _, a := range g.OutArcs(v) {
			w := a.To
			nd := item.dist + a.Weight
			switch {
			case nd < st.dist[w]:
				// Strictly shorter path: restart the count for w.
				st.dist[w] = nd
				st.sigma[w] = st.sigma[v]
				st.preds[w] = append(st.preds[w][:0], v)
				heap.Push(&pq, &nodeItem{id: w, dist: nd})
			case nd == st.dist[w] && !st.seen[w]:
				// Equal-length alternative through v.
				st.sigma[w] += st.sigma[v]
				st.preds[w] = append(st.preds[w], v)
			}
		}
	}
}

// accumulate walks the finalization order backwards (non-increasing
// distance) and folds dependency scores into cb, skipping the source.
func (st *sourceState) accumulate(s int, cb []float64) {
	for i := len(st.order) - 1; i >= 0; i-- {
		w := st.order[i]
		coeff := (1 + st.delta[w]) / st.sigma[w]
		for _, u := range st.preds[w] {
			st.delta[u] += st.sigma[u] * coeff
		}
		if w != s {
			cb[w] += st.delta[w]
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: outdated entries remain in the heap and
// are ignored when popped (checked via seen).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
