// Package dijkstra implements Dijkstra's shortest-path algorithm over
// core.Graph, writing results into the vertices' Dist, Prev and Finalized
// fields.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative costs and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The loop ends once |V| vertices are finalized, even if stale entries remain queued.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/mazegen/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every reachable vertex of g and records them on the vertices:
//
//   - Dist:      minimum distance (core.Infinity if unreachable).
//   - Prev:      predecessor on the shortest-path tree (absent for the source
//     and for unreachable vertices).
//   - Finalized: true for every vertex whose Dist is final.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. A Source option must be given (ErrNoSource).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative cost (ErrNegativeCost).
//
// Cancellation: ctx is checked once per heap pop; ctx.Err() is returned as is.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[T comparable](ctx context.Context, g *core.Graph[T], opts ...Option[T]) error {
	// 1) Build Options
	var cfg Options[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return ErrNilGraph
	}
	if !cfg.hasSource {
		return ErrNoSource
	}
	if !g.Contains(cfg.Source) {
		return fmt.Errorf("%w: source %v", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative costs.
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%g", ErrNegativeCost, e.From, e.To, e.Cost)
		}
	}

	// 4) Run.
	r := &runner[T]{
		ctx: ctx,
		g:   g,
		pq:  make(nodePQ[T], 0, g.VertexCount()),
	}
	r.init(cfg.Source)

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	ctx       context.Context
	g         *core.Graph[T]
	pq        nodePQ[T] // Min-heap of *nodeItem for lazy priority queue.
	seq       uint64    // push counter; tie-breaks equal distances in FIFO order
	finalized int
}

// init clears scratch state on every vertex and pushes Source=0 into the heap.
func (r *runner[T]) init(source T) {
	// 1) Dist = +∞, no Prev, not finalized, for every vertex.
	r.g.ClearAll()

	// 2) Distance to the source is zero.
	src, _ := r.g.Find(source)
	src.Dist = 0

	// 3) Seed the heap.
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process is the core loop. It repeatedly extracts the vertex with the minimum
// distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - |V| vertices are finalized.
//   - ctx is done.
func (r *runner[T]) process() error {
	total := r.g.VertexCount()
	for r.pq.Len() > 0 && r.finalized < total {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u, _ := r.g.Find(item.value)

		// 2) Skip stale entries for vertices already finalized.
		if u.Finalized {
			continue
		}

		// 3) Its shortest distance is now final.
		u.Finalized = true
		r.finalized++

		// 4) Relax all outgoing edges.
		r.relax(u)
	}

	return nil
}

// relax examines each edge outgoing from u and improves distances to its
// neighbours. Strict improvement only: equal-distance alternatives keep the
// first predecessor found.
func (r *runner[T]) relax(u *core.Vertex[T]) {
	for _, e := range u.Edges() {
		v, _ := r.g.Find(e.To)
		if v.Finalized {
			continue
		}
		newDist := u.Dist + e.Cost
		if newDist >= v.Dist {
			continue
		}
		v.Dist = newDist
		v.SetPrev(u.Value)
		r.push(v.Value, newDist)
	}
}

func (r *runner[T]) push(v T, dist float64) {
	heap.Push(&r.pq, &nodeItem[T]{value: v, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[T comparable] struct {
	value T
	dist  float64
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ[T comparable] []*nodeItem[T]

// Len returns the number of items in the heap.
func (pq nodePQ[T]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
