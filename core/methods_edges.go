// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/EdgesOf/Edges/UniqueEdges,
//       adjacency and degree queries, and the edge total order.
// Determinism:
//   - Edges() follows vertex insertion order, then per-vertex insertion order.
//   - UniqueEdges() is sorted by CompareEdges.

package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// AddEdge inserts src→dst, creating missing endpoints. In an undirected
// graph the mirror dst→src is inserted with the same cost.
//
// Self-loops and already present pairs are ignored; AddEdge then reports false.
// Complexity: O(deg(src)).
func (g *Graph[T]) AddEdge(src, dst T, opts ...EdgeOption) bool {
	if src == dst {
		return false
	}
	cost := DefaultCost
	for _, opt := range opts {
		opt(&cost)
	}

	from := g.GetOrInsert(src)
	to := g.GetOrInsert(dst)
	if hasEdgeTo(from.adj, dst) {
		return false
	}

	from.adj = append(from.adj, Edge[T]{From: src, To: dst, Cost: cost})
	to.in++
	if !g.directed && !hasEdgeTo(to.adj, src) {
		to.adj = append(to.adj, Edge[T]{From: dst, To: src, Cost: cost})
		from.in++
	}

	return true
}

// RemoveEdge deletes src→dst (and dst→src when undirected).
// It returns false when the edge is absent.
func (g *Graph[T]) RemoveEdge(src, dst T) bool {
	from, ok := g.vertices[src]
	if !ok || !hasEdgeTo(from.adj, dst) {
		return false
	}
	to := g.vertices[dst]

	from.adj = dropEdgesTo(from.adj, dst)
	to.in--
	if !g.directed && hasEdgeTo(to.adj, src) {
		to.adj = dropEdgesTo(to.adj, src)
		from.in--
	}

	return true
}

// EdgesOf returns the outgoing edges of v. The boolean is false when v is
// absent, which distinguishes it from a present vertex with no edges.
func (g *Graph[T]) EdgesOf(v T) ([]Edge[T], bool) {
	vx, ok := g.vertices[v]
	if !ok {
		return nil, false
	}

	return vx.Edges(), true
}

// Edges returns every stored directed edge; an undirected graph yields both
// directions of each link.
func (g *Graph[T]) Edges() []Edge[T] {
	var out []Edge[T]
	for _, key := range g.order {
		out = append(out, g.vertices[key].adj...)
	}

	return out
}

// UniqueEdges returns the edge set deduplicated by Equal and sorted by
// CompareEdges.
func (g *Graph[T]) UniqueEdges() []Edge[T] {
	out := g.Edges()
	slices.SortStableFunc(out, CompareEdges[T])

	return slices.CompactFunc(out, func(a, b Edge[T]) bool { return a.Equal(b) })
}

// EdgeCount returns the number of stored directed edges.
func (g *Graph[T]) EdgeCount() int {
	n := 0
	for _, vx := range g.vertices {
		n += len(vx.adj)
	}

	return n
}

// IsAdjacent reports whether u has an outgoing edge to v.
func (g *Graph[T]) IsAdjacent(u, v T) bool {
	vx, ok := g.vertices[u]

	return ok && hasEdgeTo(vx.adj, v)
}

// OutDegree returns the number of outgoing edges of v (0 when absent).
func (g *Graph[T]) OutDegree(v T) int {
	if vx, ok := g.vertices[v]; ok {
		return len(vx.adj)
	}

	return 0
}

// InDegree returns the number of incoming edges of v (0 when absent).
func (g *Graph[T]) InDegree(v T) int {
	if vx, ok := g.vertices[v]; ok {
		return vx.in
	}

	return 0
}

// CompareEdges orders edges by ascending cost, then destination, then source.
// Vertex values are ordered by their Compare method when T has one, otherwise
// by natural order for strings and integers, and by their printed form last.
func CompareEdges[T comparable](a, b Edge[T]) int {
	if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
		return c
	}
	if c := CompareValues(a.To, b.To); c != 0 {
		return c
	}

	return CompareValues(a.From, b.From)
}

// CompareValues is the vertex value order used by CompareEdges.
func CompareValues[T comparable](a, b T) int {
	if ca, ok := any(a).(interface{ Compare(T) int }); ok {
		return ca.Compare(b)
	}
	switch av := any(a).(type) {
	case string:
		return cmp.Compare(av, any(b).(string))
	case int:
		return cmp.Compare(av, any(b).(int))
	case int64:
		return cmp.Compare(av, any(b).(int64))
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func hasEdgeTo[T comparable](adj []Edge[T], to T) bool {
	for _, e := range adj {
		if e.To == to {
			return true
		}
	}

	return false
}
