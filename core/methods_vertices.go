// File: methods_vertices.go
// Role: Vertex lifecycle & queries: GetOrInsert/Find/Contains/RemoveVertex,
//       Values/Vertices/VertexCount and the ClearAll scratch reset.
// Determinism:
//   - Values() and Vertices() return vertices in insertion order.

package core

// GetOrInsert returns the vertex for v, creating it when absent.
// This is the only vertex-creating call besides AddEdge.
// Complexity: O(1) amortized.
func (g *Graph[T]) GetOrInsert(v T) *Vertex[T] {
	if vx, ok := g.vertices[v]; ok {
		return vx
	}
	vx := &Vertex[T]{Value: v}
	vx.reset()
	g.vertices[v] = vx
	g.order = append(g.order, v)

	return vx
}

// Find looks v up without creating it.
// Complexity: O(1).
func (g *Graph[T]) Find(v T) (*Vertex[T], bool) {
	vx, ok := g.vertices[v]

	return vx, ok
}

// Contains reports whether v is a vertex of g.
func (g *Graph[T]) Contains(v T) bool {
	_, ok := g.vertices[v]

	return ok
}

// RemoveVertex deletes v together with every edge touching it.
// It returns false when v is absent.
//
// Steps:
//  1. Drop each outgoing edge, decrementing in-degrees of targets.
//  2. Drop each incoming edge from its source adjacency list.
//  3. Remove v from the map and the insertion order.
//
// Complexity: O(V + E).
func (g *Graph[T]) RemoveVertex(v T) bool {
	vx, ok := g.vertices[v]
	if !ok {
		return false
	}

	// 1) Outgoing edges.
	for _, e := range vx.adj {
		if to, ok := g.vertices[e.To]; ok {
			to.in--
		}
	}
	vx.adj = nil

	// 2) Incoming edges.
	if vx.in > 0 {
		for _, key := range g.order {
			src := g.vertices[key]
			src.adj = dropEdgesTo(src.adj, v)
		}
	}

	// 3) Identity.
	delete(g.vertices, v)
	for i, key := range g.order {
		if key == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// Values returns vertex values in insertion order.
func (g *Graph[T]) Values() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// Vertices returns vertices in insertion order.
func (g *Graph[T]) Vertices() []*Vertex[T] {
	out := make([]*Vertex[T], 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.vertices[key])
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int {
	return len(g.order)
}

// ClearAll resets Dist, Prev and Finalized on every vertex.
// Structure is untouched.
func (g *Graph[T]) ClearAll() {
	for _, vx := range g.vertices {
		vx.reset()
	}
}

func dropEdgesTo[T comparable](adj []Edge[T], to T) []Edge[T] {
	kept := adj[:0]
	for _, e := range adj {
		if e.To != to {
			kept = append(kept, e)
		}
	}

	return kept
}
