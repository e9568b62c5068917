// Package core provides the small generic graph every maze stage shares.
//
// A Graph[T] maps vertex values of any comparable type T to vertices holding an
// adjacency list of outgoing edges. The graph is either undirected (every
// AddEdge stores both directions with equal cost) or directed, fixed at
// construction:
//
//	g := core.NewGraph[string]()                     // undirected maze graph
//	sol := core.NewGraph[string](core.WithDirected()) // solution path
//
// Behavior:
//
//   - Vertices are created lazily by AddEdge or explicitly by GetOrInsert;
//     Find never creates.
//   - Self-loops and duplicate pairs are ignored by AddEdge.
//   - Iteration (Values, Vertices, Edges) follows insertion order, so a graph
//     built by a seeded generator renders identically on every run.
//   - Each vertex carries shortest-path scratch state (Dist, Prev, Finalized).
//     ClearAll resets it; the dijkstra package writes it.
//   - Edges are equal when they join the same ordered pair; CompareEdges gives
//     the total order (cost, destination, source).
//
// Core Methods:
//
//	// Vertex lifecycle
//	GetOrInsert(v T) *Vertex[T]          // O(1)
//	Find(v T) (*Vertex[T], bool)         // O(1)
//	RemoveVertex(v T) bool               // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(src, dst T, opts ...EdgeOption) bool // O(deg)
//	RemoveEdge(src, dst T) bool                  // O(deg)
//
//	// Queries
//	EdgesOf(v T) ([]Edge[T], bool)
//	Edges() / UniqueEdges() / EdgeCount()
//	IsAdjacent(u, v T) bool
//	OutDegree(v T) / InDegree(v T)
//
// Graph is not safe for concurrent use. A maze run owns its graphs for the
// whole pipeline and never shares them across goroutines.
package core
