// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph keeps adjacency lists in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Uses
//
//	The verify package walks a finished maze from its start cell to prove
//	every cell is reachable; the CLI reports the cell farthest from the start.
//
// Complexity
//
//	O(V + E) time, O(V) memory.
package bfs
