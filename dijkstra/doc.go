// Package dijkstra computes single-source shortest paths on a core.Graph and
// extracts the path to one destination as its own directed graph.
//
// Overview:
//
//   - Dijkstra writes Dist, Prev and Finalized onto the graph's vertices.
//     It clears them first, so every run starts from a clean slate.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//     Stale entries are skipped on pop (lazy decrease-key).
//   - Relaxation is strict: a vertex keeps the first predecessor that achieves
//     its distance.
//   - ExtractPath follows Prev links from a destination back to the source and
//     rebuilds them root-to-leaf into a fresh directed graph.
//
// In a maze every edge has cost 1 and the maze is a tree, so the extracted path
// is the unique route between start and finish and its edge count equals the
// finish vertex's Dist.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *core.Graph.
//   - ErrNoSource:       Dijkstra called without Source.
//   - ErrVertexNotFound: source or destination is not in the graph.
//   - ErrNegativeCost:   any edge has a negative cost (O(E) pre-scan).
//   - ErrUnreachable:    ExtractPath on a destination the last run did not reach.
//
// Thread safety:
//
//   - Dijkstra mutates vertex scratch state and must not run concurrently with
//     any other access to the same graph.
package dijkstra
