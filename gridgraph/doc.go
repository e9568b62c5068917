// Package gridgraph provides the grid topology a maze is carved from.
//
// What:
//
//   - Cell is an (X, Y) coordinate pair with a total order and "(x, y)" form.
//   - Grid is a Width×Depth rectangle with bounds checks, one-step moves in
//     N, E, S, W order, neighbour lists, and row-major indexing.
//   - Lattice converts the grid into a *core.Graph[Cell] holding every
//     orthogonal link; a maze is a spanning tree of that lattice.
//   - ConnectedComponents groups cells by the edges of any maze graph.
//
// Complexity:
//
//   - Neighbors, Interior, Index, Coordinate: O(1).
//   - Lattice:             O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H + E), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is below one.
//   - ErrOutOfBounds: a cell lies outside the grid.
package gridgraph
