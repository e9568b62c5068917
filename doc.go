// Package mazegen generates rectangular grid mazes as spanning trees, solves
// them with Dijkstra, and draws them as ASCII or images.
//
// What is mazegen?
//
//	A small set of packages layered from graph primitives up to a CLI:
//		• core       generic graph with per-vertex distance and predecessor
//		• gridgraph  cell coordinates, lattice neighbours, components
//		• maze       Prim, horizontal Prim, backtracker and recursive DFS
//		             carves with an ordered event stream
//		• dijkstra   single-source shortest paths and path extraction
//		• bfs        unweighted traversal (farthest cell, connectivity)
//		• render     ASCII and raster drawing
//		• verify     spanning-tree and solution checks
//		• config     HCL run files
//
// Quick example:
//
//	m, _ := maze.New(maze.WithSize(20, 10), maze.WithSeed(42))
//	res, _ := m.Generate(ctx, maze.PrimHorizontal)
//	fmt.Print(res.Render(true))
//
// The cmd/mazegen binary wraps the same pipeline:
//
//	go run ./cmd/mazegen gen --width 20 --height 10 --solution
package mazegen
