// Package verify checks the structural guarantees of a generated maze.
//
// SpanningTree confirms the maze graph is a spanning tree of the grid lattice,
// SolutionPath confirms a solution is a simple start→finish walk over maze
// passages, and CrossCheck recomputes the shortest path with an independent
// graph library and compares.
//
// Errors:
//
//	ErrNotSpanning  - a grid cell is missing, or the graph has the wrong size.
//	ErrNotAdjacent  - an edge joins cells that are not lattice neighbours.
//	ErrCycle        - an edge closes a cycle.
//	ErrDisconnected - some cell is unreachable from the rest.
//	ErrBadDegree    - a cell has degree outside [1, 4].
//	ErrBadPath      - the solution is not a simple start→finish walk.
//	ErrMismatch     - two computations of the same path disagree.
package verify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/maze"
)

var (
	ErrNotSpanning  = errors.New("verify: graph does not span the grid")
	ErrNotAdjacent  = errors.New("verify: edge joins non-adjacent cells")
	ErrCycle        = errors.New("verify: cycle detected")
	ErrDisconnected = errors.New("verify: graph is disconnected")
	ErrBadDegree    = errors.New("verify: degree out of range")
	ErrBadPath      = errors.New("verify: invalid solution path")
	ErrMismatch     = errors.New("verify: results disagree")
)

type Cell = gridgraph.Cell

// SpanningTree returns nil iff g is an undirected spanning tree of grid whose
// edges all join lattice neighbours.
//
// Steps:
//  1. Every grid cell is a vertex and nothing else is.
//  2. Every stored edge joins lattice neighbours and has its mirror.
//  3. Union-find over the edges finds no cycle.
//  4. BFS from the first cell reaches every cell.
//  5. Degrees lie in [1, 4].
//
// Complexity: O(W·H·α(W·H)).
func SpanningTree(grid *gridgraph.Grid, g *core.Graph[Cell]) error {
	if grid == nil || g == nil {
		return fmt.Errorf("%w: nil input", ErrNotSpanning)
	}
	if g.Directed() {
		return fmt.Errorf("%w: graph is directed", ErrNotSpanning)
	}

	// 1) Vertex set.
	cells := grid.Cells()
	if g.VertexCount() != len(cells) {
		return fmt.Errorf("%w: %d vertices for %d cells", ErrNotSpanning, g.VertexCount(), len(cells))
	}
	for _, c := range cells {
		if !g.Contains(c) {
			return fmt.Errorf("%w: missing %v", ErrNotSpanning, c)
		}
	}

	// 2) Edges.
	lattice := grid.Lattice()
	for _, e := range g.Edges() {
		if !lattice.IsAdjacent(e.From, e.To) {
			return fmt.Errorf("%w: %v-%v", ErrNotAdjacent, e.From, e.To)
		}
		if !g.IsAdjacent(e.To, e.From) {
			return fmt.Errorf("%w: %v-%v has no mirror", ErrNotSpanning, e.From, e.To)
		}
	}

	// 3) Cycles.
	sets := newDSU(cells)
	for _, e := range g.UniqueEdges() {
		if e.From.Compare(e.To) > 0 {
			continue
		}
		if !sets.union(e.From, e.To) {
			return fmt.Errorf("%w: closing edge %v-%v", ErrCycle, e.From, e.To)
		}
	}

	// 4) Connectivity.
	res, err := bfs.BFS(g, cells[0])
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if len(res.Order) != len(cells) {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, len(res.Order), len(cells))
	}

	// 5) Degrees.
	for _, c := range cells {
		if d := g.OutDegree(c); d < 1 || d > 4 {
			return fmt.Errorf("%w: %v has degree %d", ErrBadDegree, c, d)
		}
	}

	return nil
}

// SolutionPath returns nil iff sol is a directed simple path that starts at
// start, ends at finish, and uses only passages of g.
func SolutionPath(g, sol *core.Graph[Cell], start, finish Cell) error {
	if g == nil || sol == nil {
		return fmt.Errorf("%w: nil input", ErrBadPath)
	}
	path := sol.Values()
	if len(path) == 0 || path[0] != start || path[len(path)-1] != finish {
		return fmt.Errorf("%w: endpoints %v", ErrBadPath, path)
	}
	if sol.InDegree(start) != 0 || sol.OutDegree(finish) != 0 {
		return fmt.Errorf("%w: path does not run start→finish", ErrBadPath)
	}
	if sol.EdgeCount() != len(path)-1 {
		return fmt.Errorf("%w: %d edges for %d cells", ErrBadPath, sol.EdgeCount(), len(path))
	}
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if !sol.IsAdjacent(u, v) {
			return fmt.Errorf("%w: missing step %v→%v", ErrBadPath, u, v)
		}
		if !g.IsAdjacent(u, v) {
			return fmt.Errorf("%w: step %v→%v crosses a wall", ErrBadPath, u, v)
		}
	}

	return nil
}

// Result runs every check on a finished maze: the spanning tree, the
// solution path, the generation-time tracked path when present, the
// reported distance, and an independent shortest-path recomputation.
func Result(res *maze.Result) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrNotSpanning)
	}
	if err := SpanningTree(res.Grid, res.Graph); err != nil {
		return err
	}
	if err := SolutionPath(res.Graph, res.Solution, res.Start, res.Finish); err != nil {
		return err
	}
	path := res.Path()
	if res.Tracked != nil {
		if err := SolutionPath(res.Graph, res.Tracked, res.Start, res.Finish); err != nil {
			return fmt.Errorf("tracked: %w", err)
		}
		if !slices.Equal(path, res.Tracked.Values()) {
			return fmt.Errorf("%w: tracked path differs from solution", ErrMismatch)
		}
	}
	if res.Distance != float64(len(path)-1) {
		return fmt.Errorf("%w: distance %v for %d steps", ErrMismatch, res.Distance, len(path)-1)
	}

	return CrossCheck(res.Graph, res.Start, res.Finish, path)
}
