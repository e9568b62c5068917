package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/mazegen/core"
)

// NewGrid constructs a Width×Depth grid.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(1).
func NewGrid(width, depth int) (*Grid, error) {
	if width < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, depth)
	}

	return &Grid{Width: width, Depth: depth}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gr *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gr.Width && c.Y >= 0 && c.Y < gr.Depth
}

// Step moves one cell from c in direction d.
// The boolean is false when the destination is outside the grid.
func (gr *Grid) Step(c Cell, d Direction) (Cell, bool) {
	off := offsets[d]
	n := Cell{X: c.X + off[0], Y: c.Y + off[1]}

	return n, gr.InBounds(n)
}

// North returns the cell above c.
func (gr *Grid) North(c Cell) (Cell, bool) { return gr.Step(c, North) }

// East returns the cell right of c.
func (gr *Grid) East(c Cell) (Cell, bool) { return gr.Step(c, East) }

// South returns the cell below c.
func (gr *Grid) South(c Cell) (Cell, bool) { return gr.Step(c, South) }

// West returns the cell left of c.
func (gr *Grid) West(c Cell) (Cell, bool) { return gr.Step(c, West) }

// Neighbors returns the in-bounds neighbours of c in N, E, S, W order.
// Corners yield 2 cells, edges 3, interior cells 4.
func (gr *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n, ok := gr.Step(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// Interior reports whether all four neighbours of c are inside the grid.
func (gr *Grid) Interior(c Cell) bool {
	for _, d := range Directions {
		if _, ok := gr.Step(c, d); !ok {
			return false
		}
	}

	return true
}

// Adjacent reports whether a and b are orthogonal grid neighbours.
func (gr *Grid) Adjacent(a, b Cell) bool {
	if !gr.InBounds(a) || !gr.InBounds(b) {
		return false
	}
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx+dy*dy == 1
}

// Size returns Width×Depth.
func (gr *Grid) Size() int {
	return gr.Width * gr.Depth
}

// Index maps c to its row-major index: y*Width + x.
// Complexity: O(1).
func (gr *Grid) Index(c Cell) int {
	return c.Y*gr.Width + c.X
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (gr *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % gr.Width, Y: idx / gr.Width}
}

// Cells returns every cell in row-major order.
func (gr *Grid) Cells() []Cell {
	out := make([]Cell, 0, gr.Size())
	for y := 0; y < gr.Depth; y++ {
		for x := 0; x < gr.Width; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}

	return out
}

// Lattice builds the full 4-connected, undirected grid graph with unit costs.
// Every maze over this grid is a subgraph of its lattice.
// Complexity: O(W×H) time and memory.
func (gr *Grid) Lattice() *core.Graph[Cell] {
	g := core.NewGraph[Cell]()
	for _, c := range gr.Cells() {
		g.GetOrInsert(c)
	}
	for _, c := range gr.Cells() {
		for _, n := range gr.Neighbors(c) {
			g.AddEdge(c, n)
		}
	}

	return g
}
