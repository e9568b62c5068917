package render

import (
	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
)

// Glyph is one two-character slot of the text layout.
type Glyph int

const (
	Wall     Glyph = iota // "X "
	Path                  // "V "  carved cell
	Padding               // "  "  open passage or blank cell
	Solution              // "+ "  cell on the solution path
)

var glyphText = [...]string{
	Wall:     "X ",
	Path:     "V ",
	Padding:  "  ",
	Solution: "+ ",
}

func (g Glyph) String() string {
	return glyphText[g]
}

// Scene is everything needed to draw a maze. Solution may be nil.
type Scene struct {
	Grid          *gridgraph.Grid
	Start, Finish gridgraph.Cell
	Graph         *core.Graph[gridgraph.Cell]
	Solution      *core.Graph[gridgraph.Cell]
}

// Layout lays the scene out as (2·Depth+1) rows of (2·Width+1) glyphs.
//
// Row 0 is the top border, open above the start cell. Each grid row y then
// contributes, for y > 0, a separator row (open where the cell is joined to
// its north neighbour) followed by a cell row (cell glyph, then open where the
// cell is joined to its east neighbour). The last row is the bottom border,
// open below the finish cell.
func Layout(s Scene, showSolution bool) [][]Glyph {
	w, d := s.Grid.Width, s.Grid.Depth
	rows := make([][]Glyph, 0, 2*d+1)

	// Top border.
	rows = append(rows, border(w, 0, s.Start))

	for y := 0; y < d; y++ {
		// North separators.
		if y > 0 {
			row := make([]Glyph, 0, 2*w+1)
			row = append(row, Wall)
			for x := 0; x < w; x++ {
				cell := gridgraph.Cell{X: x, Y: y}
				north, _ := s.Grid.North(cell)
				row = append(row, passage(s.Graph, north, cell), Wall)
			}
			rows = append(rows, row)
		}

		// Cells and east separators.
		row := make([]Glyph, 0, 2*w+1)
		row = append(row, Wall)
		for x := 0; x < w; x++ {
			cell := gridgraph.Cell{X: x, Y: y}
			row = append(row, cellGlyph(s, cell, showSolution))
			east, ok := s.Grid.East(cell)
			if !ok {
				row = append(row, Wall)
				continue
			}
			row = append(row, passage(s.Graph, cell, east))
		}
		rows = append(rows, row)
	}

	// Bottom border.
	return append(rows, border(w, d-1, s.Finish))
}

func border(width, y int, opening gridgraph.Cell) []Glyph {
	row := make([]Glyph, 0, 2*width+1)
	row = append(row, Wall)
	for x := 0; x < width; x++ {
		if opening == (gridgraph.Cell{X: x, Y: y}) {
			row = append(row, Padding, Wall)
		} else {
			row = append(row, Wall, Wall)
		}
	}

	return row
}

func passage(g *core.Graph[gridgraph.Cell], from, to gridgraph.Cell) Glyph {
	if g != nil && g.IsAdjacent(from, to) {
		return Padding
	}

	return Wall
}

func cellGlyph(s Scene, c gridgraph.Cell, showSolution bool) Glyph {
	if s.Graph == nil || !s.Graph.Contains(c) {
		return Padding
	}
	if !showSolution {
		return Path
	}
	if s.Solution != nil && s.Solution.Contains(c) {
		return Solution
	}

	return Padding
}
