package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/render"
)

// ExampleText draws a 4×4 maze whose passages run row by row, alternating
// the end that drops to the next row.
func ExampleText() {
	grid, _ := gridgraph.NewGrid(4, 4)
	g := core.NewGraph[gridgraph.Cell]()
	for y := 0; y < 4; y++ {
		for x := 1; x < 4; x++ {
			g.AddEdge(gridgraph.Cell{X: x - 1, Y: y}, gridgraph.Cell{X: x, Y: y})
		}
		if y > 0 {
			x := 3
			if y%2 == 0 {
				x = 0
			}
			g.AddEdge(gridgraph.Cell{X: x, Y: y - 1}, gridgraph.Cell{X: x, Y: y})
		}
	}

	out := render.Text(render.Scene{
		Grid:   grid,
		Start:  gridgraph.Cell{X: 0, Y: 0},
		Finish: gridgraph.Cell{X: 0, Y: 3},
		Graph:  g,
	}, false)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	// X   X X X X X X X
	// X V   V   V   V X
	// X X X X X X X   X
	// X V   V   V   V X
	// X   X X X X X X X
	// X V   V   V   V X
	// X X X X X X X   X
	// X V   V   V   V X
	// X   X X X X X X X
}
