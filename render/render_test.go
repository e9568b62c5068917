package render_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/render"
)

type C = gridgraph.Cell

// snake is a 4×4 spanning tree forming one Hamiltonian path from (0, 0).
var snake = []C{
	{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {2, 3},
	{2, 2}, {2, 1}, {1, 1}, {1, 2}, {1, 3}, {0, 3}, {0, 2}, {0, 1},
}

func snakeScene(t *testing.T) render.Scene {
	t.Helper()
	grid, err := gridgraph.NewGrid(4, 4)
	require.NoError(t, err)

	g := core.NewGraph[C]()
	for i := 1; i < len(snake); i++ {
		require.True(t, g.AddEdge(snake[i-1], snake[i]))
	}
	sol := core.NewGraph[C](core.WithDirected())
	for i := 1; i <= 6; i++ {
		sol.AddEdge(snake[i-1], snake[i])
	}

	return render.Scene{Grid: grid, Start: C{0, 0}, Finish: C{3, 3}, Graph: g, Solution: sol}
}

func TestText_Golden(t *testing.T) {
	want := strings.Join([]string{
		"X   X X X X X X X ",
		"X V   V   V   V X ",
		"X X X X X X X   X ",
		"X V X V   V X V X ",
		"X   X   X   X   X ",
		"X V X V X V X V X ",
		"X   X   X   X   X ",
		"X V   V X V   V X ",
		"X X X X X X X   X ",
	}, "\n") + "\n"

	assert.Equal(t, want, render.Text(snakeScene(t), false))
}

func TestText_GoldenSolution(t *testing.T) {
	want := strings.Join([]string{
		"X   X X X X X X X ",
		"X +   +   +   + X ",
		"X X X X X X X   X ",
		"X   X       X + X ",
		"X   X   X   X   X ",
		"X   X   X   X + X ",
		"X   X   X   X   X ",
		"X       X     + X ",
		"X X X X X X X   X ",
	}, "\n") + "\n"

	assert.Equal(t, want, render.Text(snakeScene(t), true))
}

func TestText_Deterministic(t *testing.T) {
	s := snakeScene(t)
	assert.Equal(t, render.Text(s, true), render.Text(s, true))
}

func TestText_EmptyGraph(t *testing.T) {
	grid, err := gridgraph.NewGrid(4, 4)
	require.NoError(t, err)
	s := render.Scene{Grid: grid, Start: C{1, 0}, Finish: C{2, 3}}

	out := render.Text(s, true)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "X X X   X X X X X ", lines[0])
	assert.Equal(t, "X   X   X   X   X ", lines[1])
	assert.Equal(t, "X X X X X X X X X ", lines[2])
	assert.Equal(t, "X X X X X   X X X ", lines[8])
}

func TestLayout_Dimensions(t *testing.T) {
	grid, err := gridgraph.NewGrid(7, 5)
	require.NoError(t, err)

	rows := render.Layout(render.Scene{Grid: grid, Graph: grid.Lattice()}, false)
	require.Len(t, rows, 2*5+1)
	for _, row := range rows {
		assert.Len(t, row, 2*7+1)
	}
	assert.Equal(t, render.Path, rows[1][1])
	assert.Equal(t, "V ", render.Path.String())
}

func TestImage_Pixels(t *testing.T) {
	const px = 3
	s := snakeScene(t)

	plain := render.Image(s, false, px)
	b := plain.Bounds()
	assert.Equal(t, 9*px, b.Dx())
	assert.Equal(t, 9*px, b.Dy())

	rgba := func(c color.Color) color.RGBA {
		return color.RGBAModel.Convert(c).(color.RGBA)
	}
	// Corner wall.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgba(plain.At(0, 0)))
	// Start opening in the top border.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(plain.At(px, 0)))
	// Cell (0, 0) unsolved.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba(plain.At(px+1, px+1)))
	// Outside.
	assert.Equal(t, color.RGBA{}, rgba(plain.At(-1, 0)))

	solved := render.Image(s, true, px)
	assert.Equal(t, color.RGBA{230, 20, 20, 255}, rgba(solved.At(px+1, px+1)))
}

func TestImage_DefaultCellPixels(t *testing.T) {
	img := render.Image(snakeScene(t), false, 0)
	assert.Equal(t, 9*render.DefaultCellPixels, img.Bounds().Dx())
}

func TestDecorated(t *testing.T) {
	const px = 4
	pic, err := render.Decorated(snakeScene(t), true, px)
	require.NoError(t, err)
	require.NotNil(t, pic)
	assert.GreaterOrEqual(t, pic.Bounds().Dx(), 9*px)
	assert.Greater(t, pic.Bounds().Dy(), 9*px)
}
