package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazegen/config"
	"github.com/katalvlaran/mazegen/maze"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	alg, err := cfg.MazeAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, maze.Backtracker, alg)
	assert.Equal(t, 4, cfg.Width)
}

func TestParse_Full(t *testing.T) {
	src := []byte(`
algorithm = "prim-horizontal"
width     = 12
height    = 8
seed      = 99
debug     = true
solution  = true

start {
  x = 1
  y = 0
}

finish {
  x = 10
  y = 7
}
`)
	cfg, err := config.Parse(src, "run.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, "prim-horizontal", cfg.Algorithm)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 8, cfg.Height)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Solution)
	require.NotNil(t, cfg.Start)
	require.NotNil(t, cfg.Finish)
	assert.Equal(t, config.Point{X: 10, Y: 7}, *cfg.Finish)
}

func TestParse_DefaultsKept(t *testing.T) {
	cfg, err := config.Parse([]byte(`seed = 5`), "seed.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, "backtracker", cfg.Algorithm)
	assert.Equal(t, maze.MinDimension, cfg.Width)
	assert.Nil(t, cfg.Start)
}

func TestParse_Variables(t *testing.T) {
	src := []byte(`
width  = var.size
height = var.size / 2
finish {
  x = var.size - 1
  y = var.size / 2 - 1
}
start {
  x = 0
  y = 0
}
`)
	cfg, err := config.Parse(src, "vars.hcl", map[string]cty.Value{
		"size": cty.NumberIntVal(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, config.Point{X: 9, Y: 4}, *cfg.Finish)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `width = `, config.ErrParse},
		{"unknown attribute", `colour = "red"`, config.ErrParse},
		{"wrong type", `width = "wide"`, config.ErrParse},
		{"undefined variable", `width = var.missing`, config.ErrParse},
		{"unknown algorithm", `algorithm = "kruskal"`, config.ErrInvalid},
		{"negative size", `width = -3`, config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), "bad.hcl", nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte(`algorithm = "kruskal"`), "bad.hcl", nil)
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.hcl")
	require.NoError(t, os.WriteFile(path, []byte("algorithm = \"recursive-dfs\"\nwidth = 6\n"), 0o600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "recursive-dfs", cfg.Algorithm)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.hcl"), nil)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestMazeOptions(t *testing.T) {
	cfg := &config.Config{
		Algorithm: "prim",
		Width:     7,
		Height:    5,
		Seed:      3,
		Start:     &config.Point{X: 2, Y: 0},
		Finish:    &config.Point{X: 4, Y: 4},
	}
	m, err := maze.New(cfg.MazeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Grid().Width)
	assert.Equal(t, maze.Cell{X: 2, Y: 0}, m.Start())
	assert.Equal(t, maze.Cell{X: 4, Y: 4}, m.Finish())

	alg, err := cfg.MazeAlgorithm()
	require.NoError(t, err)
	res, err := m.Generate(context.Background(), alg)
	require.NoError(t, err)
	assert.Equal(t, maze.Prim, res.Algorithm)

	// Only one block: endpoints are drawn at random.
	cfg.Finish = nil
	m, err = maze.New(cfg.MazeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Start().Y)
	assert.Equal(t, 4, m.Finish().Y)
}
