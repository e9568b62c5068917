package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.GetOrInsert("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Chain covers order, depth and parents on a path with a branch.
func TestBFS_Chain(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "D")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	far, depth := res.Farthest()
	assert.Equal(t, "C", far)
	assert.Equal(t, 2, depth)
}

// TestBFS_MaxDepthAndFilter checks depth limiting and edge filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "X")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "X"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, n string) bool { return n != "X" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	_, err = res.PathTo("X")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_OnVisitAbort checks that a hook error stops the walk.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	stop := errors.New("stop")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(v string, _ int) error {
		if v == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Cancelled checks cancellation is honored.
func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_GridLattice checks Manhattan depths on a lattice.
func TestBFS_GridLattice(t *testing.T) {
	gr, _ := gridgraph.NewGrid(5, 4)
	res, err := bfs.BFS(gr.Lattice(), gridgraph.Cell{})
	require.NoError(t, err)
	assert.Len(t, res.Order, 20)
	for c, d := range res.Depth {
		assert.Equal(t, c.X+c.Y, d, c.String())
	}
}
