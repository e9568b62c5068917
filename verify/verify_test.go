package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/verify"
)

type C = gridgraph.Cell

var snake = []C{
	{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {2, 3},
	{2, 2}, {2, 1}, {1, 1}, {1, 2}, {1, 3}, {0, 3}, {0, 2}, {0, 1},
}

type VerifySuite struct {
	suite.Suite
	grid *gridgraph.Grid
	tree *core.Graph[C]
	sol  *core.Graph[C]
}

func (s *VerifySuite) SetupTest() {
	var err error
	s.grid, err = gridgraph.NewGrid(4, 4)
	s.Require().NoError(err)

	s.tree = core.NewGraph[C]()
	for i := 1; i < len(snake); i++ {
		s.tree.AddEdge(snake[i-1], snake[i])
	}
	s.sol = core.NewGraph[C](core.WithDirected())
	for i := 1; i <= 6; i++ {
		s.sol.AddEdge(snake[i-1], snake[i])
	}
}

func (s *VerifySuite) TestSpanningTree_Valid() {
	s.NoError(verify.SpanningTree(s.grid, s.tree))
}

func (s *VerifySuite) TestSpanningTree_Lattice() {
	s.ErrorIs(verify.SpanningTree(s.grid, s.grid.Lattice()), verify.ErrCycle)
}

func (s *VerifySuite) TestSpanningTree_Disconnected() {
	s.Require().True(s.tree.RemoveEdge(C{3, 3}, C{2, 3}))
	s.ErrorIs(verify.SpanningTree(s.grid, s.tree), verify.ErrDisconnected)
}

func (s *VerifySuite) TestSpanningTree_MissingCell() {
	s.Require().True(s.tree.RemoveVertex(C{0, 1}))
	s.ErrorIs(verify.SpanningTree(s.grid, s.tree), verify.ErrNotSpanning)
}

func (s *VerifySuite) TestSpanningTree_NonAdjacent() {
	s.tree.AddEdge(C{0, 0}, C{2, 2})
	s.ErrorIs(verify.SpanningTree(s.grid, s.tree), verify.ErrNotAdjacent)
}

func (s *VerifySuite) TestSpanningTree_Directed() {
	s.ErrorIs(verify.SpanningTree(s.grid, s.sol), verify.ErrNotSpanning)
	s.ErrorIs(verify.SpanningTree(nil, s.tree), verify.ErrNotSpanning)
}

func (s *VerifySuite) TestSolutionPath() {
	s.NoError(verify.SolutionPath(s.tree, s.sol, C{0, 0}, C{3, 3}))
	s.ErrorIs(verify.SolutionPath(s.tree, s.sol, C{0, 0}, C{2, 3}), verify.ErrBadPath)
	s.ErrorIs(verify.SolutionPath(s.tree, nil, C{0, 0}, C{3, 3}), verify.ErrBadPath)

	// A step through a wall.
	bad := core.NewGraph[C](core.WithDirected())
	bad.AddEdge(C{0, 0}, C{0, 1})
	bad.AddEdge(C{0, 1}, C{1, 1})
	s.ErrorIs(verify.SolutionPath(s.tree, bad, C{0, 0}, C{1, 1}), verify.ErrBadPath)
}

func (s *VerifySuite) TestCrossCheck() {
	s.NoError(verify.CrossCheck(s.tree, C{0, 0}, C{3, 3}, snake[:7]))
	s.ErrorIs(verify.CrossCheck(s.tree, C{0, 0}, C{3, 3}, snake[:6]), verify.ErrMismatch)
	s.ErrorIs(verify.CrossCheck(s.tree, C{0, 0}, C{0, 1}, snake[:7]), verify.ErrMismatch)
}

func (s *VerifySuite) TestMirror() {
	m, err := verify.Mirror(s.tree)
	s.Require().NoError(err)

	order, err := m.Order()
	s.Require().NoError(err)
	size, err := m.Size()
	s.Require().NoError(err)
	s.Equal(16, order)
	s.Equal(15, size)
}

func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifySuite))
}

func TestResult_AllAlgorithms(t *testing.T) {
	for _, alg := range maze.Algorithms {
		for seed := int64(1); seed <= 4; seed++ {
			m, err := maze.New(maze.WithSize(11, 9), maze.WithSeed(seed))
			require.NoError(t, err)
			res, err := m.Generate(context.Background(), alg)
			require.NoError(t, err)
			require.NoError(t, verify.Result(res), "%s seed %d", alg, seed)
		}
	}
}

func TestResult_DistanceMismatch(t *testing.T) {
	m, err := maze.New(maze.WithSeed(3))
	require.NoError(t, err)
	res, err := m.Generate(context.Background(), maze.Prim)
	require.NoError(t, err)

	res.Distance++
	require.ErrorIs(t, verify.Result(res), verify.ErrMismatch)
	require.ErrorIs(t, verify.Result(nil), verify.ErrNotSpanning)
}
