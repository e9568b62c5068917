package verify

import (
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/mazegen/core"
)

func cellHash(c Cell) Cell { return c }

// Mirror copies g into an undirected, weighted dominikbraun graph keyed by
// cell. Edge costs are rounded to integer weights.
func Mirror(g *core.Graph[Cell]) (graph.Graph[Cell, Cell], error) {
	out := graph.New(cellHash, graph.Weighted())
	for _, c := range g.Values() {
		if err := out.AddVertex(c); err != nil {
			return nil, fmt.Errorf("verify: mirror vertex %v: %w", c, err)
		}
	}
	for _, e := range g.UniqueEdges() {
		// Each undirected passage is stored in both directions; keep one.
		if !g.Directed() && e.From.Compare(e.To) > 0 {
			continue
		}
		if err := out.AddEdge(e.From, e.To, graph.EdgeWeight(int(e.Cost))); err != nil {
			return nil, fmt.Errorf("verify: mirror edge %v-%v: %w", e.From, e.To, err)
		}
	}

	return out, nil
}

// CrossCheck recomputes the start→finish shortest path of g with
// dominikbraun/graph and reports ErrMismatch when it differs from path.
// In a tree the shortest path is unique, so the comparison is exact.
func CrossCheck(g *core.Graph[Cell], start, finish Cell, path []Cell) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrNotSpanning)
	}
	mirror, err := Mirror(g)
	if err != nil {
		return err
	}
	want, err := graph.ShortestPath(mirror, start, finish)
	if err != nil {
		return fmt.Errorf("%w: shortest path: %w", ErrMismatch, err)
	}
	if !slices.Equal(want, path) {
		return fmt.Errorf("%w: expected %v, got %v", ErrMismatch, want, path)
	}

	return nil
}
