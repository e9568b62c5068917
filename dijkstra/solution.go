package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegen/core"
)

// ExtractPath materialises the shortest path to dest as a new directed graph.
//
// It follows Prev links from dest back to the source of the last Dijkstra run
// and inserts one edge per hop in root-to-leaf order, so the returned graph is
// a simple path whose insertion order runs from source to dest.
// Edge costs are copied from g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if dest is not a vertex of g.
//   - ErrUnreachable if the last run did not reach dest.
//
// Calling ExtractPath twice on unchanged state yields structurally equal graphs.
// When dest is the source, the result holds that single vertex and no edges.
// Complexity: O(L·deg) for a path of L hops.
func ExtractPath[T comparable](g *core.Graph[T], dest T) (*core.Graph[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v, ok := g.Find(dest)
	if !ok {
		return nil, fmt.Errorf("%w: destination %v", ErrVertexNotFound, dest)
	}
	if !v.Reached() {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}

	// 1) Walk back to the root.
	chain := []*core.Vertex[T]{v}
	for {
		p, has := v.Prev()
		if !has {
			break
		}
		v, _ = g.Find(p)
		chain = append(chain, v)
		if len(chain) > g.VertexCount() {
			return nil, fmt.Errorf("%w: predecessor cycle at %v", ErrUnreachable, p)
		}
	}
	slices.Reverse(chain)

	// 2) Rebuild root → dest.
	path := core.NewGraph[T](core.WithDirected())
	path.GetOrInsert(chain[0].Value)
	for i := 1; i < len(chain); i++ {
		from, to := chain[i-1].Value, chain[i].Value
		path.AddEdge(from, to, core.WithCost(edgeCost(g, from, to)))
	}

	return path, nil
}

func edgeCost[T comparable](g *core.Graph[T], from, to T) float64 {
	edges, _ := g.EdgesOf(from)
	for _, e := range edges {
		if e.To == to {
			return e.Cost
		}
	}

	return core.DefaultCost
}
