package gridgraph

import "github.com/katalvlaran/mazegen/core"

// ConnectedComponents splits the grid into regions joined by the edges of g.
// A cell missing from g forms a region of its own. Regions are listed in
// row-major order of their first cell; cells inside a region are in BFS order.
//
// A spanning maze yields exactly one component.
//
// Time:   O(W·H + E).
// Memory: O(W·H) for visited flags and output.
func (gr *Grid) ConnectedComponents(g *core.Graph[Cell]) [][]Cell {
	seen := make([]bool, gr.Size())
	var comps [][]Cell

	for i0 := 0; i0 < gr.Size(); i0++ {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []Cell{gr.Coordinate(i0)}

		for qi := 0; qi < len(queue); qi++ {
			edges, _ := g.EdgesOf(queue[qi])
			for _, e := range edges {
				if !gr.InBounds(e.To) {
					continue
				}
				vi := gr.Index(e.To)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, e.To)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
