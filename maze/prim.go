package maze

// prim carves a randomized Prim's maze rooted at start.
//
// Steps:
//  1. Join start and one uniformly random neighbour of it.
//  2. Seed the frontier with the out-of-maze neighbours of both.
//  3. Loop while the frontier is non-empty:
//     a. pop a uniformly random frontier cell c;
//     b. connect c to one of its in-maze neighbours (see attachPoint);
//     c. add the out-of-maze neighbours of c to the frontier.
//
// The frontier is maintained incrementally, so each step is O(1) amortized
// instead of rescanning the whole maze.
// Complexity: O(W·H) time and memory.
func (gen *generator) prim(start Cell, horizontal bool) error {
	// 1) Root edge.
	if err := gen.visit(start); err != nil {
		return err
	}
	first := pick(gen.rng, gen.grid.Neighbors(start))
	if err := gen.connect(start, first); err != nil {
		return err
	}
	if err := gen.visit(first); err != nil {
		return err
	}

	// 2) Frontier.
	front := newFrontier(gen.grid.Size())
	for _, c := range []Cell{start, first} {
		for _, n := range gen.neighborsWhere(c, false) {
			front.Add(n)
		}
	}

	// 3) Grow.
	for front.Len() > 0 {
		if err := gen.checkpoint(); err != nil {
			return err
		}
		c := front.PopRandom(gen.rng)
		anchor := gen.attachPoint(c, horizontal)
		if err := gen.connect(anchor, c); err != nil {
			return err
		}
		if err := gen.visit(c); err != nil {
			return err
		}
		for _, n := range gen.neighborsWhere(c, false) {
			front.Add(n)
		}
	}

	return nil
}

// attachPoint chooses the in-maze neighbour a frontier cell c is joined to.
// With horizontal set, east and west neighbours win whenever at least one of
// them is in the maze; the choice among the qualifying cells is uniform.
func (gen *generator) attachPoint(c Cell, horizontal bool) Cell {
	in := gen.neighborsWhere(c, true)
	if horizontal {
		var sideways []Cell
		for _, n := range in {
			if n.Y == c.Y {
				sideways = append(sideways, n)
			}
		}
		if len(sideways) > 0 {
			return pick(gen.rng, sideways)
		}
	}

	return pick(gen.rng, in)
}
