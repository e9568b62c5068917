package maze

import "github.com/katalvlaran/mazegen/core"

// tracker records the start→finish path while the recursive carve runs.
//
// While solved is false every carved passage is mirrored into path. When a
// child call returns with solved still false, that passage led nowhere: it is
// retracted, and an endpoint left without edges leaves the graph. solved
// latches the first time the finish is entered and is never reset.
type tracker struct {
	finish Cell
	solved bool
	path   *core.Graph[Cell]
}

// recursiveDFS carves a recursive depth-first maze rooted at start and returns
// the directed path from start to finish recorded during the carve.
// Complexity: O(W·H) time; recursion depth up to W·H.
func (gen *generator) recursiveDFS(start, finish Cell) (*core.Graph[Cell], error) {
	t := &tracker{
		finish: finish,
		path:   core.NewGraph[Cell](core.WithDirected()),
	}
	if err := gen.visit(start); err != nil {
		return nil, err
	}
	if err := gen.carve(start, t); err != nil {
		return nil, err
	}

	return t.path, nil
}

// carve explores the unvisited neighbours of cur in random order.
func (gen *generator) carve(cur Cell, t *tracker) error {
	if err := gen.checkpoint(); err != nil {
		return err
	}
	if cur == t.finish {
		t.solved = true
	}

	order := gen.grid.Neighbors(cur)
	shuffleCells(order, gen.rng)
	for _, next := range order {
		if gen.isVisited(next) {
			continue
		}
		if err := gen.connect(cur, next); err != nil {
			return err
		}
		mirrored := !t.solved
		if mirrored {
			t.path.AddEdge(cur, next)
		}
		if err := gen.visit(next); err != nil {
			return err
		}
		if err := gen.carve(next, t); err != nil {
			return err
		}
		if mirrored && !t.solved {
			if err := gen.retract(t, cur, next); err != nil {
				return err
			}
		}
	}

	return nil
}

// retract removes from→to from the tracked path together with any endpoint
// it leaves isolated.
func (gen *generator) retract(t *tracker, from, to Cell) error {
	t.path.RemoveEdge(from, to)
	for _, c := range []Cell{to, from} {
		if t.path.InDegree(c) == 0 && t.path.OutDegree(c) == 0 {
			t.path.RemoveVertex(c)
		}
	}

	return gen.send(Event{Kind: EventRetract, From: from, To: to})
}
