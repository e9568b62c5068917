package maze

// backtracker carves an iterative recursive-backtracker maze rooted at start.
//
// Steps:
//  1. Mark start visited; unvisited = W·H − 1.
//  2. While unvisited > 0:
//     a. collect the unvisited neighbours of current;
//     b. if any, pick one uniformly, mark it, connect current→next,
//     push current and move to next;
//     c. otherwise pop the stack into current (stop if the stack is empty).
//
// Complexity: O(W·H) time and memory.
func (gen *generator) backtracker(start Cell) error {
	// 1) Root.
	if err := gen.visit(start); err != nil {
		return err
	}
	unvisited := gen.grid.Size() - 1
	stack := make([]Cell, 0, gen.grid.Size())
	current := start

	// 2) Carve.
	for unvisited > 0 {
		if err := gen.checkpoint(); err != nil {
			return err
		}

		open := gen.neighborsWhere(current, false)
		if len(open) > 0 {
			next := pick(gen.rng, open)
			if err := gen.connect(current, next); err != nil {
				return err
			}
			if err := gen.visit(next); err != nil {
				return err
			}
			unvisited--
			stack = append(stack, current)
			current = next
			continue
		}

		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := gen.send(Event{Kind: EventBacktrack, Cell: current}); err != nil {
			return err
		}
	}

	return nil
}
