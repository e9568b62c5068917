package maze

// frontier is the set of cells adjacent to the maze but not yet in it.
// Insert, remove and membership are O(1): cells live in a dense slice and
// pos maps each cell to its slot; removal swaps the last cell in.
type frontier struct {
	cells []Cell
	pos   map[Cell]int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		cells: make([]Cell, 0, capacity),
		pos:   make(map[Cell]int, capacity),
	}
}

func (f *frontier) Len() int { return len(f.cells) }

func (f *frontier) Has(c Cell) bool {
	_, ok := f.pos[c]

	return ok
}

// Add inserts c; duplicates are ignored.
func (f *frontier) Add(c Cell) {
	if f.Has(c) {
		return
	}
	f.pos[c] = len(f.cells)
	f.cells = append(f.cells, c)
}

// PopRandom removes and returns a uniformly chosen cell.
func (f *frontier) PopRandom(rng Source) Cell {
	i := rng.Intn(len(f.cells))
	c := f.cells[i]
	last := len(f.cells) - 1
	f.cells[i] = f.cells[last]
	f.pos[f.cells[i]] = i
	f.cells = f.cells[:last]
	delete(f.pos, c)

	return c
}
