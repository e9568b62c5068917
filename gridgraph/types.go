// Package gridgraph defines the Cell and Grid types shared by the maze
// generators, the renderer and the verifiers.
package gridgraph

import (
	"cmp"
	"fmt"
)

// Cell is one grid position. Identity and equality are the coordinates;
// X grows eastwards and Y grows southwards.
type Cell struct {
	X, Y int
}

// Compare orders cells by X, then Y.
func (c Cell) Compare(other Cell) int {
	if d := cmp.Compare(c.X, other.X); d != 0 {
		return d
	}

	return cmp.Compare(c.Y, other.Y)
}

// String renders the cell as "(x, y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// offsets is indexed by Direction: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Directions lists the moves in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is a rectangular Width×Depth cell layout. It is immutable once built.
type Grid struct {
	Width, Depth int
}
