// Package maze defines the algorithms, run states, events and results of a
// maze generation run.
//
// Errors:
//
//	ErrUnknownAlgorithm - an algorithm name or value is not recognised.
//	ErrOutOfBounds      - start or finish lies outside the clamped grid.
package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/render"
)

// Sentinel errors for maze construction and runs.
var (
	// ErrUnknownAlgorithm indicates an algorithm name or value is not recognised.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")

	// ErrOutOfBounds indicates start or finish lies outside the grid.
	// It wraps gridgraph.ErrOutOfBounds.
	ErrOutOfBounds = fmt.Errorf("maze: %w", gridgraph.ErrOutOfBounds)
)

// Cell is the grid coordinate every maze vertex carries.
type Cell = gridgraph.Cell

// Algorithm selects the spanning-tree construction.
type Algorithm int

const (
	// Prim grows the maze from a random frontier cell each step.
	Prim Algorithm = iota
	// PrimHorizontal is Prim with east/west connections preferred.
	PrimHorizontal
	// Backtracker is the iterative stack-based depth-first carve.
	Backtracker
	// RecursiveDFS is the recursive carve that tracks the solution online.
	RecursiveDFS
)

// Algorithms lists every algorithm in declaration order.
var Algorithms = []Algorithm{Prim, PrimHorizontal, Backtracker, RecursiveDFS}

var algorithmNames = map[Algorithm]string{
	Prim:           "prim",
	PrimHorizontal: "prim-horizontal",
	Backtracker:    "backtracker",
	RecursiveDFS:   "recursive-dfs",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name such as "backtracker" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// State is the stage a run has reached. States only move forward.
type State int

const (
	NotStarted State = iota
	Generating
	SpanningComplete
	ShortestPathComputed
	SolutionExtracted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Generating:
		return "generating"
	case SpanningComplete:
		return "spanning-complete"
	case ShortestPathComputed:
		return "shortest-path-computed"
	case SolutionExtracted:
		return "solution-extracted"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// EventKind classifies an Event.
type EventKind int

const (
	// EventVertex: Cell joined the maze.
	EventVertex EventKind = iota + 1
	// EventEdge: a passage From–To was carved.
	EventEdge
	// EventBacktrack: the backtracker popped Cell off its stack.
	EventBacktrack
	// EventRetract: the recursive carve dropped From→To from its tracked path.
	EventRetract
	// EventSolution: Cell is on the solution path; Role says where.
	EventSolution
	// EventComplete: the run finished.
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventVertex:
		return "vertex"
	case EventEdge:
		return "edge"
	case EventBacktrack:
		return "backtrack"
	case EventRetract:
		return "retract"
	case EventSolution:
		return "solution"
	case EventComplete:
		return "complete"
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Role is the position of a solution vertex on the path.
type Role int

const (
	RoleNone Role = iota
	RoleFinish
	RoleStart
	RoleInterior
)

// Event is one step of a run, delivered in order by Maze.Stream.
type Event struct {
	Kind     EventKind
	Cell     Cell // EventVertex, EventBacktrack, EventSolution
	From, To Cell // EventEdge, EventRetract
	Role     Role // EventSolution
}

func (e Event) String() string {
	switch e.Kind {
	case EventEdge, EventRetract:
		return fmt.Sprintf("%s %v→%v", e.Kind, e.From, e.To)
	case EventComplete:
		return e.Kind.String()
	}

	return fmt.Sprintf("%s %v", e.Kind, e.Cell)
}

// Result is everything a finished run produced.
type Result struct {
	Algorithm Algorithm
	Grid      *gridgraph.Grid
	Start     Cell
	Finish    Cell

	// Graph is the undirected spanning tree over every grid cell.
	Graph *core.Graph[Cell]
	// Solution is the directed start→finish path extracted after Dijkstra.
	Solution *core.Graph[Cell]
	// Tracked is the directed path recorded during generation (RecursiveDFS only).
	Tracked *core.Graph[Cell]
	// Distance is the number of steps from start to finish.
	Distance float64
}

// Path returns the solution cells from start to finish.
func (r *Result) Path() []Cell {
	return r.Solution.Values()
}

// Scene returns the drawable view of r.
func (r *Result) Scene() render.Scene {
	return render.Scene{
		Grid:     r.Grid,
		Start:    r.Start,
		Finish:   r.Finish,
		Graph:    r.Graph,
		Solution: r.Solution,
	}
}

// Render draws r as ASCII text, optionally with the solution overlaid.
func (r *Result) Render(showSolution bool) string {
	return render.Text(r.Scene(), showSolution)
}
