package maze

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/dijkstra"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/render"
)

// errStopped ends a run whose consumer stopped ranging over the stream.
var errStopped = errors.New("maze: stream stopped by consumer")

// Maze holds a configured grid and endpoints. Each Stream or Generate call
// performs one independent run that builds fresh graphs. A Maze is not safe
// for concurrent use.
type Maze struct {
	grid   *gridgraph.Grid
	start  Cell
	finish Cell
	debug  bool
	rng    Source
	log    logrus.FieldLogger
	state  State
	last   *Result
}

// New validates options and fixes the grid and endpoints.
//
// Steps:
//  1. Apply options over DefaultOptions.
//  2. Clamp width and height to MinDimension.
//  3. Resolve the random source (Rand, else Seed).
//  4. If start == finish, draw start on row 0 and finish on the last row.
//  5. Reject endpoints outside the grid (ErrOutOfBounds).
func New(opts ...Option) (*Maze, error) {
	// 1) Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Dimensions
	grid, err := gridgraph.NewGrid(max(o.Width, MinDimension), max(o.Height, MinDimension))
	if err != nil {
		return nil, err
	}

	// 3) Randomness
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	// 4) Endpoints
	start, finish := o.Start, o.Finish
	if start == finish {
		start = Cell{X: rng.Intn(grid.Width), Y: 0}
		finish = Cell{X: rng.Intn(grid.Width), Y: grid.Depth - 1}
	}

	// 5) Bounds
	for _, c := range []Cell{start, finish} {
		if !grid.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, grid.Width, grid.Depth)
		}
	}

	return &Maze{
		grid:   grid,
		start:  start,
		finish: finish,
		debug:  o.Debug,
		rng:    rng,
		log:    o.Logger,
	}, nil
}

// Grid returns the clamped grid.
func (m *Maze) Grid() *gridgraph.Grid { return m.grid }

// Start returns the resolved start cell.
func (m *Maze) Start() Cell { return m.start }

// Finish returns the resolved finish cell.
func (m *Maze) Finish() Cell { return m.finish }

// State reports how far the latest run progressed.
func (m *Maze) State() State { return m.state }

// Last returns the result of the latest completed run, or nil.
func (m *Maze) Last() *Result { return m.last }

// Stream runs alg and yields its events in order:
// generation events, then Solution for the finish, the start, and each
// interior path cell from start to finish, then Complete.
//
// Breaking out of the range loop stops the run. A failed or cancelled run
// yields one final (Event{}, err) pair.
func (m *Maze) Stream(ctx context.Context, alg Algorithm) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		_, err := m.run(ctx, alg, func(ev Event) bool { return yield(ev, nil) })
		if err != nil && !errors.Is(err, errStopped) {
			yield(Event{}, err)
		}
	}
}

// Generate runs alg to completion and returns its Result.
func (m *Maze) Generate(ctx context.Context, alg Algorithm) (*Result, error) {
	return m.run(ctx, alg, func(Event) bool { return true })
}

// run drives one pipeline: generate → Dijkstra(start) → ExtractPath(finish).
func (m *Maze) run(ctx context.Context, alg Algorithm, emit func(Event) bool) (*Result, error) {
	if _, ok := algorithmNames[alg]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	log := m.log.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"width":     m.grid.Width,
		"height":    m.grid.Depth,
		"start":     m.start.String(),
		"finish":    m.finish.String(),
	})

	// 1) Generating
	m.state = Generating
	log.Debug("generating maze")
	gen := newGenerator(ctx, m, log, emit)
	var (
		tracked *core.Graph[Cell]
		err     error
	)
	switch alg {
	case Prim:
		err = gen.prim(m.start, false)
	case PrimHorizontal:
		err = gen.prim(m.start, true)
	case Backtracker:
		err = gen.backtracker(m.start)
	case RecursiveDFS:
		tracked, err = gen.recursiveDFS(m.start, m.finish)
	}
	if err != nil {
		return nil, err
	}
	m.state = SpanningComplete
	log.WithField("edges", gen.g.EdgeCount()/2).Debug("spanning tree complete")

	// 2) Shortest path
	if err = dijkstra.Dijkstra(ctx, gen.g, dijkstra.Source(m.start)); err != nil {
		return nil, fmt.Errorf("maze: shortest path: %w", err)
	}
	m.state = ShortestPathComputed

	// 3) Solution
	solution, err := dijkstra.ExtractPath(gen.g, m.finish)
	if err != nil {
		return nil, fmt.Errorf("maze: solution: %w", err)
	}
	m.state = SolutionExtracted
	fin, _ := gen.g.Find(m.finish)

	res := &Result{
		Algorithm: alg,
		Grid:      m.grid,
		Start:     m.start,
		Finish:    m.finish,
		Graph:     gen.g,
		Solution:  solution,
		Tracked:   tracked,
		Distance:  fin.Dist,
	}
	m.last = res
	log.WithField("distance", res.Distance).Debug("solution extracted")
	if m.debug {
		log.Info("solved maze\n" + render.Text(res.Scene(), true))
	}

	// 4) Solution signals, then completion.
	path := solution.Values()
	signals := make([]Event, 0, len(path)+1)
	signals = append(signals,
		Event{Kind: EventSolution, Cell: m.finish, Role: RoleFinish},
		Event{Kind: EventSolution, Cell: m.start, Role: RoleStart},
	)
	if len(path) > 2 {
		for _, c := range path[1 : len(path)-1] {
			signals = append(signals, Event{Kind: EventSolution, Cell: c, Role: RoleInterior})
		}
	}
	signals = append(signals, Event{Kind: EventComplete})
	for _, ev := range signals {
		if !emit(ev) {
			return nil, errStopped
		}
	}

	return res, nil
}
