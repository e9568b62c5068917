package maze

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegen/core"
	"github.com/katalvlaran/mazegen/gridgraph"
	"github.com/katalvlaran/mazegen/render"
)

// generator holds the state of one carve. It owns a fresh graph; visited
// flags live in a bitmap indexed by grid row-major index.
type generator struct {
	ctx     context.Context
	grid    *gridgraph.Grid
	rng     Source
	emit    func(Event) bool
	g       *core.Graph[Cell]
	visited []bool

	debug         bool
	log           logrus.FieldLogger
	start, finish Cell
}

func newGenerator(ctx context.Context, m *Maze, log logrus.FieldLogger, emit func(Event) bool) *generator {
	return &generator{
		ctx:     ctx,
		grid:    m.grid,
		rng:     m.rng,
		emit:    emit,
		g:       core.NewGraph[Cell](),
		visited: make([]bool, m.grid.Size()),
		debug:   m.debug,
		log:     log,
		start:   m.start,
		finish:  m.finish,
	}
}

// checkpoint is evaluated once per outer loop iteration.
func (gen *generator) checkpoint() error {
	return gen.ctx.Err()
}

func (gen *generator) isVisited(c Cell) bool {
	return gen.visited[gen.grid.Index(c)]
}

// visit marks c as part of the maze and announces it.
func (gen *generator) visit(c Cell) error {
	gen.visited[gen.grid.Index(c)] = true
	gen.g.GetOrInsert(c)

	return gen.send(Event{Kind: EventVertex, Cell: c})
}

// connect carves the passage from–to and announces it.
func (gen *generator) connect(from, to Cell) error {
	gen.g.AddEdge(from, to)
	if gen.debug {
		gen.log.WithField("edge", from.String()+"→"+to.String()).
			Debug("carved\n" + render.Text(render.Scene{
				Grid:   gen.grid,
				Start:  gen.start,
				Finish: gen.finish,
				Graph:  gen.g,
			}, false))
	}

	return gen.send(Event{Kind: EventEdge, From: from, To: to})
}

func (gen *generator) send(ev Event) error {
	if !gen.emit(ev) {
		return errStopped
	}

	return nil
}

// neighborsWhere returns the grid neighbours of c, in N, E, S, W order, whose
// visited flag equals visited.
func (gen *generator) neighborsWhere(c Cell, visited bool) []Cell {
	var out []Cell
	for _, n := range gen.grid.Neighbors(c) {
		if gen.isVisited(n) == visited {
			out = append(out, n)
		}
	}

	return out
}
