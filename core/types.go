// Package core defines the generic Graph, Vertex, and Edge types used by every
// maze stage: generation writes into a Graph, the shortest-path engine annotates
// its vertices, and the solution extractor builds a second, directed Graph.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"math"
)

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("core: vertex not found")

// DefaultCost is the cost assigned to an edge when no WithCost option is given.
const DefaultCost = 1.0

// Infinity is the distance of a vertex no shortest-path run has reached.
var Infinity = math.Inf(1)

// Vertex is a node of the graph together with the scratch fields the
// shortest-path engine writes.
//
// Prev is stored as a key into the owning Graph, never as a pointer, so a
// vertex never keeps another one alive after removal.
type Vertex[T comparable] struct {
	// Value is the identity of the vertex inside its Graph.
	Value T

	// Dist is the best known distance from the last shortest-path source.
	Dist float64

	// Finalized reports whether Dist is final for the last run.
	Finalized bool

	prev    T
	hasPrev bool

	adj []Edge[T] // outgoing edges in insertion order
	in  int       // number of incoming edges
}

// Prev returns the predecessor on the shortest-path tree, if any.
func (v *Vertex[T]) Prev() (T, bool) {
	return v.prev, v.hasPrev
}

// SetPrev records p as the predecessor of v.
func (v *Vertex[T]) SetPrev(p T) {
	v.prev = p
	v.hasPrev = true
}

// Reached reports whether a shortest-path run assigned v a finite distance.
func (v *Vertex[T]) Reached() bool {
	return !math.IsInf(v.Dist, 1)
}

// Edges returns a copy of the outgoing edges of v.
func (v *Vertex[T]) Edges() []Edge[T] {
	out := make([]Edge[T], len(v.adj))
	copy(out, v.adj)

	return out
}

// reset restores the shortest-path scratch fields to their initial state.
func (v *Vertex[T]) reset() {
	var zero T
	v.Dist = Infinity
	v.Finalized = false
	v.prev = zero
	v.hasPrev = false
}

// Edge is a directed link From→To with a non-negative Cost.
// An undirected Graph stores every edge twice, once per direction.
type Edge[T comparable] struct {
	From T
	To   T
	Cost float64
}

// Equal reports whether e and other join the same ordered pair of vertices.
// Cost does not take part in equality.
func (e Edge[T]) Equal(other Edge[T]) bool {
	return e.From == other.From && e.To == other.To
}

// Reverse returns the mirror of e.
func (e Edge[T]) Reverse() Edge[T] {
	return Edge[T]{From: e.To, To: e.From, Cost: e.Cost}
}

type graphConfig struct {
	directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// WithDirected makes the Graph directed; by default every edge is mirrored.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(*float64)

// WithCost sets the cost of the edge being added.
func WithCost(cost float64) EdgeOption {
	return func(c *float64) { *c = cost }
}

// Graph is an in-memory adjacency-list graph keyed by vertex value.
//
// Vertices are iterated in insertion order, which makes every traversal
// deterministic for a given construction sequence. The directed flag is fixed
// at construction. Graph is not safe for concurrent use.
type Graph[T comparable] struct {
	directed bool
	vertices map[T]*Vertex[T]
	order    []T
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed: cfg.directed,
		vertices: make(map[T]*Vertex[T]),
	}
}

// Directed reports whether g was created with WithDirected.
func (g *Graph[T]) Directed() bool {
	return g.directed
}
