// Package dijkstra defines configuration options and sentinel errors
// for the single-source shortest-path engine and the solution extractor.
//
// Options:
//
//	– Source: value of the starting vertex (must be present in the graph).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoSource        if no Source option was supplied.
//	– ErrVertexNotFound  if the source or destination vertex is absent.
//	– ErrNegativeCost    if a negative edge cost is detected in the graph.
//	– ErrUnreachable     if the destination has no shortest-path tree entry.
//
// Example usage:
//
//	if err := dijkstra.Dijkstra(ctx, g, dijkstra.Source(start)); err != nil {
//	    return err
//	}
//	path, err := dijkstra.ExtractPath(g, finish)
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/core"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that Dijkstra was called without a Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexNotFound indicates the source or destination vertex does not exist.
	// It wraps core.ErrVertexNotFound so either sentinel matches with errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNegativeCost indicates that a negative edge cost was detected in the graph.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrUnreachable indicates the destination was not reached by the last run.
	ErrUnreachable = errors.New("dijkstra: destination not reachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options[T comparable] struct {
	Source    T    // The value of the source vertex
	hasSource bool // Source was set explicitly
}

// Option represents a functional option for configuring Dijkstra.
type Option[T comparable] func(*Options[T])

// Source sets the starting vertex. It must be supplied.
func Source[T comparable](v T) Option[T] {
	return func(o *Options[T]) {
		o.Source = v
		o.hasSource = true
	}
}

// DefaultOptions returns an Options value with the given source vertex.
func DefaultOptions[T comparable](source T) Options[T] {
	return Options[T]{Source: source, hasSource: true}
}
