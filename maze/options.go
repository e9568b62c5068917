package maze

import (
	"io"

	"github.com/sirupsen/logrus"
)

// MinDimension is the smallest width or height a maze is built with.
// Smaller requests are raised to it silently.
const MinDimension = 4

// Options configures a Maze. Use DefaultOptions() as a starting point.
//
// Fields:
//
//	Width, Height  – grid size, clamped to MinDimension.
//	Start, Finish  – endpoints; when equal both are re-randomised onto row 0
//	                 and the last row.
//	Debug          – log the ASCII maze after every carved passage.
//	Seed           – seed for the default Source; 0 seeds from the clock.
//	Rand           – explicit Source; overrides Seed.
//	Logger         – destination for run logs; discards by default.
type Options struct {
	Width, Height int
	Start, Finish Cell
	Debug         bool
	Seed          int64
	Rand          Source
	Logger        logrus.FieldLogger
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns a 4×4 maze with coincident endpoints (so they are
// randomised), a clock-seeded source and a silent logger.
func DefaultOptions() Options {
	return Options{
		Width:  MinDimension,
		Height: MinDimension,
		Logger: discardLogger(),
	}
}

// WithSize sets the grid width and height.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithStart sets the start cell.
func WithStart(x, y int) Option {
	return func(o *Options) { o.Start = Cell{X: x, Y: y} }
}

// WithFinish sets the finish cell.
func WithFinish(x, y int) Option {
	return func(o *Options) { o.Finish = Cell{X: x, Y: y} }
}

// WithDebug toggles per-step ASCII logging at debug level.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects the random source; it takes precedence over WithSeed.
func WithRand(rng Source) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithLogger routes run logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
