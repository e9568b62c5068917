// Package config loads maze run settings from HCL.
//
// A file looks like:
//
//	algorithm = "prim-horizontal"
//	width     = var.size
//	height    = var.size / 2
//	seed      = 42
//	solution  = true
//
//	start {
//	  x = 0
//	  y = 0
//	}
//	finish {
//	  x = var.size - 1
//	  y = var.size / 2 - 1
//	}
//
// Expressions may reference caller-supplied values as var.<name>.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazegen/maze"
)

var (
	// ErrParse wraps HCL syntax and decode diagnostics.
	ErrParse = errors.New("config: parse failed")

	// ErrInvalid reports a well-formed file with unusable values.
	ErrInvalid = errors.New("config: invalid value")
)

// Point is an optional start or finish block.
type Point struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
}

// Config is the decoded form of a run file. Zero numeric values keep the
// maze defaults.
type Config struct {
	Algorithm string `hcl:"algorithm,optional"`
	Width     int    `hcl:"width,optional"`
	Height    int    `hcl:"height,optional"`
	Seed      int64  `hcl:"seed,optional"`
	Debug     bool   `hcl:"debug,optional"`
	Solution  bool   `hcl:"solution,optional"`
	Start     *Point `hcl:"start,block"`
	Finish    *Point `hcl:"finish,block"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Algorithm: maze.Backtracker.String(),
		Width:     maze.MinDimension,
		Height:    maze.MinDimension,
	}
}

// Load reads and decodes the HCL file at path.
func Load(path string, vars map[string]cty.Value) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, diags)
	}

	return decode(file.Body, path, vars)
}

// Parse decodes HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string, vars map[string]cty.Value) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	return decode(file.Body, filename, vars)
}

func decode(body hcl.Body, name string, vars map[string]cty.Value) (*Config, error) {
	cfg := Default()
	if diags := gohcl.DecodeBody(body, evalContext(vars), cfg); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, name, diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	if len(vars) == 0 {
		return &hcl.EvalContext{
			Variables: map[string]cty.Value{"var": cty.EmptyObjectVal},
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(vars)},
	}
}

// Validate checks the algorithm name and that no size is negative.
func (c *Config) Validate() error {
	if _, err := maze.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}

	return nil
}

// MazeAlgorithm returns the configured algorithm.
func (c *Config) MazeAlgorithm() (maze.Algorithm, error) {
	return maze.ParseAlgorithm(c.Algorithm)
}

// MazeOptions translates c into maze options. Endpoints are set only when
// both blocks are present; otherwise the maze picks them at random.
func (c *Config) MazeOptions() []maze.Option {
	opts := []maze.Option{
		maze.WithSize(c.Width, c.Height),
		maze.WithSeed(c.Seed),
		maze.WithDebug(c.Debug),
	}
	if c.Start != nil && c.Finish != nil {
		opts = append(opts,
			maze.WithStart(c.Start.X, c.Start.Y),
			maze.WithFinish(c.Finish.X, c.Finish.Y),
		)
	}

	return opts
}
