package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/config"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/render"
	"github.com/katalvlaran/mazegen/verify"
)

type genFlags struct {
	configPath string
	vars       map[string]string
	width      int
	height     int
	algorithm  string
	seed       int64
	debug      bool
	solution   bool
	events     bool
	pngPath    string
	cellPixels int
}

func newGenCmd(rf *rootFlags) *cobra.Command {
	gf := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a maze",
		Long: `Generate a maze, verify it, and print it as ASCII.

Examples:
  mazegen gen --width 20 --height 10 --algorithm prim --solution
  mazegen gen --config maze.hcl --var size=30
  mazegen gen --seed 42 --png maze.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, rf, gf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&gf.configPath, "config", "c", "", "HCL file with run settings")
	f.StringToStringVar(&gf.vars, "var", nil, "Value for var.<name> in the config file (name=value)")
	f.IntVarP(&gf.width, "width", "W", maze.MinDimension, "Grid width in cells")
	f.IntVarP(&gf.height, "height", "H", maze.MinDimension, "Grid height in cells")
	f.StringVarP(&gf.algorithm, "algorithm", "a", maze.Backtracker.String(), "Generation algorithm")
	f.Int64VarP(&gf.seed, "seed", "s", 0, "Random seed (0 picks one and logs it)")
	f.BoolVar(&gf.debug, "debug", false, "Log the maze after every carved passage")
	f.BoolVar(&gf.solution, "solution", false, "Overlay the solution path")
	f.BoolVar(&gf.events, "events", false, "Print the event stream before the maze")
	f.StringVar(&gf.pngPath, "png", "", "Also write the maze as a PNG image")
	f.IntVar(&gf.cellPixels, "cell-pixels", render.DefaultCellPixels, "PNG size of one glyph")

	return cmd
}

// resolveConfig merges the config file, if any, with explicitly set flags.
func resolveConfig(cmd *cobra.Command, gf *genFlags) (*config.Config, error) {
	cfg := config.Default()
	if gf.configPath != "" {
		loaded, err := config.Load(gf.configPath, ctyVars(gf.vars))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if gf.configPath == "" || f.Changed("width") {
		cfg.Width = gf.width
	}
	if gf.configPath == "" || f.Changed("height") {
		cfg.Height = gf.height
	}
	if gf.configPath == "" || f.Changed("algorithm") {
		cfg.Algorithm = gf.algorithm
	}
	if f.Changed("seed") {
		cfg.Seed = gf.seed
	}
	if f.Changed("debug") {
		cfg.Debug = gf.debug
	}
	if f.Changed("solution") {
		cfg.Solution = gf.solution
	}

	return cfg, cfg.Validate()
}

// ctyVars turns name=value pairs into HCL variables; numeric values become
// numbers, everything else a string.
func ctyVars(in map[string]string) map[string]cty.Value {
	out := make(map[string]cty.Value, len(in))
	for k, v := range in {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			out[k] = cty.NumberFloatVal(n)
			continue
		}
		out[k] = cty.StringVal(v)
	}

	return out
}

func runGen(cmd *cobra.Command, rf *rootFlags, gf *genFlags) error {
	log, err := rf.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, gf)
	if err != nil {
		return err
	}
	alg, err := cfg.MazeAlgorithm()
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.WithField("seed", cfg.Seed).Info("seed selected")

	m, err := maze.New(append(cfg.MazeOptions(), maze.WithLogger(log))...)
	if err != nil {
		return err
	}

	// Run, echoing events when asked.
	out := cmd.OutOrStdout()
	for ev, err := range m.Stream(cmd.Context(), alg) {
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if gf.events {
			fmt.Fprintln(out, ev)
		}
	}
	res := m.Last()

	if err := verify.Result(res); err != nil {
		return err
	}
	reportFarthest(log, res)

	fmt.Fprint(out, res.Render(cfg.Solution))

	if gf.pngPath != "" {
		if err := writePNG(gf.pngPath, res, cfg.Solution, gf.cellPixels); err != nil {
			return err
		}
		log.WithField("path", gf.pngPath).Info("wrote image")
	}

	return nil
}

// reportFarthest logs the cell deepest from the start, which is the natural
// finish for a hardest-possible maze.
func reportFarthest(log logrus.FieldLogger, res *maze.Result) {
	walk, err := bfs.BFS(res.Graph, res.Start)
	if err != nil {
		log.WithError(err).Warn("farthest cell unavailable")
		return
	}
	far, depth := walk.Farthest()
	log.WithFields(logrus.Fields{
		"distance": res.Distance,
		"farthest": far.String(),
		"depth":    depth,
	}).Info("maze solved")
}

func writePNG(path string, res *maze.Result, showSolution bool, cellPixels int) error {
	pic, err := render.Decorated(res.Scene(), showSolution, cellPixels)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, pic); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
