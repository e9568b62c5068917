// Command mazegen generates, verifies and draws grid mazes.
//
// Examples:
//
//	mazegen gen --width 20 --height 10 --algorithm prim --solution
//	mazegen gen --config maze.hcl --var size=30 --png maze.png
//	mazegen algorithms
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
