package maze_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// ExampleMaze_Generate builds a seeded maze and reports its solution length.
func ExampleMaze_Generate() {
	m, err := maze.New(
		maze.WithSize(4, 4),
		maze.WithStart(0, 0),
		maze.WithFinish(3, 3),
		maze.WithRand(zeroSource{}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := m.Generate(context.Background(), maze.Backtracker)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("distance:", res.Distance)
	fmt.Println("path:", res.Path())
	// Output:
	// distance: 6
	// path: [(0, 0) (1, 0) (2, 0) (3, 0) (3, 1) (3, 2) (3, 3)]
}

// ExampleMaze_Stream counts events by kind.
func ExampleMaze_Stream() {
	m, _ := maze.New(maze.WithStart(0, 0), maze.WithFinish(3, 3), maze.WithRand(zeroSource{}))

	counts := map[maze.EventKind]int{}
	for ev, err := range m.Stream(context.Background(), maze.Backtracker) {
		if err != nil {
			fmt.Println(err)
			return
		}
		counts[ev.Kind]++
	}
	for _, k := range []maze.EventKind{maze.EventVertex, maze.EventEdge, maze.EventBacktrack, maze.EventSolution, maze.EventComplete} {
		fmt.Printf("%s=%d\n", k, counts[k])
	}
	// Output:
	// vertex=16
	// edge=15
	// backtrack=0
	// solution=7
	// complete=1
}
