package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

func main() {
	rows := flag.Int("rows", 21, "Maze rows")
	cols := flag.Int("cols", 21, "Maze columns")
	seed := flag.Int64("seed", 42, "Seed for random generation (0: random)")
	solve := flag.Bool("solve", false, "Overlay the shortest start-goal path")
	border := flag.Bool("border", true, "Frame the maze with a ring of walls")
	output := flag.String("output", "", "Write the maze to this file instead of stdout")
	format := flag.String("format", "text", "Output format: text or yaml")
	flag.Parse()

	if *format != "text" && *format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want text or yaml)\n", *format)
		os.Exit(1)
	}

	fmt.Printf("Generating %dx%d maze (seed: %d)\n", *rows, *cols, *seed)

	// Generate the maze
	fmt.Print("Carving passages... ")
	gen, err := maze.NewGenerator(*rows, *cols, maze.NewSource(*seed))
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	grid := gen.Generate()
	fmt.Printf("OK (%d lattice cells, %d edges)\n", gen.Visited(), gen.Edges())

	stats := maze.Analyze(grid)

	var path []maze.Pos
	if *solve {
		fmt.Print("Solving... ")
		p, ok := maze.ShortestPath(grid, grid.Start(), grid.Goal())
		if !ok {
			fmt.Println("FAILED: goal unreachable")
			os.Exit(1)
		}
		path = p
		fmt.Printf("OK (%d moves)\n", len(path)-1)
	}

	var out string
	switch *format {
	case "yaml":
		data, err := EncodeMaze(grid, *seed, stats, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out = string(data)
	default:
		out = maze.Render(grid, maze.RenderOptions{
			Path:     path,
			ShowGoal: true,
			Border:   *border,
		})
	}

	if *output != "" {
		fmt.Printf("Writing %s... ", *output)
		if err := os.WriteFile(*output, []byte(out), 0644); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	} else {
		fmt.Println()
		fmt.Print(out)
	}

	// Print summary
	fmt.Printf("\nMaze generated successfully!\n")
	fmt.Printf("  - Passages: %d of %d cells\n", stats.Passages, stats.Rows*stats.Cols)
	fmt.Printf("  - Lattice cells: %d (%d open)\n", stats.LatticeCells, stats.LatticeOpen)
	fmt.Printf("  - Dead ends: %d\n", stats.DeadEnds)
	fmt.Printf("  - Connected: %v\n", stats.Connected)
	fmt.Printf("  - Goal reachable: %v\n", stats.GoalReachable)
	fmt.Printf("  - Solution length: %d moves\n", stats.SolutionLength)
}
