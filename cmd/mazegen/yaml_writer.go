package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// MazeYAML is the on-disk form of a generated maze. Grid rows use '#'
// for walls and '.' for passages so they load back with maze.Parse.
type MazeYAML struct {
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Seed     int64     `yaml:"seed"`
	Start    PosYAML   `yaml:"start"`
	Goal     PosYAML   `yaml:"goal"`
	Grid     []string  `yaml:"grid"`
	Solution []PosYAML `yaml:"solution,omitempty"`
	Stats    StatsYAML `yaml:"stats"`
}

// PosYAML is a cell coordinate
type PosYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StatsYAML mirrors maze.Stats
type StatsYAML struct {
	Passages       int  `yaml:"passages"`
	LatticeCells   int  `yaml:"lattice_cells"`
	DeadEnds       int  `yaml:"dead_ends"`
	Connected      bool `yaml:"connected"`
	GoalReachable  bool `yaml:"goal_reachable"`
	SolutionLength int  `yaml:"solution_length"`
}

// EncodeMaze encodes grid and its analysis
func EncodeMaze(grid *maze.Grid, seed int64, stats maze.Stats, solution []maze.Pos) ([]byte, error) {
	doc := MazeYAML{
		Rows:  grid.Rows(),
		Cols:  grid.Cols(),
		Seed:  seed,
		Start: toPosYAML(grid.Start()),
		Goal:  toPosYAML(grid.Goal()),
		Grid:  make([]string, 0, grid.Rows()),
		Stats: StatsYAML{
			Passages:       stats.Passages,
			LatticeCells:   stats.LatticeCells,
			DeadEnds:       stats.DeadEnds,
			Connected:      stats.Connected,
			GoalReachable:  stats.GoalReachable,
			SolutionLength: stats.SolutionLength,
		},
	}

	for y := 0; y < grid.Rows(); y++ {
		row := make([]byte, grid.Cols())
		for x := range row {
			if grid.IsPassage(maze.Pos{X: x, Y: y}) {
				row[x] = '.'
			} else {
				row[x] = '#'
			}
		}
		doc.Grid = append(doc.Grid, string(row))
	}
	for _, p := range solution {
		doc.Solution = append(doc.Solution, toPosYAML(p))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal maze: %w", err)
	}
	return data, nil
}

// DecodeMaze decodes a maze written by EncodeMaze
func DecodeMaze(data []byte) (*maze.Grid, *MazeYAML, error) {
	var doc MazeYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse maze YAML: %w", err)
	}
	grid, err := maze.Parse(doc.Grid)
	if err != nil {
		return nil, nil, err
	}
	return grid, &doc, nil
}

func toPosYAML(p maze.Pos) PosYAML {
	return PosYAML{X: p.X, Y: p.Y}
}
