// Package maze generates and inspects perfect grid mazes.
//
// A Grid is a rows × cols array of Wall and Passage cells. Generation
// carves between lattice cells (cells whose coordinates are both even),
// leaving one wall cell between neighbouring lattice cells, so the
// carved lattice forms a spanning tree. The goal corner is always opened
// afterwards so it can be reached from the start on any grid size.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid would have no cells.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")

	// ErrMalformedGrid is returned by Parse for ragged or unknown input.
	ErrMalformedGrid = errors.New("malformed grid")
)

// Cell is the state of a single grid cell
type Cell uint8

const (
	Wall Cell = iota
	Passage
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	}
	return "unknown"
}

// Pos is a cell coordinate. X is the column, Y is the row.
type Pos struct {
	X, Y int
}

// Add returns p shifted by (dx, dy)
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbour of p in direction d
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a generated maze. It has no exported mutators; once a
// generator returns it, it is safe to share between readers.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the grid height
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width
func (g *Grid) Cols() int { return g.cols }

// Start returns the agent start cell, always (0,0)
func (g *Grid) Start() Pos { return Pos{} }

// Goal returns the bottom-right cell
func (g *Grid) Goal() Pos { return Pos{X: g.cols - 1, Y: g.rows - 1} }

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// At returns the cell at p. Positions outside the grid read as Wall.
func (g *Grid) At(p Pos) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.cols+p.X]
}

// IsPassage reports whether p is inside the grid and open
func (g *Grid) IsPassage(p Pos) bool {
	return g.At(p) == Passage
}

func (g *Grid) set(p Pos, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Y*g.cols+p.X] = c
	}
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []Cell {
	row := make([]Cell, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])
	return row
}

// Cells returns a copy of the whole grid indexed [y][x]
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for y := range out {
		out[y] = g.Row(y)
	}
	return out
}

// Passages counts the open cells
func (g *Grid) Passages() int {
	n := 0
	for _, c := range g.cells {
		if c == Passage {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same shape and cells
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String draws the grid with '#' for walls and '.' for passages, one
// line per row. Parse reads the same format back.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y*g.cols+x] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from text rows where '#' is a wall and '.' or ' '
// is a passage. All rows must have the same width.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	g := newGrid(len(rows), len(rows[0]))
	for y, line := range rows {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, y, len(line), g.cols)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				g.cells[y*g.cols+x] = Wall
			case '.', ' ':
				g.cells[y*g.cols+x] = Passage
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrMalformedGrid, line[x], Pos{X: x, Y: y})
			}
		}
	}
	return g, nil
}
