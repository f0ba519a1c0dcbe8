// Package board computes where the window frontend draws things: the
// maze cells, the on-screen direction pad and the retry button. It has
// no graphics dependency so the geometry can be tested headless.
package board

import (
	"github.com/lawnchairsociety/gridmaze/internal/input"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

const (
	ButtonSize = 36 // edge of a d-pad button
	Padding    = 6

	retryWidth  = 100
	hintWidth   = 60
	controlRows = 3 // the d-pad is a 3x3 block with the centre empty
)

// Rect is an axis-aligned pixel rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the pixel (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle of r
func (r Rect) Center() (x, y float32) {
	return float32(r.X) + float32(r.W)/2, float32(r.Y) + float32(r.H)/2
}

// Button is an on-screen control. Name is one of the input.Button*
// constants.
type Button struct {
	Name  string
	Label string
	Rect  Rect
}

// Layout places the maze above a strip of touch controls.
type Layout struct {
	Rows, Cols int
	CellSize   int

	width   int
	offsetX int
	buttons []Button
}

// New computes the layout for a rows × cols maze
func New(rows, cols, cellSize int) *Layout {
	l := &Layout{Rows: rows, Cols: cols, CellSize: cellSize}

	mazeW := cols * cellSize
	l.width = max(mazeW, minControlWidth())
	l.offsetX = (l.width - mazeW) / 2
	l.buttons = l.placeButtons()
	return l
}

func minControlWidth() int {
	return controlRows*ButtonSize + retryWidth + hintWidth + 6*Padding
}

// MazeSize returns the maze area in pixels
func (l *Layout) MazeSize() (w, h int) {
	return l.Cols * l.CellSize, l.Rows * l.CellSize
}

// ControlHeight returns the height of the control strip
func (l *Layout) ControlHeight() int {
	return controlRows*ButtonSize + 2*Padding
}

// CanvasSize returns the full window size: maze plus controls
func (l *Layout) CanvasSize() (w, h int) {
	_, mazeH := l.MazeSize()
	return l.width, mazeH + l.ControlHeight()
}

// MazeRect returns the area the maze is drawn in
func (l *Layout) MazeRect() Rect {
	w, h := l.MazeSize()
	return Rect{X: l.offsetX, Y: 0, W: w, H: h}
}

// CellRect returns the pixel rectangle of cell p
func (l *Layout) CellRect(p maze.Pos) Rect {
	return Rect{
		X: l.offsetX + p.X*l.CellSize,
		Y: p.Y * l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// CellAt maps a pixel back to the maze cell under it
func (l *Layout) CellAt(x, y int) (maze.Pos, bool) {
	if !l.MazeRect().Contains(x, y) {
		return maze.Pos{}, false
	}
	return maze.Pos{X: (x - l.offsetX) / l.CellSize, Y: y / l.CellSize}, true
}

// Buttons returns the on-screen controls
func (l *Layout) Buttons() []Button {
	return l.buttons
}

// HitTest returns the control under pixel (x, y)
func (l *Layout) HitTest(x, y int) (Button, bool) {
	for _, b := range l.buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

func (l *Layout) placeButtons() []Button {
	_, mazeH := l.MazeSize()
	top := mazeH + Padding

	// D-pad on the left third
	padX := Padding * 2
	slot := func(col, row int) Rect {
		return Rect{X: padX + col*ButtonSize, Y: top + row*ButtonSize, W: ButtonSize, H: ButtonSize}
	}

	midY := top + ButtonSize
	retry := Rect{X: l.width - retryWidth - 2*Padding, Y: midY, W: retryWidth, H: ButtonSize}
	hint := Rect{X: retry.X - hintWidth - Padding, Y: midY, W: hintWidth, H: ButtonSize}

	return []Button{
		{Name: input.ButtonUp, Label: "^", Rect: slot(1, 0)},
		{Name: input.ButtonLeft, Label: "<", Rect: slot(0, 1)},
		{Name: input.ButtonRight, Label: ">", Rect: slot(2, 1)},
		{Name: input.ButtonDown, Label: "v", Rect: slot(1, 2)},
		{Name: input.ButtonHint, Label: "Hint", Rect: hint},
		{Name: input.ButtonRetry, Label: "Retry", Rect: retry},
	}
}
