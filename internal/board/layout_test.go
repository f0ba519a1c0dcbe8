package board

import (
	"testing"

	"github.com/lawnchairsociety/gridmaze/internal/input"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		cell       int
		wantW      int
		wantH      int
	}{
		{"default 20x20", 20, 20, 25, 500, 500 + 3*ButtonSize + 2*Padding},
		{"narrow maze widened for controls", 5, 3, 10, minControlWidth(), 50 + 3*ButtonSize + 2*Padding},
		{"single cell", 1, 1, 25, minControlWidth(), 25 + 3*ButtonSize + 2*Padding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.rows, tt.cols, tt.cell)
			w, h := l.CanvasSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	l := New(20, 20, 25)

	got := l.CellRect(maze.Pos{X: 3, Y: 2})
	want := Rect{X: 75, Y: 50, W: 25, H: 25}
	if got != want {
		t.Errorf("CellRect = %+v, want %+v", got, want)
	}

	// A maze narrower than the controls is centred
	narrow := New(2, 2, 10)
	r := narrow.CellRect(maze.Pos{})
	if wantX := (minControlWidth() - 20) / 2; r.X != wantX {
		t.Errorf("narrow maze origin X = %d, want %d", r.X, wantX)
	}
}

func TestCellAt(t *testing.T) {
	l := New(4, 4, 10)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := maze.Pos{X: x, Y: y}
			cx, cy := l.CellRect(p).Center()
			got, ok := l.CellAt(int(cx), int(cy))
			if !ok || got != p {
				t.Errorf("CellAt(centre of %v) = %v, %v", p, got, ok)
			}
		}
	}

	if _, ok := l.CellAt(0, 0); ok {
		t.Error("CellAt outside the centred maze should miss")
	}
	_, mazeH := l.MazeSize()
	if _, ok := l.CellAt(l.MazeRect().X, mazeH); ok {
		t.Error("CellAt in the control strip should miss")
	}
}

func TestButtonsDoNotOverlap(t *testing.T) {
	for _, l := range []*Layout{New(20, 20, 25), New(1, 1, 5), New(41, 61, 12)} {
		buttons := l.Buttons()
		if len(buttons) != 6 {
			t.Fatalf("expected 6 buttons, got %d", len(buttons))
		}

		w, h := l.CanvasSize()
		area := l.MazeRect()
		for i, a := range buttons {
			r := a.Rect
			if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
				t.Errorf("button %s %+v leaves the %dx%d canvas", a.Name, r, w, h)
			}
			if r.Y < area.Y+area.H {
				t.Errorf("button %s overlaps the maze", a.Name)
			}
			for _, b := range buttons[i+1:] {
				if overlaps(r, b.Rect) {
					t.Errorf("buttons %s and %s overlap", a.Name, b.Name)
				}
			}
		}
	}
}

func TestHitTest(t *testing.T) {
	l := New(20, 20, 25)

	for _, b := range l.Buttons() {
		cx, cy := b.Rect.Center()
		got, ok := l.HitTest(int(cx), int(cy))
		if !ok || got.Name != b.Name {
			t.Errorf("HitTest(centre of %s) = %q, %v", b.Name, got.Name, ok)
		}
		if _, err := input.ParseButton(got.Name); err != nil {
			t.Errorf("button %s has no binding: %v", b.Name, err)
		}
	}

	if _, ok := l.HitTest(10, 10); ok {
		t.Error("HitTest inside the maze should miss")
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
