package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

func mustParse(t *testing.T, rows ...string) *maze.Grid {
	t.Helper()
	grid, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("maze.Parse failed: %v", err)
	}
	return grid
}

func TestNewSession(t *testing.T) {
	s := NewSession(mustParse(t, "..", "#."))

	if s.Pos() != (maze.Pos{}) {
		t.Errorf("start position = %v, want (0,0)", s.Pos())
	}
	if s.Goal() != (maze.Pos{X: 1, Y: 1}) {
		t.Errorf("goal = %v, want (1,1)", s.Goal())
	}
	if s.State() != Active {
		t.Errorf("state = %v, want active", s.State())
	}
	if s.Moves() != 0 {
		t.Errorf("moves = %d, want 0", s.Moves())
	}
}

func TestAttemptMoveInvalidVector(t *testing.T) {
	s := NewSession(mustParse(t, "...", "...", "..."))

	tests := []struct {
		dx, dy int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{2, 0},
		{0, -2},
		{5, 5},
	}

	for _, tt := range tests {
		result, err := s.AttemptMove(tt.dx, tt.dy)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("AttemptMove(%d, %d) error = %v, want ErrInvalidDirection", tt.dx, tt.dy, err)
		}
		if result.Moved || result.Pos != (maze.Pos{}) {
			t.Errorf("AttemptMove(%d, %d) = %+v, want no movement", tt.dx, tt.dy, result)
		}
	}

	if s.Moves() != 0 {
		t.Errorf("moves = %d after invalid vectors, want 0", s.Moves())
	}
}

func TestAttemptMoveBlocked(t *testing.T) {
	s := NewSession(mustParse(t,
		".#.",
		"...",
		"#..",
	))

	tests := []struct {
		name   string
		dx, dy int
	}{
		{"off the top", 0, -1},
		{"off the left", -1, 0},
		{"into a wall", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.AttemptMove(tt.dx, tt.dy)
			if err != nil {
				t.Fatalf("blocked move returned error: %v", err)
			}
			if result.Moved || result.Solved {
				t.Errorf("AttemptMove(%d, %d) = %+v, want blocked", tt.dx, tt.dy, result)
			}
			if s.Pos() != (maze.Pos{}) {
				t.Errorf("position = %v, want (0,0)", s.Pos())
			}
		})
	}

	// Down into (0,1), then the wall at (0,2) blocks
	if result, _ := s.AttemptMove(0, 1); !result.Moved || result.Pos != (maze.Pos{X: 0, Y: 1}) {
		t.Fatalf("move south = %+v, want (0,1)", result)
	}
	if result, _ := s.AttemptMove(0, 1); result.Moved {
		t.Errorf("moved into wall at (0,2): %+v", result)
	}
	if s.Moves() != 1 {
		t.Errorf("moves = %d, want 1", s.Moves())
	}
}

func TestReachingGoalSolvesOnce(t *testing.T) {
	s := NewSession(mustParse(t, "..", "#."))

	first, err := s.AttemptMove(1, 0)
	if err != nil || !first.Moved || first.Solved {
		t.Fatalf("first move = %+v, %v; want moved, not solved", first, err)
	}

	second, err := s.AttemptMove(0, 1)
	if err != nil {
		t.Fatalf("second move failed: %v", err)
	}
	if !second.Solved || second.Pos != s.Goal() {
		t.Fatalf("second move = %+v, want solved at goal", second)
	}
	if s.State() != Solved {
		t.Errorf("state = %v, want solved", s.State())
	}

	// Every further intent is a no-op and never repeats the signal
	for _, d := range maze.AllDirections() {
		dx, dy := d.Delta()
		result, err := s.AttemptMove(dx, dy)
		if err != nil {
			t.Errorf("move %v after solve returned error: %v", d, err)
		}
		if result.Moved || result.Solved || result.Pos != s.Goal() {
			t.Errorf("move %v after solve = %+v, want no-op at goal", d, result)
		}
	}

	if s.Moves() != 2 || s.State() != Solved {
		t.Errorf("after solve: moves = %d, state = %v; want 2, solved", s.Moves(), s.State())
	}
}

func TestSingleCellSessionStartsSolved(t *testing.T) {
	grid, err := maze.Generate(1, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	s := NewSession(grid)
	if !s.Solved() {
		t.Fatal("1x1 session is not solved at creation")
	}

	result, err := s.AttemptMove(1, 0)
	if err != nil || result.Moved || result.Solved {
		t.Errorf("move on solved 1x1 = %+v, %v; want silent no-op", result, err)
	}
}

func TestMovesStayInBoundsAndOffWalls(t *testing.T) {
	for _, size := range []struct{ rows, cols int }{{15, 15}, {8, 13}, {1, 6}, {6, 1}} {
		grid, err := maze.Generate(size.rows, size.cols, rand.New(rand.NewSource(21)))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		s := NewSession(grid)

		for y := 0; y < grid.Rows(); y++ {
			for x := 0; x < grid.Cols(); x++ {
				from := maze.Pos{X: x, Y: y}
				if !grid.IsPassage(from) {
					continue
				}

				for _, d := range maze.AllDirections() {
					s.pos, s.state = from, Active

					result := s.Move(d)

					if !grid.InBounds(result.Pos) {
						t.Fatalf("%v from %v left the grid: %v", d, from, result.Pos)
					}
					if !grid.IsPassage(result.Pos) {
						t.Fatalf("%v from %v landed on a wall: %v", d, from, result.Pos)
					}
					target := from.Step(d)
					if result.Moved != grid.IsPassage(target) {
						t.Errorf("%v from %v: moved = %v, target passage = %v", d, from, result.Moved, grid.IsPassage(target))
					}
					if result.Moved && result.Pos != target {
						t.Errorf("%v from %v moved to %v, want %v", d, from, result.Pos, target)
					}
					if result.Solved != (result.Moved && target == grid.Goal()) {
						t.Errorf("%v from %v: solved = %v", d, from, result.Solved)
					}
				}
			}
		}
	}
}

func TestWalkingThreeByThreeReachesGoal(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		grid, err := maze.Generate(3, 3, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		path, ok := maze.ShortestPath(grid, grid.Start(), grid.Goal())
		if !ok {
			t.Fatalf("seed %d: no path to goal\n%s", seed, grid)
		}

		s := NewSession(grid)
		dirs := maze.Directions(path)
		if len(dirs) > 9 {
			t.Errorf("seed %d: solution takes %d moves on a 3x3 grid", seed, len(dirs))
		}

		var last MoveResult
		for i, d := range dirs {
			dx, dy := d.Delta()
			last, err = s.AttemptMove(dx, dy)
			if err != nil || !last.Moved {
				t.Fatalf("seed %d: step %d (%v) rejected: %+v, %v", seed, i, d, last, err)
			}
		}

		if !last.Solved || !s.Solved() {
			t.Errorf("seed %d: walked the path but not solved (at %v)", seed, s.Pos())
		}
	}
}

func TestSnapshot(t *testing.T) {
	grid := mustParse(t, "...", "##.")
	s := NewSession(grid)
	s.Move(maze.East)

	snap := s.Snapshot()
	if snap.SessionID != s.ID() {
		t.Errorf("snapshot id = %v, want %v", snap.SessionID, s.ID())
	}
	if snap.Grid != grid {
		t.Error("snapshot grid does not match session grid")
	}
	if snap.Agent != (maze.Pos{X: 1, Y: 0}) || snap.Moves != 1 {
		t.Errorf("snapshot agent = %v moves = %d, want (1,0) and 1", snap.Agent, snap.Moves)
	}
	if snap.Solved() {
		t.Error("snapshot reports solved")
	}

	// Snapshots are values; later moves do not change them
	s.Move(maze.East)
	if snap.Agent != (maze.Pos{X: 1, Y: 0}) {
		t.Errorf("snapshot changed after move: %v", snap.Agent)
	}
}

func TestStateString(t *testing.T) {
	if Active.String() != "active" || Solved.String() != "solved" || State(9).String() != "unknown" {
		t.Errorf("unexpected state names: %s %s %s", Active, Solved, State(9))
	}
}
