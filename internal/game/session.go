// Package game tracks a single player walking a generated maze.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// ErrInvalidDirection is returned for move vectors that are not a
// single axis-aligned step.
var ErrInvalidDirection = errors.New("move must be one unit step along an axis")

// State is the session lifecycle state
type State int

const (
	Active State = iota
	Solved       // terminal; only a new session leaves it
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// MoveResult reports the outcome of one move attempt
type MoveResult struct {
	Pos   maze.Pos // position after the attempt
	Moved bool     // the agent changed cells

	// Solved is true only for the move that reached the goal, so a
	// renderer can show its win indicator exactly once.
	Solved bool
}

// Session is one play-through of one maze. The grid is never written
// after the session is created.
type Session struct {
	id    uuid.UUID
	grid  *maze.Grid
	pos   maze.Pos
	goal  maze.Pos
	state State
	moves int
}

// NewSession places the agent on the start cell of grid. A grid whose
// start is its goal (1x1) starts out solved.
func NewSession(grid *maze.Grid) *Session {
	s := &Session{
		id:   uuid.New(),
		grid: grid,
		pos:  grid.Start(),
		goal: grid.Goal(),
	}
	if s.pos == s.goal {
		s.state = Solved
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the maze being played
func (s *Session) Grid() *maze.Grid { return s.grid }

// Pos returns the agent position
func (s *Session) Pos() maze.Pos { return s.pos }

// Goal returns the goal cell
func (s *Session) Goal() maze.Pos { return s.goal }

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Solved reports whether the agent has reached the goal
func (s *Session) Solved() bool { return s.state == Solved }

// Moves returns the number of accepted moves
func (s *Session) Moves() int { return s.moves }

// AttemptMove tries to step the agent by (dx, dy). The vector must be
// one of (0,-1), (0,1), (-1,0), (1,0). Steps off the grid or into a
// wall leave the agent where it is and are not errors.
func (s *Session) AttemptMove(dx, dy int) (MoveResult, error) {
	dir, ok := maze.DirectionOf(dx, dy)
	if !ok {
		return MoveResult{Pos: s.pos}, ErrInvalidDirection
	}
	return s.Move(dir), nil
}

// Move steps the agent one cell in direction d.
func (s *Session) Move(d maze.Direction) MoveResult {
	if s.state == Solved || !d.Valid() {
		return MoveResult{Pos: s.pos}
	}

	next := s.pos.Step(d)
	if !s.grid.IsPassage(next) {
		return MoveResult{Pos: s.pos}
	}

	s.pos = next
	s.moves++

	result := MoveResult{Pos: next, Moved: true}
	if next == s.goal {
		s.state = Solved
		result.Solved = true
	}
	return result
}

// Snapshot is a read-only view of a session for renderers
type Snapshot struct {
	SessionID uuid.UUID
	Grid      *maze.Grid
	Agent     maze.Pos
	Goal      maze.Pos
	State     State
	Moves     int
}

// Solved reports whether the snapshot was taken after the goal was reached
func (s Snapshot) Solved() bool { return s.State == Solved }

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID: s.id,
		Grid:      s.grid,
		Agent:     s.pos,
		Goal:      s.goal,
		State:     s.state,
		Moves:     s.moves,
	}
}
