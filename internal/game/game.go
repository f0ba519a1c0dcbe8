package game

import (
	"fmt"
	"sync"

	"github.com/lawnchairsociety/gridmaze/internal/logger"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// Game owns the current session and replaces it on restart. Frontends
// talk to the Game rather than holding on to a Session, so they can
// never pair a new grid with a stale position.
type Game struct {
	gen *maze.Generator

	mu      sync.RWMutex
	session *Session
}

// New creates a game for rows × cols mazes and starts the first session.
func New(rows, cols int, rng maze.Source) (*Game, error) {
	gen, err := maze.NewGenerator(rows, cols, rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{gen: gen}
	g.Restart()
	return g, nil
}

// Restart generates a new maze and discards the previous session.
func (g *Game) Restart() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.session
	s := NewSession(g.gen.Generate())
	g.session = s

	if previous != nil {
		logger.Info("Session discarded",
			"session_id", previous.ID(),
			"state", previous.State().String(),
			"moves", previous.Moves())
	}
	logger.Info("Session started",
		"session_id", s.ID(),
		"rows", s.Grid().Rows(),
		"cols", s.Grid().Cols(),
		"lattice_cells", g.gen.Visited())
	if s.Solved() {
		logger.Info("Session solved", "session_id", s.ID(), "moves", 0)
	}
	return s
}

// Move applies one directional intent to the current session.
func (g *Game) Move(d maze.Direction) MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apply(g.session.Move(d))
}

// AttemptMove applies a raw (dx, dy) intent to the current session.
func (g *Game) AttemptMove(dx, dy int) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.session.AttemptMove(dx, dy)
	if err != nil {
		return result, err
	}
	return g.apply(result), nil
}

func (g *Game) apply(result MoveResult) MoveResult {
	if result.Solved {
		logger.Info("Session solved",
			"session_id", g.session.ID(),
			"moves", g.session.Moves())
	}
	return result
}

// Snapshot returns a read-only view of the current session
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session.Snapshot()
}
