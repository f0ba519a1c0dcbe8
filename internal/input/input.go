// Package input turns raw key presses and button names into intents.
// Every frontend funnels through here so that arrow keys, on-screen
// buttons and terminal bytes all reach the game the same way.
package input

import (
	"errors"
	"strings"

	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// ErrUnknownControl is returned for a button or key with no binding
var ErrUnknownControl = errors.New("unknown control")

// Action is what an intent asks the game to do
type Action int

const (
	None Action = iota
	Move
	Restart
	ToggleHint
	Quit
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Move:
		return "move"
	case Restart:
		return "restart"
	case ToggleHint:
		return "hint"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Intent is one decoded user request. Dir is only meaningful for Move.
type Intent struct {
	Action Action
	Dir    maze.Direction
}

// MoveIntent returns a move intent in direction d
func MoveIntent(d maze.Direction) Intent {
	return Intent{Action: Move, Dir: d}
}

// Button names used by on-screen controls
const (
	ButtonUp    = "up"
	ButtonDown  = "down"
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonRetry = "retry"
	ButtonHint  = "hint"
)

// ParseButton maps an on-screen control name to its intent.
func ParseButton(name string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ButtonUp:
		return MoveIntent(maze.North), nil
	case ButtonDown:
		return MoveIntent(maze.South), nil
	case ButtonLeft:
		return MoveIntent(maze.West), nil
	case ButtonRight:
		return MoveIntent(maze.East), nil
	case ButtonRetry, "start":
		return Intent{Action: Restart}, nil
	case ButtonHint:
		return Intent{Action: ToggleHint}, nil
	}
	return Intent{}, ErrUnknownControl
}

// ParseKey maps a printable key to its intent. WASD moves, r retries,
// h toggles the hint, q quits.
func ParseKey(r rune) (Intent, error) {
	switch r {
	case 'w', 'W':
		return MoveIntent(maze.North), nil
	case 's', 'S':
		return MoveIntent(maze.South), nil
	case 'a', 'A':
		return MoveIntent(maze.West), nil
	case 'd', 'D':
		return MoveIntent(maze.East), nil
	case 'r', 'R', '\r', '\n':
		return Intent{Action: Restart}, nil
	case 'h', 'H':
		return Intent{Action: ToggleHint}, nil
	case 'q', 'Q':
		return Intent{Action: Quit}, nil
	}
	return Intent{}, ErrUnknownControl
}
