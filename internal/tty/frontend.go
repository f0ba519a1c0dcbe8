// Package tty plays the game in a terminal. The terminal is put in raw
// mode, every keystroke is decoded by package input, and the whole
// maze is redrawn after each intent.
package tty

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/gridmaze/internal/game"
	"github.com/lawnchairsociety/gridmaze/internal/input"
	"github.com/lawnchairsociety/gridmaze/internal/logger"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	newline     = "\r\n"

	winMessage = "Goal! Congratulations!"
	helpLine   = "arrows/wasd move  r retry  h hint  q quit"
)

// Frontend reads keystrokes from in and draws frames to out
type Frontend struct {
	game *game.Game
	in   io.Reader
	out  io.Writer

	decoder  input.Decoder
	showHint bool
}

// New creates a terminal frontend. in and out are usually the raw-mode
// stdin and stdout.
func New(g *game.Game, in io.Reader, out io.Writer) *Frontend {
	return &Frontend{game: g, in: in, out: out}
}

// Run draws the first frame and processes input until the player quits
// or in reaches EOF.
func (f *Frontend) Run() error {
	if err := f.draw(); err != nil {
		return err
	}

	buf := make([]byte, 64)
	for {
		n, err := f.in.Read(buf)
		if n > 0 {
			quit, drawErr := f.handle(buf[:n])
			if drawErr != nil {
				return drawErr
			}
			if quit {
				logger.Debug("Terminal frontend quit")
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read terminal: %w", err)
		}
	}
}

// handle applies every intent decoded from chunk and redraws once
func (f *Frontend) handle(chunk []byte) (quit bool, err error) {
	intents := f.decoder.Feed(chunk)
	if len(intents) == 0 {
		return false, nil
	}

	for _, intent := range intents {
		switch intent.Action {
		case input.Move:
			f.game.Move(intent.Dir)
		case input.Restart:
			f.game.Restart()
		case input.ToggleHint:
			f.showHint = !f.showHint
		case input.Quit:
			return true, nil
		}
	}
	return false, f.draw()
}

func (f *Frontend) draw() error {
	if _, err := io.WriteString(f.out, Frame(f.game.Snapshot(), f.showHint)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Frame renders one full screen for snap: clear, bordered maze, status.
func Frame(snap game.Snapshot, showHint bool) string {
	agent := snap.Agent
	opts := maze.RenderOptions{
		Agent:    &agent,
		ShowGoal: true,
		Border:   true,
		Newline:  newline,
	}
	if showHint && !snap.Solved() {
		if path, ok := maze.ShortestPath(snap.Grid, snap.Agent, snap.Goal); ok {
			opts.Path = path
		}
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(maze.Render(snap.Grid, opts))
	b.WriteString(statusLine(snap))
	b.WriteString(newline)
	return b.String()
}

func statusLine(snap game.Snapshot) string {
	id := snap.SessionID.String()[:8]
	if snap.Solved() {
		return fmt.Sprintf("%s  moves: %d  session: %s  r to play again, q to quit", winMessage, snap.Moves, id)
	}
	return fmt.Sprintf("moves: %d  session: %s  %s", snap.Moves, id, helpLine)
}
