// Package ui is the windowed frontend, built on Ebiten. It reads game
// snapshots to draw and sends every key press or button tap through
// package input before it reaches the game.
package ui

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lawnchairsociety/gridmaze/internal/board"
	"github.com/lawnchairsociety/gridmaze/internal/game"
	"github.com/lawnchairsociety/gridmaze/internal/input"
	"github.com/lawnchairsociety/gridmaze/internal/logger"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// keyBindings maps Ebiten keys to intents. Letter keys reuse the
// terminal bindings so both frontends agree.
var keyBindings = map[ebiten.Key]input.Intent{
	ebiten.KeyArrowUp:    input.MoveIntent(maze.North),
	ebiten.KeyArrowDown:  input.MoveIntent(maze.South),
	ebiten.KeyArrowLeft:  input.MoveIntent(maze.West),
	ebiten.KeyArrowRight: input.MoveIntent(maze.East),
	ebiten.KeyEnter:      {Action: input.Restart},
	ebiten.KeyEscape:     {Action: input.Quit},
}

var letterKeys = map[ebiten.Key]rune{
	ebiten.KeyW: 'w',
	ebiten.KeyA: 'a',
	ebiten.KeyS: 's',
	ebiten.KeyD: 'd',
	ebiten.KeyR: 'r',
	ebiten.KeyH: 'h',
	ebiten.KeyQ: 'q',
}

// App implements ebiten.Game
type App struct {
	game   *game.Game
	layout *board.Layout
	title  string

	labelFace  *text.GoTextFace
	bannerFace *text.GoTextFace

	showHint bool
	hint     hintCache
}

// hintCache holds the last solution path so BFS only reruns after the
// agent moves or the session changes.
type hintCache struct {
	session uuid.UUID
	from    maze.Pos
	path    []maze.Pos
	valid   bool
}

// New builds the window frontend for g
func New(g *game.Game, layout *board.Layout, title string) (*App, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	return &App{
		game:       g,
		layout:     layout,
		title:      title,
		labelFace:  &text.GoTextFace{Source: regular, Size: 14},
		bannerFace: &text.GoTextFace{Source: bold, Size: 20},
	}, nil
}

// Run opens the window and blocks until it is closed
func (a *App) Run() error {
	w, h := a.layout.CanvasSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.title)
	ebiten.SetTPS(60)

	logger.Info("Window opened", "width", w, "height", h)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info("Window closed")
	return nil
}

// Update polls input once per tick
func (a *App) Update() error {
	for _, intent := range a.pollIntents() {
		if a.apply(intent) {
			return ebiten.Termination
		}
	}
	return nil
}

// Layout keeps a fixed logical canvas; Ebiten scales it to the window
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.layout.CanvasSize()
}

func (a *App) pollIntents() []input.Intent {
	var intents []input.Intent

	for key, intent := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			intents = append(intents, intent)
		}
	}
	for key, r := range letterKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if intent, err := input.ParseKey(r); err == nil {
			intents = append(intents, intent)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if intent, ok := a.tap(ebiten.CursorPosition()); ok {
			intents = append(intents, intent)
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if intent, ok := a.tap(ebiten.TouchPosition(id)); ok {
			intents = append(intents, intent)
		}
	}

	return intents
}

func (a *App) tap(x, y int) (input.Intent, bool) {
	b, ok := a.layout.HitTest(x, y)
	if !ok {
		return input.Intent{}, false
	}
	intent, err := input.ParseButton(b.Name)
	if err != nil {
		logger.Warning("Unbound button", "button", b.Name, "error", err)
		return input.Intent{}, false
	}
	return intent, true
}

// apply runs one intent and reports whether the app should quit
func (a *App) apply(intent input.Intent) bool {
	switch intent.Action {
	case input.Move:
		a.game.Move(intent.Dir)
	case input.Restart:
		a.game.Restart()
	case input.ToggleHint:
		a.showHint = !a.showHint
		logger.Debug("Hint toggled", "visible", a.showHint)
	case input.Quit:
		return true
	}
	return false
}

func (a *App) hintPath(snap game.Snapshot) []maze.Pos {
	c := &a.hint
	if c.valid && c.session == snap.SessionID && c.from == snap.Agent {
		return c.path
	}
	path, _ := maze.ShortestPath(snap.Grid, snap.Agent, snap.Goal)
	*c = hintCache{session: snap.SessionID, from: snap.Agent, path: path, valid: true}
	return path
}
