package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lawnchairsociety/gridmaze/internal/board"
	"github.com/lawnchairsociety/gridmaze/internal/game"
	"github.com/lawnchairsociety/gridmaze/internal/maze"
)

// Palette
var (
	colorBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorWall       = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}
	colorPassage    = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorGoal       = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	colorPlayer     = color.RGBA{R: 0x1e, G: 0x64, B: 0xff, A: 0xff}
	colorHint       = color.RGBA{R: 0x5a, G: 0xc8, B: 0x5a, A: 0xff}
	colorButton     = color.RGBA{R: 0x50, G: 0x50, B: 0x5a, A: 0xff}
	colorLabel      = color.White
	colorBanner     = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	colorBannerText = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

const winMessage = "Goal! Congratulations!"

// Draw renders the current snapshot
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := a.game.Snapshot()
	a.drawMaze(screen, snap)
	if a.showHint && !snap.Solved() {
		a.drawHint(screen, a.hintPath(snap))
	}
	a.drawPlayer(screen, snap.Agent)
	a.drawControls(screen, snap)

	if snap.Solved() {
		a.drawBanner(screen)
	}
}

func (a *App) drawMaze(screen *ebiten.Image, snap game.Snapshot) {
	g := snap.Grid
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := maze.Pos{X: x, Y: y}
			c := colorWall
			switch {
			case p == snap.Goal:
				c = colorGoal
			case g.IsPassage(p):
				c = colorPassage
			}
			fillRect(screen, a.layout.CellRect(p), c)
		}
	}
}

func (a *App) drawHint(screen *ebiten.Image, path []maze.Pos) {
	size := float32(a.layout.CellSize) / 4
	for _, p := range path {
		cx, cy := a.layout.CellRect(p).Center()
		vector.DrawFilledRect(screen, cx-size/2, cy-size/2, size, size, colorHint, false)
	}
}

func (a *App) drawPlayer(screen *ebiten.Image, p maze.Pos) {
	cx, cy := a.layout.CellRect(p).Center()
	radius := float32(a.layout.CellSize) * 0.35
	vector.DrawFilledCircle(screen, cx, cy, radius, colorPlayer, true)
}

func (a *App) drawControls(screen *ebiten.Image, snap game.Snapshot) {
	for _, b := range a.layout.Buttons() {
		fillRect(screen, b.Rect, colorButton)
		cx, cy := b.Rect.Center()
		drawText(screen, b.Label, a.labelFace, float64(cx), float64(cy), colorLabel)
	}

	// Move counter sits between the d-pad and the hint button
	_, mazeH := a.layout.MazeSize()
	x := float64(3*board.ButtonSize + 4*board.Padding)
	y := float64(mazeH + board.Padding + board.ButtonSize/2)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorLabel)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("Moves: %d", snap.Moves), a.labelFace, op)
}

func (a *App) drawBanner(screen *ebiten.Image) {
	area := a.layout.MazeRect()
	w, h := text.Measure(winMessage, a.bannerFace, 0)
	boxW, boxH := float32(w)+24, float32(h)+16

	cx, cy := area.Center()
	vector.DrawFilledRect(screen, cx-boxW/2, cy-boxH/2, boxW, boxH, colorBanner, false)
	drawText(screen, winMessage, a.bannerFace, float64(cx), float64(cy), colorBannerText)
}

func fillRect(screen *ebiten.Image, r board.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawText centres s on (x, y)
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
