package maze

import "strings"

// Glyphs used by Render
const (
	GlyphWall    = '#'
	GlyphPassage = ' '
	GlyphAgent   = '@'
	GlyphGoal    = 'G'
	GlyphPath    = '.'
)

// RenderOptions selects the overlays drawn on top of the grid
type RenderOptions struct {
	Agent    *Pos  // drawn as '@' when set
	Path     []Pos // drawn as '.' under the agent and goal
	ShowGoal bool
	Border   bool   // frame the grid with a ring of walls
	Newline  string // line separator, "\n" when empty
}

// Render draws the grid as text for terminals and logs.
func Render(g *Grid, opts RenderOptions) string {
	nl := opts.Newline
	if nl == "" {
		nl = "\n"
	}

	onPath := make(map[Pos]bool, len(opts.Path))
	for _, p := range opts.Path {
		onPath[p] = true
	}

	var b strings.Builder
	border := func() {
		b.WriteString(strings.Repeat(string(GlyphWall), g.cols+2))
		b.WriteString(nl)
	}

	if opts.Border {
		border()
	}
	for y := 0; y < g.rows; y++ {
		if opts.Border {
			b.WriteRune(GlyphWall)
		}
		for x := 0; x < g.cols; x++ {
			p := Pos{X: x, Y: y}
			switch {
			case opts.Agent != nil && *opts.Agent == p:
				b.WriteRune(GlyphAgent)
			case opts.ShowGoal && p == g.Goal():
				b.WriteRune(GlyphGoal)
			case onPath[p]:
				b.WriteRune(GlyphPath)
			case g.At(p) == Wall:
				b.WriteRune(GlyphWall)
			default:
				b.WriteRune(GlyphPassage)
			}
		}
		if opts.Border {
			b.WriteRune(GlyphWall)
		}
		b.WriteString(nl)
	}
	if opts.Border {
		border()
	}

	return b.String()
}
