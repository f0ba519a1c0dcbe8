package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Source is the randomness the generator draws from. *rand.Rand
// satisfies it; seed one to get reproducible mazes.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded math/rand source. A zero seed picks one
// from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator carves perfect mazes with a randomized depth-first
// traversal (recursive backtracker) run on an explicit stack.
type Generator struct {
	rows, cols int
	rng        Source

	visited []bool
	carved  int // lattice cells visited by the last carve
	edges   int // walls knocked down between lattice cells
}

// NewGenerator creates a generator for rows × cols grids
func NewGenerator(rows, cols int, rng Source) (*Generator, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rng == nil {
		rng = NewSource(0)
	}
	return &Generator{rows: rows, cols: cols, rng: rng}, nil
}

// Generate is shorthand for NewGenerator followed by Generate.
func Generate(rows, cols int, rng Source) (*Grid, error) {
	gen, err := NewGenerator(rows, cols, rng)
	if err != nil {
		return nil, err
	}
	return gen.Generate(), nil
}

// Generate carves a fresh maze and opens the goal corner.
func (g *Generator) Generate() *Grid {
	grid := g.Carve()
	openGoal(grid)
	return grid
}

// Visited returns how many lattice cells the last carve reached.
func (g *Generator) Visited() int { return g.carved }

// Edges returns how many connecting walls the last carve removed.
func (g *Generator) Edges() int { return g.edges }

// frame is one pending lattice cell on the carve stack; next indexes
// the first of its shuffled directions not yet tried.
type frame struct {
	pos  Pos
	dirs [4]Direction
	next int
}

// Carve runs the depth-first carve alone, without the goal override.
// The result is a spanning tree over the lattice cells.
func (g *Generator) Carve() *Grid {
	grid := newGrid(g.rows, g.cols)
	g.visited = make([]bool, g.rows*g.cols)
	g.carved = 0
	g.edges = 0

	stack := []*frame{g.visit(grid, Pos{})}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := top.dirs[top.next]
		top.next++

		dx, dy := dir.Delta()
		next := top.pos.Add(2*dx, 2*dy)
		if !grid.InBounds(next) || g.visited[next.Y*g.cols+next.X] {
			continue
		}

		grid.set(top.pos.Add(dx, dy), Passage)
		g.edges++
		stack = append(stack, g.visit(grid, next))
	}

	return grid
}

// visit marks p visited, opens it and returns its stack frame with the
// directions already shuffled.
func (g *Generator) visit(grid *Grid, p Pos) *frame {
	g.visited[p.Y*g.cols+p.X] = true
	g.carved++
	grid.set(p, Passage)

	f := &frame{pos: p, dirs: [4]Direction{North, East, South, West}}
	g.shuffle(f.dirs[:])
	return f
}

// shuffle is a Fisher-Yates shuffle, so every order is equally likely.
func (g *Generator) shuffle(dirs []Direction) {
	for i := len(dirs) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// openGoal forces the goal and its left and upper neighbours open. On
// grids whose lattice does not reach the far corner this is what joins
// the goal to the maze.
func openGoal(grid *Grid) {
	goal := grid.Goal()
	grid.set(goal, Passage)
	if grid.cols >= 2 {
		grid.set(goal.Add(-1, 0), Passage)
	}
	if grid.rows >= 2 {
		grid.set(goal.Add(0, -1), Passage)
	}
}
