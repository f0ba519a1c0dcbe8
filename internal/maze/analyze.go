package maze

// Stats summarises the structure of a grid
type Stats struct {
	Rows, Cols int
	Passages   int

	// LatticeCells counts the even-coordinate cells; LatticeOpen counts
	// the ones that are passages.
	LatticeCells int
	LatticeOpen  int

	// LatticeEdges counts open cells that sit between two open lattice
	// cells. A carved maze has exactly LatticeCells-1 of them.
	LatticeEdges int

	// Adjacencies counts pairs of 4-adjacent passage cells. The passage
	// graph is a tree when it is connected and has Passages-1 of them.
	Adjacencies int

	DeadEnds       int
	Connected      bool // every passage is reachable from the start
	GoalReachable  bool
	SolutionLength int // moves on the shortest start-goal path, -1 if none
}

// IsTree reports whether the passage cells form a single tree.
func (s Stats) IsTree() bool {
	return s.Connected && s.Passages > 0 && s.Adjacencies == s.Passages-1
}

// Analyze inspects a grid
func Analyze(g *Grid) Stats {
	s := Stats{
		Rows:           g.rows,
		Cols:           g.cols,
		SolutionLength: -1,
	}

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			p := Pos{X: x, Y: y}
			lattice := x%2 == 0 && y%2 == 0
			if lattice {
				s.LatticeCells++
			}
			if !g.IsPassage(p) {
				continue
			}

			s.Passages++
			if lattice {
				s.LatticeOpen++
			}

			// Count each adjacency once, from its west or north end
			if g.IsPassage(p.Add(1, 0)) {
				s.Adjacencies++
			}
			if g.IsPassage(p.Add(0, 1)) {
				s.Adjacencies++
			}

			if isLatticeEdge(g, p) {
				s.LatticeEdges++
			}

			exits := 0
			for _, d := range AllDirections() {
				if g.IsPassage(p.Step(d)) {
					exits++
				}
			}
			if exits == 1 {
				s.DeadEnds++
			}
		}
	}

	seen := Reachable(g, g.Start())
	reached := 0
	for _, row := range seen {
		for _, ok := range row {
			if ok {
				reached++
			}
		}
	}
	s.Connected = reached == s.Passages

	goal := g.Goal()
	s.GoalReachable = seen[goal.Y][goal.X]
	if s.GoalReachable {
		if path, ok := ShortestPath(g, g.Start(), goal); ok {
			s.SolutionLength = len(path) - 1
		}
	}

	return s
}

// isLatticeEdge reports whether p joins two open lattice cells
func isLatticeEdge(g *Grid, p Pos) bool {
	switch {
	case p.X%2 == 1 && p.Y%2 == 0:
		return g.IsPassage(p.Add(-1, 0)) && g.IsPassage(p.Add(1, 0))
	case p.X%2 == 0 && p.Y%2 == 1:
		return g.IsPassage(p.Add(0, -1)) && g.IsPassage(p.Add(0, 1))
	}
	return false
}
