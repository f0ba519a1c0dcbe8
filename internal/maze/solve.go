package maze

// Reachable returns, for every cell, whether it can be reached from
// start by stepping between passage cells. The result is indexed [y][x].
func Reachable(g *Grid, start Pos) [][]bool {
	seen := make([][]bool, g.rows)
	for y := range seen {
		seen[y] = make([]bool, g.cols)
	}
	if !g.IsPassage(start) {
		return seen
	}

	queue := []Pos{start}
	seen[start.Y][start.X] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range AllDirections() {
			n := cur.Step(d)
			if g.IsPassage(n) && !seen[n.Y][n.X] {
				seen[n.Y][n.X] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// ShortestPath finds a shortest passage-only path from one cell to
// another with a breadth-first search. The path includes both ends. It
// returns false when either end is a wall or no path exists.
func ShortestPath(g *Grid, from, to Pos) ([]Pos, bool) {
	if !g.IsPassage(from) || !g.IsPassage(to) {
		return nil, false
	}

	prev := make(map[Pos]Pos)
	prev[from] = from
	queue := []Pos{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			break
		}
		for _, d := range AllDirections() {
			n := cur.Step(d)
			if _, seen := prev[n]; seen || !g.IsPassage(n) {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	if _, ok := prev[to]; !ok {
		return nil, false
	}

	var path []Pos
	for p := to; p != from; p = prev[p] {
		path = append(path, p)
	}
	path = append(path, from)

	// Reverse into start-to-end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Directions converts a path into the moves that walk it.
func Directions(path []Pos) []Direction {
	if len(path) < 2 {
		return nil
	}
	dirs := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		d, ok := DirectionOf(path[i].X-path[i-1].X, path[i].Y-path[i-1].Y)
		if !ok {
			return dirs
		}
		dirs = append(dirs, d)
	}
	return dirs
}
