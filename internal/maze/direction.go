package maze

// Direction represents a cardinal direction. North is towards row 0.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the direction pointing back
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Delta returns the unit step for d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// DirectionOf maps a unit axis-aligned vector to its direction.
// Diagonal, zero and multi-cell vectors are reported as not ok.
func DirectionOf(dx, dy int) (Direction, bool) {
	switch {
	case dx == 0 && dy == -1:
		return North, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	}
	return 0, false
}
