package game

import "fmt"

// Cell is a grid coordinate. It is a pure value: compare, copy and use as a
// map key freely.
type Cell struct {
	X int
	Y int
}

// Add returns the cell displaced by the given vector.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// ManhattanDistance returns the L1 distance between two cells.
func ManhattanDistance(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four cardinal moves. The declaration order
// North, East, South, West matters: it is the tie-break order whenever two
// candidate moves score equally, and North doubles as the fallback when no
// legal move exists.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four moves in tie-break order.
var Directions = [4]Direction{North, East, South, West}

// Vector returns the unit displacement for the direction. Y grows downward,
// so North is (0,-1).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Next returns the cell reached by moving one step from c in direction d.
func (d Direction) Next(c Cell) Cell {
	dx, dy := d.Vector()
	return c.Add(dx, dy)
}

// Player is one competitor as reported in a snapshot.
type Player struct {
	Name  string
	Head  Cell
	Alive bool
}
