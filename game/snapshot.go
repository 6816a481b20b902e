package game

// Snapshot is one turn's full view of the grid: dimensions, per-cell
// occupancy and the reported players. It is replaced wholesale each turn and
// never mutated in place; everything downstream treats it as read-only.
type Snapshot struct {
	Frame   int
	Width   int
	Height  int
	Cells   [][]byte // indexed [y][x], 0 = empty, nonzero = trail or body
	Players []Player
}

// NewSnapshot allocates an empty width x height grid.
func NewSnapshot(width, height int) *Snapshot {
	cells := make([][]byte, height)
	for y := range cells {
		cells[y] = make([]byte, width)
	}
	return &Snapshot{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether the cell lies on the grid.
func (s *Snapshot) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// IsEmpty reports whether the cell is unoccupied. Valid only for in-bounds
// cells; callers check InBounds first.
func (s *Snapshot) IsEmpty(c Cell) bool {
	return s.Cells[c.Y][c.X] == 0
}

// FindPlayer returns the player with the given name, if present.
func (s *Snapshot) FindPlayer(name string) (Player, bool) {
	for _, p := range s.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}
