package bot

import "github.com/SebastianPerilla/cycles/game"

// ReachableArea counts the empty cells reachable from start by repeated
// cardinal moves through empty, in-bounds cells. The start cell itself is
// counted once if it is legal; callers pass the post-move cell, so the cell
// the bot is about to vacate is still marked occupied in the snapshot.
//
// BFS over a FIFO worklist. Neighbors are pushed unconditionally and
// filtered when popped: a popped cell that is already visited, off the grid
// or occupied is discarded. The extra queue churn is bounded because every
// legal cell is visited exactly once and everything else is dropped in O(1).
func ReachableArea(snap *game.Snapshot, start game.Cell) int {
	toVisit := []game.Cell{start}
	visited := make(map[game.Cell]bool)
	area := 0

	for len(toVisit) > 0 {
		current := toVisit[0]
		toVisit = toVisit[1:]

		if visited[current] || !snap.InBounds(current) || !snap.IsEmpty(current) {
			continue
		}
		visited[current] = true
		area++

		for _, dir := range game.Directions {
			toVisit = append(toVisit, dir.Next(current))
		}
	}
	return area
}
