package bot

import "github.com/SebastianPerilla/cycles/game"

// PredictNextHead estimates where an opponent's head moves next by replaying
// the same greedy safety heuristic the bot itself uses, one ply ahead: among
// the legal neighbors of the opponent's head, pick the one with the largest
// reachable area. Ties go to the first candidate seen in North/East/South/
// West order. If no candidate yields a positive area (including when the
// opponent is fully boxed in), the prediction degrades to the current head
// unchanged. A heuristic, not knowledge of the opponent's actual policy.
func PredictNextHead(snap *game.Snapshot, head game.Cell) game.Cell {
	best := head
	bestArea := 0

	for _, dir := range game.Directions {
		next := dir.Next(head)
		if !snap.InBounds(next) || !snap.IsEmpty(next) {
			continue
		}
		if area := ReachableArea(snap, next); area > bestArea {
			bestArea = area
			best = next
		}
	}
	return best
}
