package bot

import "github.com/SebastianPerilla/cycles/game"

// candidate is a scored direction, alive only for the duration of one
// decision.
type candidate struct {
	dir   game.Direction
	score int
}

// isValidMove reports whether moving from head in direction dir lands on an
// in-bounds, unoccupied cell.
func isValidMove(snap *game.Snapshot, head game.Cell, dir game.Direction) bool {
	next := dir.Next(head)
	return snap.InBounds(next) && snap.IsEmpty(next)
}

// SafeMove scores each legal direction from head by the reachable area of
// the resulting cell and returns the best one. Illegal directions are not
// candidates at all.
func SafeMove(snap *game.Snapshot, head game.Cell) game.Direction {
	var moves []candidate
	for _, dir := range game.Directions {
		if !isValidMove(snap, head, dir) {
			continue
		}
		next := dir.Next(head)
		moves = append(moves, candidate{dir: dir, score: ReachableArea(snap, next)})
	}
	return bestMove(moves)
}

// AggressiveMove scores each legal direction by reachable area minus the
// Manhattan distance from the resulting cell to the pursuit target. Both
// terms are cell counts, so they subtract without normalization: the bot
// keeps room to survive while closing on the target.
func AggressiveMove(snap *game.Snapshot, head, target game.Cell) game.Direction {
	var moves []candidate
	for _, dir := range game.Directions {
		if !isValidMove(snap, head, dir) {
			continue
		}
		next := dir.Next(head)
		score := ReachableArea(snap, next) - game.ManhattanDistance(next, target)
		moves = append(moves, candidate{dir: dir, score: score})
	}
	return bestMove(moves)
}

// bestMove picks the highest-scoring candidate. Candidates arrive in
// North/East/South/West order and only a strictly better score displaces the
// leader, so ties resolve to the earlier direction, deterministically. An
// empty list means the bot is fully boxed in; North is returned as the
// documented no-good-move fallback, legal or not.
func bestMove(moves []candidate) game.Direction {
	if len(moves) == 0 {
		return game.North
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.score > best.score {
			best = m
		}
	}
	return best.dir
}
