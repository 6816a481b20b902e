package bot

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/SebastianPerilla/cycles/game"
)

// GameLink is the transport the engine drives. Implemented by
// client.Connection; faked in tests.
type GameLink interface {
	Connect(name string) error
	IsActive() bool
	ReceiveSnapshot() (*game.Snapshot, error)
	SendMove(game.Direction) error
}

// TurnContext carries the per-session state the decision functions need, so
// they stay pure given (snapshot, context): the bot's identity, its RNG, and
// the last direction sent. LastDirection is recorded every turn but only
// consulted when the bot cannot find itself in a snapshot.
type TurnContext struct {
	Name          string
	Rng           *rand.Rand
	LastDirection game.Direction
}

// DecideMove computes the move for one turn. With at least one live opponent
// on the grid the engine plays aggressively: predict where the nearest
// opponent's head goes next and score moves by reachable area minus distance
// to that prediction. Alone on the grid it plays safe, maximizing reachable
// area only.
//
// A snapshot that does not mention the bot's own name is reported and the
// previous direction is replayed for that turn rather than deciding from a
// stale head position.
func DecideMove(snap *game.Snapshot, ctx *TurnContext) game.Direction {
	self, ok := snap.FindPlayer(ctx.Name)
	if !ok {
		log.Printf("%s: not present in frame %d, replaying %s", ctx.Name, snap.Frame, ctx.LastDirection)
		return ctx.LastDirection
	}

	opponent, ok := nearestOpponent(snap, self)
	if !ok {
		return SafeMove(snap, self.Head)
	}
	predicted := PredictNextHead(snap, opponent.Head)
	return AggressiveMove(snap, self.Head, predicted)
}

// nearestOpponent returns the live opponent whose head is closest to self by
// Manhattan distance. Ties resolve to the earlier entry in the snapshot's
// player list.
func nearestOpponent(snap *game.Snapshot, self game.Player) (game.Player, bool) {
	var nearest game.Player
	found := false
	minDist := 0

	for _, p := range snap.Players {
		if p.Name == self.Name || !p.Alive {
			continue
		}
		dist := game.ManhattanDistance(self.Head, p.Head)
		if !found || dist < minDist {
			nearest = p
			minDist = dist
			found = true
		}
	}
	return nearest, found
}

// Engine runs the turn loop for one session: receive a snapshot, decide,
// send, repeat until the link goes inactive. One decision per snapshot,
// fully sequential.
type Engine struct {
	link  GameLink
	ctx   TurnContext
	Turns int
}

// NewEngine builds an engine for the named bot over an already-constructed
// link. The RNG is seeded per session.
func NewEngine(name string, link GameLink, seed int64) *Engine {
	return &Engine{
		link: link,
		ctx: TurnContext{
			Name:          name,
			Rng:           rand.New(rand.NewSource(seed)),
			LastDirection: game.North,
		},
	}
}

// Connect establishes the session. Failure here is fatal to the caller; the
// engine does not retry.
func (e *Engine) Connect() error {
	if err := e.link.Connect(e.ctx.Name); err != nil {
		return fmt.Errorf("connect as %s: %w", e.ctx.Name, err)
	}
	return nil
}

// Run drives the loop until the link reports the session over. Returns the
// number of turns played.
func (e *Engine) Run() (int, error) {
	for e.link.IsActive() {
		snap, err := e.link.ReceiveSnapshot()
		if err != nil {
			if !e.link.IsActive() {
				break
			}
			return e.Turns, fmt.Errorf("receive snapshot: %w", err)
		}

		move := DecideMove(snap, &e.ctx)
		e.ctx.LastDirection = move

		if err := e.link.SendMove(move); err != nil {
			return e.Turns, fmt.Errorf("send move: %w", err)
		}
		e.Turns++
	}
	return e.Turns, nil
}
