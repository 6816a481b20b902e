package client

import (
	"fmt"

	"github.com/SebastianPerilla/cycles/game"
)

// Message is the tagged envelope for everything crossing the websocket.
type Message struct {
	Type      string       `json:"type"`
	Name      string       `json:"name,omitempty"`
	Frame     int          `json:"frame,omitempty"`
	Rows      int          `json:"rows,omitempty"`
	Cols      int          `json:"cols,omitempty"`
	Grid      [][]int      `json:"grid,omitempty"`
	Players   []PlayerInfo `json:"players,omitempty"`
	Direction string       `json:"direction,omitempty"`
	Winner    string       `json:"winner,omitempty"`
	Reason    string       `json:"reason,omitempty"`
}

// PlayerInfo is one player's entry in a game_state message.
type PlayerInfo struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Alive bool   `json:"alive"`
}

// Message types.
const (
	TypeJoin      = "join"
	TypeWelcome   = "welcome"
	TypeGameState = "game_state"
	TypeMove      = "move"
	TypeGameEnd   = "game_end"
)

// snapshotFromMessage converts a game_state message into a game.Snapshot.
// Grid rows arrive top to bottom, grid[row][col], matching Snapshot's
// [y][x] layout.
func snapshotFromMessage(msg *Message) (*game.Snapshot, error) {
	if msg.Rows <= 0 || msg.Cols <= 0 {
		return nil, fmt.Errorf("bad grid dimensions %dx%d", msg.Rows, msg.Cols)
	}
	if len(msg.Grid) != msg.Rows {
		return nil, fmt.Errorf("grid has %d rows, expected %d", len(msg.Grid), msg.Rows)
	}

	snap := game.NewSnapshot(msg.Cols, msg.Rows)
	snap.Frame = msg.Frame
	for y, row := range msg.Grid {
		if len(row) != msg.Cols {
			return nil, fmt.Errorf("grid row %d has %d cols, expected %d", y, len(row), msg.Cols)
		}
		for x, v := range row {
			snap.Cells[y][x] = byte(v)
		}
	}

	snap.Players = make([]game.Player, 0, len(msg.Players))
	for _, p := range msg.Players {
		snap.Players = append(snap.Players, game.Player{
			Name:  p.Name,
			Head:  game.Cell{X: p.X, Y: p.Y},
			Alive: p.Alive,
		})
	}
	return snap, nil
}
