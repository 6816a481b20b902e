package client

import (
	"encoding/json"
	"testing"

	"github.com/SebastianPerilla/cycles/game"
)

func TestSnapshotFromMessage(t *testing.T) {
	raw := `{
		"type": "game_state",
		"frame": 12,
		"rows": 3,
		"cols": 4,
		"grid": [
			[0, 0, 1, 0],
			[0, 2, 0, 0],
			[0, 0, 0, 0]
		],
		"players": [
			{"name": "me", "x": 2, "y": 0, "alive": true},
			{"name": "rival", "x": 1, "y": 1, "alive": false}
		]
	}`

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	snap, err := snapshotFromMessage(&msg)
	if err != nil {
		t.Fatalf("snapshotFromMessage: %v", err)
	}

	if snap.Frame != 12 || snap.Width != 4 || snap.Height != 3 {
		t.Errorf("snapshot header = frame %d, %dx%d", snap.Frame, snap.Width, snap.Height)
	}
	if snap.IsEmpty(game.Cell{X: 2, Y: 0}) || snap.IsEmpty(game.Cell{X: 1, Y: 1}) {
		t.Error("occupied cells decoded as empty")
	}
	if !snap.IsEmpty(game.Cell{X: 0, Y: 0}) {
		t.Error("empty cell decoded as occupied")
	}

	me, ok := snap.FindPlayer("me")
	if !ok || me.Head != (game.Cell{X: 2, Y: 0}) || !me.Alive {
		t.Errorf("player me = %+v, %v", me, ok)
	}
	rival, ok := snap.FindPlayer("rival")
	if !ok || rival.Alive {
		t.Errorf("player rival = %+v, %v", rival, ok)
	}
}

func TestSnapshotFromMessageBadDimensions(t *testing.T) {
	msg := &Message{Type: TypeGameState, Rows: 0, Cols: 5}
	if _, err := snapshotFromMessage(msg); err == nil {
		t.Error("no error for zero rows")
	}

	msg = &Message{
		Type: TypeGameState,
		Rows: 2, Cols: 2,
		Grid: [][]int{{0, 0}},
	}
	if _, err := snapshotFromMessage(msg); err == nil {
		t.Error("no error for missing grid row")
	}

	msg = &Message{
		Type: TypeGameState,
		Rows: 2, Cols: 2,
		Grid: [][]int{{0, 0}, {0}},
	}
	if _, err := snapshotFromMessage(msg); err == nil {
		t.Error("no error for ragged grid row")
	}
}

func TestMoveMessageEncoding(t *testing.T) {
	data, err := json.Marshal(&Message{Type: TypeMove, Direction: game.West.String()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["type"] != "move" || decoded["direction"] != "west" {
		t.Errorf("move message = %s", data)
	}
	if _, present := decoded["grid"]; present {
		t.Error("empty fields not omitted from move message")
	}
}
