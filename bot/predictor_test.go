package bot

import (
	"testing"

	"github.com/SebastianPerilla/cycles/game"
)

func TestPredictNextHeadBoxedIn(t *testing.T) {
	snap := snapshotFromRows([]string{
		".#.",
		"###",
		".#.",
	})
	head := game.Cell{X: 1, Y: 1}
	if got := PredictNextHead(snap, head); got != head {
		t.Errorf("PredictNextHead of boxed-in head = (%d,%d), want unchanged (1,1)", got.X, got.Y)
	}
}

func TestPredictNextHeadPrefersLargerRegion(t *testing.T) {
	// The head's north exit is a one-cell pocket, the south exit opens into
	// a full row.
	snap := snapshotFromRows([]string{
		"###.###",
		"###H###",
		".......",
	})
	head := game.Cell{X: 3, Y: 1}
	got := PredictNextHead(snap, head)
	want := game.Cell{X: 3, Y: 2}
	if got != want {
		t.Errorf("PredictNextHead = (%d,%d), want (%d,%d)", got.X, got.Y, want.X, want.Y)
	}
}

func TestPredictNextHeadTieFirstSeenWins(t *testing.T) {
	// Both exits are one-cell pockets; the earlier direction in
	// North/East/South/West order keeps the prediction.
	snap := snapshotFromRows([]string{
		"###.###",
		"###H###",
		"###.###",
	})
	head := game.Cell{X: 3, Y: 1}
	got := PredictNextHead(snap, head)
	want := game.Cell{X: 3, Y: 0}
	if got != want {
		t.Errorf("PredictNextHead = (%d,%d), want north pocket (%d,%d)", got.X, got.Y, want.X, want.Y)
	}
}

func TestPredictNextHeadDoesNotMutateSnapshot(t *testing.T) {
	snap := snapshotFromRows([]string{
		"...",
		".#.",
		"...",
	})
	before := make([][]byte, len(snap.Cells))
	for y := range snap.Cells {
		before[y] = append([]byte(nil), snap.Cells[y]...)
	}

	PredictNextHead(snap, game.Cell{X: 0, Y: 0})

	for y := range before {
		for x := range before[y] {
			if snap.Cells[y][x] != before[y][x] {
				t.Fatalf("snapshot mutated at (%d,%d)", x, y)
			}
		}
	}
}
