package board

import (
	"errors"
	"math/rand"
	"testing"
)

// flatRow builds a single-layer row of tiles at y=0 with the given kinds,
// spaced two X units apart (touching).
func flatRow(t *testing.T, kinds ...Kind) *Board {
	t.Helper()
	pl := make([]Placement, len(kinds))
	for i, k := range kinds {
		pl[i] = Placement{Pos: Pos{X: i * 2, Y: 0, Z: 0}, Kind: k}
	}
	b, err := New(pl)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func TestNewRejectsDuplicatePositions(t *testing.T) {
	_, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 0},
		{Pos: Pos{0, 0, 0}, Kind: 1},
	})
	if err == nil {
		t.Fatal("expected error for duplicate position")
	}
}

func TestFlatPairsAllFree(t *testing.T) {
	// {A, A, B, B} spread out on one layer: every tile has an open top and
	// open sides.
	b, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 0},
		{Pos: Pos{4, 0, 0}, Kind: 0},
		{Pos: Pos{8, 0, 0}, Kind: 1},
		{Pos: Pos{12, 0, 0}, Kind: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, tile := range b.Tiles() {
		if !b.IsFree(tile) {
			t.Fatalf("tile %d at %v should be free", tile.ID, tile.Pos)
		}
	}
	if err := b.RemoveMatch(b.Get(0), b.Get(1)); err != nil {
		t.Fatalf("A-A match failed: %v", err)
	}
	if err := b.RemoveMatch(b.Get(2), b.Get(3)); err != nil {
		t.Fatalf("B-B match failed: %v", err)
	}
	if n := b.TileCount(); n != 0 {
		t.Fatalf("expected empty board, got %d tiles", n)
	}
}

func TestMiddleTileSideBlocked(t *testing.T) {
	// Three touching tiles in a row: the middle one has both sides occupied
	// and must not be free, regardless of its open top.
	b := flatRow(t, 0, 1, 0)
	if b.IsFree(b.Get(1)) {
		t.Fatal("middle tile with both neighbors present reported free")
	}
	if !b.IsFree(b.Get(0)) || !b.IsFree(b.Get(2)) {
		t.Fatal("end tiles should be free")
	}
}

func TestOffsetRowStillBlocksSide(t *testing.T) {
	// A neighbor offset by one Y unit still touches: (0,1,0) blocks the
	// left side of (2,0,0).
	b, err := New([]Placement{
		{Pos: Pos{0, 1, 0}, Kind: 0},
		{Pos: Pos{2, 0, 0}, Kind: 0},
		{Pos: Pos{4, 0, 0}, Kind: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if b.IsFree(b.Get(1)) {
		t.Fatal("tile with offset left neighbor and right neighbor reported free")
	}
}

func TestBlockedFromAbove(t *testing.T) {
	cases := []struct {
		name  string
		upper Pos
	}{
		{"directly above", Pos{0, 0, 1}},
		{"offset x", Pos{1, 0, 1}},
		{"offset y", Pos{0, 1, 1}},
		{"offset both", Pos{1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New([]Placement{
				{Pos: Pos{0, 0, 0}, Kind: 0},
				{Pos: tc.upper, Kind: 1},
			})
			if err != nil {
				t.Fatal(err)
			}
			if b.IsFree(b.Get(0)) {
				t.Fatalf("tile covered at %v reported free", tc.upper)
			}
			if !b.IsFree(b.Get(1)) {
				t.Fatal("top tile should be free")
			}
		})
	}
}

func TestTwoAwayAboveDoesNotBlock(t *testing.T) {
	// A tile two units over on the next layer does not overlap a 2-wide
	// footprint.
	b, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 0},
		{Pos: Pos{2, 0, 1}, Kind: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsFree(b.Get(0)) {
		t.Fatal("tile with non-overlapping upper neighbor should be free")
	}
}

func TestFreedomIsLiveAfterRemoval(t *testing.T) {
	// T1 under T2: blocked until the covering pair is removed, free on the
	// very next query with no explicit recompute.
	b, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 0}, // T1
		{Pos: Pos{0, 0, 1}, Kind: 1}, // T2 covers T1
		{Pos: Pos{4, 0, 0}, Kind: 1}, // T2's partner
	})
	if err != nil {
		t.Fatal(err)
	}
	if b.IsFree(b.Get(0)) {
		t.Fatal("covered tile reported free")
	}
	if err := b.RemoveMatch(b.Get(1), b.Get(2)); err != nil {
		t.Fatalf("remove covering pair: %v", err)
	}
	if !b.IsFree(b.Get(0)) {
		t.Fatal("tile still blocked after cover removed")
	}
}

func TestRemoveMatchPreconditions(t *testing.T) {
	mk := func() *Board {
		// mid tile (ID 1) is side-blocked; kinds: A B A B
		return flatRow(t, 0, 1, 0, 1)
	}

	cases := []struct {
		name string
		a, b int
	}{
		{"same tile", 0, 0},
		{"kind mismatch", 0, 3},
		{"side-blocked tile", 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mk()
			before := b.TileCount()
			err := b.RemoveMatch(b.Get(tc.a), b.Get(tc.b))
			if !errors.Is(err, ErrInvalidMatch) {
				t.Fatalf("expected ErrInvalidMatch, got %v", err)
			}
			if b.TileCount() != before {
				t.Fatal("board mutated by rejected match")
			}
			if b.Get(tc.a).Removed || b.Get(tc.b).Removed {
				t.Fatal("tile marked removed by rejected match")
			}
		})
	}

	t.Run("already removed", func(t *testing.T) {
		b := flatRow(t, 0, 1, 1, 0)
		if err := b.RemoveMatch(b.Get(0), b.Get(3)); err != nil {
			t.Fatal(err)
		}
		if err := b.RemoveMatch(b.Get(0), b.Get(3)); !errors.Is(err, ErrInvalidMatch) {
			t.Fatalf("expected ErrInvalidMatch on removed pair, got %v", err)
		}
	})
}

func TestRestore(t *testing.T) {
	b := flatRow(t, 0, 1, 1, 0)
	a, c := b.Get(0), b.Get(3)
	if err := b.RemoveMatch(a, c); err != nil {
		t.Fatal(err)
	}
	if err := b.Restore(a, c); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if b.TileCount() != 4 {
		t.Fatalf("expected 4 tiles after restore, got %d", b.TileCount())
	}
	// middle tile is side-blocked again
	if b.IsFree(b.Get(1)) {
		t.Fatal("restored neighbors should re-block the middle tile")
	}
	if err := b.Restore(a, c); err == nil {
		t.Fatal("expected error restoring non-removed tiles")
	}
}

func TestFindPairStableOrder(t *testing.T) {
	// Tiles spaced apart so all are free; several candidate pairs exist and
	// the lowest-ID pair must win.
	b, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 1},
		{Pos: Pos{4, 0, 0}, Kind: 0},
		{Pos: Pos{8, 0, 0}, Kind: 1},
		{Pos: Pos{12, 0, 0}, Kind: 0},
		{Pos: Pos{16, 0, 0}, Kind: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, c, ok := b.FindPair()
	if !ok {
		t.Fatal("expected a pair")
	}
	if a.ID != 0 || c.ID != 2 {
		t.Fatalf("expected pair (0,2), got (%d,%d)", a.ID, c.ID)
	}
	if n := b.MovesLeft(); n != 4 {
		t.Fatalf("expected 4 available pairs, got %d", n)
	}
}

func TestFindPairNoneAvailable(t *testing.T) {
	// Single free tile of each kind: no match possible.
	b, err := New([]Placement{
		{Pos: Pos{0, 0, 0}, Kind: 0},
		{Pos: Pos{4, 0, 0}, Kind: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := b.FindPair(); ok {
		t.Fatal("expected no pair")
	}
	if n := b.MovesLeft(); n != 0 {
		t.Fatalf("expected 0 moves, got %d", n)
	}
}

func TestReshufflePreservesKindCounts(t *testing.T) {
	b := flatRow(t, 0, 0, 1, 1, 2, 2, 0, 0)
	count := func() map[Kind]int {
		m := map[Kind]int{}
		for _, tile := range b.Tiles() {
			m[tile.Kind]++
		}
		return m
	}
	before := count()
	b.Reshuffle(rand.New(rand.NewSource(7)))
	after := count()
	for k, n := range before {
		if after[k] != n {
			t.Fatalf("kind %d count changed %d → %d", k, n, after[k])
		}
	}
}
