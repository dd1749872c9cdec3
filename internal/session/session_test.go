package session

import (
	mrand "math/rand"
	"testing"
	"time"

	"github.com/robalobadob/mahjong/go-server/internal/board"
	"github.com/robalobadob/mahjong/go-server/internal/layout"
)

// testSession builds a session over a hand-made board so the state machine
// can be driven through known positions.
func testSession(t *testing.T, placements []board.Placement) *Session {
	t.Helper()
	b, err := board.New(placements)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s := &Session{
		ID:        "test",
		Level:     layout.Pyramid,
		b:         b,
		rng:       mrand.New(mrand.NewSource(1)),
		hintsLeft: defaultHints,
		undosLeft: defaultUndos,
		mixesLeft: defaultMixes,
		now:       time.Now,
	}
	s.startedAt = s.now()
	return s
}

// twoPairs is a flat {A, A, B, B} board with every tile free.
func twoPairs(t *testing.T) *Session {
	t.Helper()
	return testSession(t, []board.Placement{
		{Pos: board.Pos{X: 0, Y: 0, Z: 0}, Kind: 0},
		{Pos: board.Pos{X: 4, Y: 0, Z: 0}, Kind: 0},
		{Pos: board.Pos{X: 8, Y: 0, Z: 0}, Kind: 1},
		{Pos: board.Pos{X: 12, Y: 0, Z: 0}, Kind: 1},
	})
}

func TestClickThroughToWin(t *testing.T) {
	s := twoPairs(t)

	out := s.Click(0)
	if out.Result != ClickSelected || s.Selected() != 0 {
		t.Fatalf("first click: %+v, selected=%d", out, s.Selected())
	}
	out = s.Click(1)
	if out.Result != ClickMatched || out.Won {
		t.Fatalf("A-A click: %+v", out)
	}
	if s.Matches() != 1 || s.TileCount() != 2 {
		t.Fatalf("after first match: matches=%d tiles=%d", s.Matches(), s.TileCount())
	}

	s.Click(2)
	out = s.Click(3)
	if out.Result != ClickMatched || !out.Won {
		t.Fatalf("B-B click: %+v", out)
	}
	if !s.IsWon() || s.Matches() != 2 || s.TileCount() != 0 {
		t.Fatalf("after win: won=%v matches=%d tiles=%d", s.IsWon(), s.Matches(), s.TileCount())
	}
	if s.State() != "won" {
		t.Fatalf("state = %q, want won", s.State())
	}
}

func TestClickDeselect(t *testing.T) {
	s := twoPairs(t)
	s.Click(0)
	out := s.Click(0)
	if out.Result != ClickDeselected {
		t.Fatalf("second click on same tile: %+v", out)
	}
	if s.Selected() != -1 {
		t.Fatalf("selection not cleared: %d", s.Selected())
	}
}

func TestClickMismatchClearsBoth(t *testing.T) {
	s := twoPairs(t)
	s.Click(0)
	out := s.Click(2)
	if out.Result != ClickMismatched {
		t.Fatalf("A then B click: %+v", out)
	}
	if len(out.Tiles) != 2 || out.Tiles[0] != 0 || out.Tiles[1] != 2 {
		t.Fatalf("mismatch tiles: %v", out.Tiles)
	}
	if s.Selected() != -1 {
		t.Fatalf("selection not cleared after mismatch: %d", s.Selected())
	}
	if s.TileCount() != 4 {
		t.Fatal("mismatch removed tiles")
	}
}

func TestClickBlockedTileIgnored(t *testing.T) {
	// Tile 0 is covered by tile 1.
	s := testSession(t, []board.Placement{
		{Pos: board.Pos{X: 0, Y: 0, Z: 0}, Kind: 0},
		{Pos: board.Pos{X: 0, Y: 0, Z: 1}, Kind: 0},
	})
	if out := s.Click(0); out.Result != ClickIgnored {
		t.Fatalf("click on covered tile: %+v", out)
	}
	if out := s.Click(99); out.Result != ClickIgnored {
		t.Fatalf("click on unknown tile: %+v", out)
	}
	if s.Selected() != -1 {
		t.Fatal("ignored click left a selection")
	}
}

func TestClicksAfterWinIgnored(t *testing.T) {
	s := twoPairs(t)
	s.Click(0)
	s.Click(1)
	s.Click(2)
	s.Click(3)
	out := s.Click(0)
	if out.Result != ClickIgnored || !out.Won {
		t.Fatalf("click after win: %+v", out)
	}
}

func TestElapsedFrozenAtWin(t *testing.T) {
	s := twoPairs(t)
	cur := time.Unix(1000, 0)
	s.now = func() time.Time { return cur }
	s.startedAt = cur

	cur = cur.Add(3 * time.Second)
	if got := s.Elapsed(); got != 3*time.Second {
		t.Fatalf("running elapsed = %v", got)
	}

	s.Click(0)
	s.Click(1)
	cur = cur.Add(2 * time.Second)
	s.Click(2)
	s.Click(3) // win at t+5s
	cur = cur.Add(time.Hour)
	if got := s.Elapsed(); got != 5*time.Second {
		t.Fatalf("won elapsed = %v, want 5s", got)
	}
}

func TestHint(t *testing.T) {
	s := twoPairs(t)
	a, b, ok := s.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if a != 0 || b != 1 {
		t.Fatalf("hint pair (%d,%d), want (0,1)", a, b)
	}
	if s.HintsLeft() != defaultHints-1 {
		t.Fatalf("hints left %d", s.HintsLeft())
	}
	// hints never touch board or selection
	if s.TileCount() != 4 || s.Selected() != -1 {
		t.Fatal("hint mutated game state")
	}

	s.hintsLeft = 0
	if _, _, ok := s.Hint(); ok {
		t.Fatal("hint granted with empty budget")
	}
}

func TestHintNoPairDoesNotConsumeBudget(t *testing.T) {
	// Two free tiles of different kinds: nothing to hint.
	s := testSession(t, []board.Placement{
		{Pos: board.Pos{X: 0, Y: 0, Z: 0}, Kind: 0},
		{Pos: board.Pos{X: 4, Y: 0, Z: 0}, Kind: 1},
	})
	if _, _, ok := s.Hint(); ok {
		t.Fatal("hint found a pair on a pairless board")
	}
	if s.HintsLeft() != defaultHints {
		t.Fatalf("failed hint consumed budget: %d left", s.HintsLeft())
	}
}

func TestUndo(t *testing.T) {
	s := twoPairs(t)
	if s.Undo() {
		t.Fatal("undo with empty history")
	}

	s.Click(0)
	s.Click(1)
	if !s.Undo() {
		t.Fatal("undo after a match failed")
	}
	if s.TileCount() != 4 || s.Matches() != 0 {
		t.Fatalf("after undo: tiles=%d matches=%d", s.TileCount(), s.Matches())
	}
	if s.UndosLeft() != defaultUndos-1 {
		t.Fatalf("undos left %d", s.UndosLeft())
	}
	if s.Undo() {
		t.Fatal("second undo with no further history")
	}
}

func TestUndoDoesNotReopenWonGame(t *testing.T) {
	s := twoPairs(t)
	s.Click(0)
	s.Click(1)
	s.Click(2)
	s.Click(3)
	if s.Undo() {
		t.Fatal("undo reopened a won game")
	}
}

func TestMix(t *testing.T) {
	s := twoPairs(t)
	s.Click(0)
	if !s.Mix() {
		t.Fatal("mix failed with full budget")
	}
	if s.Selected() != -1 {
		t.Fatal("mix kept the selection")
	}
	if s.TileCount() != 4 {
		t.Fatal("mix changed the tile count")
	}
	if s.MixesLeft() != defaultMixes-1 {
		t.Fatalf("mixes left %d", s.MixesLeft())
	}

	s.mixesLeft = 0
	if s.Mix() {
		t.Fatal("mix granted with empty budget")
	}
}

func TestStateStuck(t *testing.T) {
	s := testSession(t, []board.Placement{
		{Pos: board.Pos{X: 0, Y: 0, Z: 0}, Kind: 0},
		{Pos: board.Pos{X: 4, Y: 0, Z: 0}, Kind: 1},
	})
	if got := s.State(); got != "playing" {
		t.Fatalf("state with mixes in hand = %q", got)
	}
	s.mixesLeft = 0
	if got := s.State(); got != "stuck" {
		t.Fatalf("state with no moves and no mixes = %q", got)
	}
}

func TestNewAndRestart(t *testing.T) {
	s, err := New(layout.Pyramid, 42)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.ID == "" || s.TileCount() != 88 {
		t.Fatalf("fresh session: id=%q tiles=%d", s.ID, s.TileCount())
	}

	// play a match, burn a hint, then restart
	a, b, ok := s.Hint()
	if !ok {
		t.Fatal("fresh board has no free pair")
	}
	s.Click(a)
	if out := s.Click(b); out.Result != ClickMatched {
		t.Fatalf("hinted pair did not match: %+v", out)
	}

	posSet := func() map[board.Pos]bool {
		m := map[board.Pos]bool{}
		for _, tile := range s.Tiles() {
			m[tile.Pos] = true
		}
		return m
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.TileCount() != 88 || s.Matches() != 0 || s.IsWon() {
		t.Fatalf("after restart: tiles=%d matches=%d won=%v", s.TileCount(), s.Matches(), s.IsWon())
	}
	if s.HintsLeft() != defaultHints || s.UndosLeft() != defaultUndos || s.MixesLeft() != defaultMixes {
		t.Fatal("restart did not reset power-up budgets")
	}

	// same level shape: restart fills the same cells
	want := map[board.Pos]bool{}
	for _, p := range layout.Positions(layout.Pyramid) {
		want[p] = true
	}
	got := posSet()
	if len(got) != len(want) {
		t.Fatalf("restart position count %d, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("restart missing position %v", p)
		}
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New(layout.Level(42), 1); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a, err := New(layout.Dragon, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(layout.Dragon, 7)
	if err != nil {
		t.Fatal(err)
	}
	at, bt := a.Tiles(), b.Tiles()
	if len(at) != len(bt) {
		t.Fatalf("tile counts differ: %d vs %d", len(at), len(bt))
	}
	for i := range at {
		if at[i].Kind != bt[i].Kind || at[i].Pos != bt[i].Pos {
			t.Fatalf("tile %d differs: %+v vs %+v", i, at[i], bt[i])
		}
	}
}
