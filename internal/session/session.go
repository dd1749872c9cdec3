// internal/session/session.go
//
// Game session for a single Mahjong Solitaire level.
// Responsibilities:
//   - Create sessions from a level identifier and a shuffle seed.
//   - Drive the selection state machine over player clicks.
//   - Track match count, elapsed time (frozen on win), and win detection.
//   - Hint / undo / mix power-ups with per-level budgets.
//   - Restart: regenerate the same level and reset all progress.
//
// Notes:
//   - The Board owns all tile state; the session never mutates tiles directly.
//   - Selection holds at most one tile: a second click resolves immediately
//     to a match or a mismatch, so two tiles are only ever selected
//     transiently inside Click.
//   - A mismatch clears both selections (neither tile is removed).
//   - randomID() is a compact hex identifier for correlating server state.
//
// Package-level defaults are kept here for clarity.
package session

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/robalobadob/mahjong/go-server/internal/board"
	"github.com/robalobadob/mahjong/go-server/internal/layout"
)

const (
	defaultHints = 3
	defaultUndos = 3
	defaultMixes = 3
)

// ClickResult classifies what a player click did.
type ClickResult string

const (
	ClickIgnored    ClickResult = "ignored"    // blocked/removed/unknown tile, or finished game
	ClickSelected   ClickResult = "selected"   // tile became the pending selection
	ClickDeselected ClickResult = "deselected" // pending selection clicked again
	ClickMatched    ClickResult = "matched"    // pair removed
	ClickMismatched ClickResult = "mismatched" // kinds differ; both selections cleared
)

// ClickOutcome reports the result of a click and the tiles involved,
// so the UI layer can highlight or flash them.
type ClickOutcome struct {
	Result ClickResult `json:"result"`
	Tiles  []int       `json:"tiles,omitempty"` // tile IDs: 1 for select/deselect, 2 for matched/mismatched
	Won    bool        `json:"won"`             // true when this click cleared the board
}

// Session holds the state of a single solitaire game.
type Session struct {
	ID    string       // Unique session identifier (random hex string).
	Level layout.Level // Level being played.
	Daily bool         // Daily-challenge session; only the /daily routes may drive it.

	b        *board.Board
	selected *board.Tile // pending selection, nil when empty
	rng      *mrand.Rand // drives shuffles for generate/mix/restart

	startedAt time.Time
	finalTime time.Duration // elapsed frozen at win
	matches   int
	won       bool

	hintsLeft int
	undosLeft int
	mixesLeft int
	history   [][2]*board.Tile // removed pairs, for undo

	now func() time.Time // injectable clock for tests
}

// New constructs a session for level l. The seed drives the character
// shuffle; the same level and seed always produce the same board.
func New(l layout.Level, seed int64) (*Session, error) {
	s := &Session{
		ID:    randomID(),
		Level: l,
		rng:   mrand.New(mrand.NewSource(seed)),
		now:   time.Now,
	}
	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// deal generates a fresh board and resets all per-level progress.
func (s *Session) deal() error {
	placements, err := layout.Generate(s.Level, s.rng)
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}
	b, err := board.New(placements)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}
	s.b = b
	s.selected = nil
	s.matches = 0
	s.won = false
	s.finalTime = 0
	s.hintsLeft = defaultHints
	s.undosLeft = defaultUndos
	s.mixesLeft = defaultMixes
	s.history = nil
	s.startedAt = s.now()
	return nil
}

// Restart regenerates the same level and resets progress, selection,
// timers, and power-up budgets. The shuffle continues from the session's
// randomness stream, so the layout shape is identical but the character
// assignment may differ.
func (s *Session) Restart() error { return s.deal() }

// ------------------------------ clicks -------------------------------------

// Click applies a player click on a tile.
//
// Transitions:
//   - empty selection + free tile      → selected
//   - pending tile clicked again       → deselected
//   - second free tile, same kind      → matched (pair removed)
//   - second free tile, different kind → mismatched (both selections cleared)
//   - blocked tile, removed tile, unknown ID, or finished game → ignored
func (s *Session) Click(tileID int) ClickOutcome {
	if s.won {
		return ClickOutcome{Result: ClickIgnored, Won: true}
	}
	t := s.b.Get(tileID)
	if t == nil || t.Removed || !s.b.IsFree(t) {
		return ClickOutcome{Result: ClickIgnored}
	}

	switch {
	case s.selected == nil:
		s.selected = t
		return ClickOutcome{Result: ClickSelected, Tiles: []int{t.ID}}

	case s.selected == t:
		s.selected = nil
		return ClickOutcome{Result: ClickDeselected, Tiles: []int{t.ID}}

	case s.selected.Kind == t.Kind:
		first := s.selected
		if err := s.b.RemoveMatch(first, t); err != nil {
			// Both tiles were checked free above; reaching here means the
			// board changed between checks, which single-threaded play
			// cannot do. Treat as a no-op click.
			return ClickOutcome{Result: ClickIgnored}
		}
		s.selected = nil
		s.matches++
		s.history = append(s.history, [2]*board.Tile{first, t})
		if s.b.TileCount() == 0 {
			s.won = true
			s.finalTime = s.now().Sub(s.startedAt)
		}
		return ClickOutcome{Result: ClickMatched, Tiles: []int{first.ID, t.ID}, Won: s.won}

	default:
		first := s.selected
		s.selected = nil
		return ClickOutcome{Result: ClickMismatched, Tiles: []int{first.ID, t.ID}}
	}
}

// ----------------------------- power-ups -----------------------------------

// Hint returns the first free matching pair (ascending tile-ID order) and
// consumes one hint. ok is false — and no hint is consumed — when the budget
// is exhausted or no free pair exists. Board and selection are untouched.
func (s *Session) Hint() (a, b int, ok bool) {
	if s.hintsLeft <= 0 || s.won {
		return 0, 0, false
	}
	t1, t2, found := s.b.FindPair()
	if !found {
		return 0, 0, false
	}
	s.hintsLeft--
	return t1.ID, t2.ID, true
}

// Undo restores the most recently removed pair. Returns false when the
// budget is exhausted or there is nothing to undo. Undo does not reopen a
// won game.
func (s *Session) Undo() bool {
	if s.undosLeft <= 0 || s.won || len(s.history) == 0 {
		return false
	}
	pair := s.history[len(s.history)-1]
	if err := s.b.Restore(pair[0], pair[1]); err != nil {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	s.selected = nil
	s.matches--
	s.undosLeft--
	return true
}

// Mix reshuffles the kinds of the remaining tiles and clears the selection.
// Pair parity is preserved (positions never move, kinds are permuted).
// Returns false when the budget is exhausted.
func (s *Session) Mix() bool {
	if s.mixesLeft <= 0 || s.won {
		return false
	}
	s.b.Reshuffle(s.rng)
	s.selected = nil
	s.mixesLeft--
	return true
}

// ------------------------------ queries ------------------------------------

// Tiles returns all non-removed tiles for rendering.
func (s *Session) Tiles() []*board.Tile { return s.b.Tiles() }

// IsFree reports whether the tile with the given ID is currently selectable.
func (s *Session) IsFree(tileID int) bool { return s.b.IsFree(s.b.Get(tileID)) }

// Selected returns the pending selection tile ID, or -1 when empty.
func (s *Session) Selected() int {
	if s.selected == nil {
		return -1
	}
	return s.selected.ID
}

// TileCount reports the number of non-removed tiles.
func (s *Session) TileCount() int { return s.b.TileCount() }

// Matches reports the number of successful matches so far.
func (s *Session) Matches() int { return s.matches }

// MovesLeft counts the free matching pairs currently available.
func (s *Session) MovesLeft() int { return s.b.MovesLeft() }

// HintsLeft, UndosLeft, MixesLeft report remaining power-up budgets.
func (s *Session) HintsLeft() int { return s.hintsLeft }
func (s *Session) UndosLeft() int { return s.undosLeft }
func (s *Session) MixesLeft() int { return s.mixesLeft }

// IsWon reports whether the board has been cleared. Sticky until Restart.
func (s *Session) IsWon() bool { return s.won }

// Elapsed returns time since the session started, frozen at the winning
// click once the board is cleared.
func (s *Session) Elapsed() time.Duration {
	if s.won {
		return s.finalTime
	}
	return s.now().Sub(s.startedAt)
}

// State reports a coarse string representation of the session state.
// "stuck" means no free matching pair remains and the mix budget is spent —
// a dead end the player can only leave via restart.
func (s *Session) State() string {
	if s.won {
		return "won"
	}
	if s.b.MovesLeft() == 0 && s.mixesLeft == 0 {
		return "stuck"
	}
	return "playing"
}

// ------------------------------- helpers -----------------------------------

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// RandomSeed returns a crypto-random shuffle seed for non-daily games.
func RandomSeed() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:]))
}
