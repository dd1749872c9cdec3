// internal/board/board.go
//
// Board model and tile-freedom algorithm.
// Responsibilities:
//   - Own the full tile collection for one level (tiles are mutated only here).
//   - Compute free/blocked status live from current positions (never cached).
//   - Validate and apply pair removal, and restore pairs for undo.
//   - Hint search (first free matching pair) and available-move counting.
//
// Freedom rule (classic Mahjong Solitaire, half-tile offset stacking):
//   - A tile is blocked from above if any tile one layer up sits within one
//     grid unit of it in both axes (the 2-unit-wide footprints overlap).
//   - A tile is blocked on a side if any tile on the same layer sits two X
//     units away on that side, within one Y unit (offset rows still touch).
//   - Free ⇔ not blocked from above AND (left open OR right open).

package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidMatch is returned by RemoveMatch when the pair fails its
// preconditions. The board is left unchanged.
var ErrInvalidMatch = errors.New("invalid match")

// Board owns all tiles of the active level.
// Tiles are indexed by ID (placement order) and by position for the
// freedom lookups. Removed tiles stay in the slice but leave the index.
type Board struct {
	tiles []*Tile      // all tiles, indexed by Tile.ID
	byPos map[Pos]*Tile // non-removed tiles only
}

// New builds a board from generator placements.
// Tile IDs follow placement order. Duplicate positions are a layout bug
// and are rejected.
func New(placements []Placement) (*Board, error) {
	b := &Board{
		tiles: make([]*Tile, 0, len(placements)),
		byPos: make(map[Pos]*Tile, len(placements)),
	}
	for i, p := range placements {
		if _, taken := b.byPos[p.Pos]; taken {
			return nil, fmt.Errorf("duplicate position %v in layout", p.Pos)
		}
		t := &Tile{ID: i, Kind: p.Kind, Pos: p.Pos}
		b.tiles = append(b.tiles, t)
		b.byPos[p.Pos] = t
	}
	return b, nil
}

// Get returns the tile with the given ID, or nil if out of range.
// Removed tiles are still returned; callers check Removed.
func (b *Board) Get(id int) *Tile {
	if id < 0 || id >= len(b.tiles) {
		return nil
	}
	return b.tiles[id]
}

// Tiles returns all non-removed tiles in ascending ID order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, 0, len(b.byPos))
	for _, t := range b.tiles {
		if !t.Removed {
			out = append(out, t)
		}
	}
	return out
}

// TileCount reports the number of non-removed tiles.
func (b *Board) TileCount() int { return len(b.byPos) }

// ----------------------------- freedom -------------------------------------

// IsFree reports whether t can be selected right now.
// Always computed from the live position index; removal of a neighbor is
// reflected by the very next call.
func (b *Board) IsFree(t *Tile) bool {
	if t == nil || t.Removed {
		return false
	}
	if b.blockedAbove(t) {
		return false
	}
	return !b.blockedSide(t, -2) || !b.blockedSide(t, +2)
}

// blockedAbove reports whether any tile one layer up overlaps t's footprint.
// With 2-unit-wide tiles, any tile within one unit in both axes overlaps.
func (b *Board) blockedAbove(t *Tile) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if _, ok := b.byPos[Pos{t.Pos.X + dx, t.Pos.Y + dy, t.Pos.Z + 1}]; ok {
				return true
			}
		}
	}
	return false
}

// blockedSide reports whether a same-layer neighbor touches t on one side.
// dx is -2 for left, +2 for right; rows offset by one unit still touch.
func (b *Board) blockedSide(t *Tile, dx int) bool {
	for dy := -1; dy <= 1; dy++ {
		if _, ok := b.byPos[Pos{t.Pos.X + dx, t.Pos.Y + dy, t.Pos.Z}]; ok {
			return true
		}
	}
	return false
}

// FreeTiles returns all currently free tiles in ascending ID order.
func (b *Board) FreeTiles() []*Tile {
	var out []*Tile
	for _, t := range b.tiles {
		if !t.Removed && b.IsFree(t) {
			out = append(out, t)
		}
	}
	return out
}

// ------------------------------ matching -----------------------------------

// RemoveMatch clears a matching pair of free tiles.
// Preconditions: a and b are distinct, non-removed, currently free, and
// share a kind. On any violation ErrInvalidMatch is returned and the
// board is unchanged.
func (bd *Board) RemoveMatch(a, b *Tile) error {
	if a == nil || b == nil || a == b {
		return ErrInvalidMatch
	}
	if a.Removed || b.Removed || a.Kind != b.Kind {
		return ErrInvalidMatch
	}
	if !bd.IsFree(a) || !bd.IsFree(b) {
		return ErrInvalidMatch
	}
	a.Removed = true
	b.Removed = true
	delete(bd.byPos, a.Pos)
	delete(bd.byPos, b.Pos)
	return nil
}

// Restore puts a previously removed pair back on the board (undo).
// Both tiles must be removed and their cells still empty.
func (bd *Board) Restore(a, b *Tile) error {
	if a == nil || b == nil || !a.Removed || !b.Removed {
		return errors.New("restore: tiles not removed")
	}
	if _, taken := bd.byPos[a.Pos]; taken {
		return fmt.Errorf("restore: position %v occupied", a.Pos)
	}
	if _, taken := bd.byPos[b.Pos]; taken {
		return fmt.Errorf("restore: position %v occupied", b.Pos)
	}
	a.Removed = false
	b.Removed = false
	bd.byPos[a.Pos] = a
	bd.byPos[b.Pos] = b
	return nil
}

// ------------------------------ hint search --------------------------------

// FindPair returns the first free matching pair in ascending tile-ID order.
// ok is false when no free pair exists — possible before the board is empty
// when the remaining tiles are mutually blocking.
func (b *Board) FindPair() (a, c *Tile, ok bool) {
	free := b.FreeTiles()
	for i, t1 := range free {
		for _, t2 := range free[i+1:] {
			if t1.Kind == t2.Kind {
				return t1, t2, true
			}
		}
	}
	return nil, nil, false
}

// MovesLeft counts the free matching pairs currently available.
func (b *Board) MovesLeft() int {
	free := b.FreeTiles()
	n := 0
	for i, t1 := range free {
		for _, t2 := range free[i+1:] {
			if t1.Kind == t2.Kind {
				n++
			}
		}
	}
	return n
}

// Reshuffle permutes the kinds of the remaining tiles in place (mix
// power-up). Positions never move, so per-kind counts — and pair parity —
// are preserved exactly.
func (b *Board) Reshuffle(rng *rand.Rand) {
	live := b.Tiles()
	kinds := make([]Kind, len(live))
	for i, t := range live {
		kinds[i] = t.Kind
	}
	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
	for i, t := range live {
		t.Kind = kinds[i]
	}
}
