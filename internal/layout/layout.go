// internal/layout/layout.go
//
// Level definitions for Mahjong Solitaire.
//
// Each level is a static data table: the full list of (x, y, z) grid cells
// its shape occupies, in generation order. Coordinates are double resolution
// (a tile face is two units wide), so half-tile offset stacking lands on odd
// values — see board.Pos.
//
// Levels:
//   - Pyramid "Turtle"     (easy):   stepped stacked diamond, 5 layers, 88 tiles.
//   - Temple  "Tri-Peaks"  (medium): three nested pyramids, 44 tiles.
//   - Dragon  "Butterfly"  (hard):   two winged circles around a spine, 78 tiles.
//
// Every table has an even tile count; the generator rejects odd tables as a
// configuration bug (see generate.go).

package layout

import "github.com/robalobadob/mahjong/go-server/internal/board"

// Level identifies one of the built-in board shapes.
type Level int

const (
	Pyramid Level = iota
	Temple
	Dragon
)

// Info is level metadata exposed to the UI layer.
type Info struct {
	Level      Level  `json:"level"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	TileCount  int    `json:"tileCount"`
}

// Levels returns metadata for all built-in levels, in play order.
func Levels() []Info {
	return []Info{
		{Pyramid, "Turtle", "Easy", len(pyramidTable)},
		{Temple, "Tri-Peaks", "Medium", len(templeTable)},
		{Dragon, "Butterfly", "Hard", len(dragonTable)},
	}
}

// Valid reports whether l names a built-in level.
func (l Level) Valid() bool { return l >= Pyramid && l <= Dragon }

// Name returns the level's display name ("" for unknown levels).
func (l Level) Name() string {
	switch l {
	case Pyramid:
		return "Turtle"
	case Temple:
		return "Tri-Peaks"
	case Dragon:
		return "Butterfly"
	}
	return ""
}

// Positions returns a copy of the level's coordinate table.
// Callers may reorder or truncate their copy freely.
func Positions(l Level) []board.Pos {
	var table []board.Pos
	switch l {
	case Pyramid:
		table = pyramidTable
	case Temple:
		table = templeTable
	case Dragon:
		table = dragonTable
	default:
		return nil
	}
	out := make([]board.Pos, len(table))
	copy(out, table)
	return out
}

// ------------------------------ data tables --------------------------------

// pyramidTable: stepped diamond. Square layers 7x7 → 5x5 → 3x3 stacked
// concentrically, a half-offset 2x2 above those, one cap tile on top.
var pyramidTable = []board.Pos{
	{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 6, Y: 0, Z: 0}, {X: 8, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0},
	{X: 12, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 4, Y: 2, Z: 0}, {X: 6, Y: 2, Z: 0}, {X: 8, Y: 2, Z: 0},
	{X: 10, Y: 2, Z: 0}, {X: 12, Y: 2, Z: 0}, {X: 0, Y: 4, Z: 0}, {X: 2, Y: 4, Z: 0}, {X: 4, Y: 4, Z: 0}, {X: 6, Y: 4, Z: 0},
	{X: 8, Y: 4, Z: 0}, {X: 10, Y: 4, Z: 0}, {X: 12, Y: 4, Z: 0}, {X: 0, Y: 6, Z: 0}, {X: 2, Y: 6, Z: 0}, {X: 4, Y: 6, Z: 0},
	{X: 6, Y: 6, Z: 0}, {X: 8, Y: 6, Z: 0}, {X: 10, Y: 6, Z: 0}, {X: 12, Y: 6, Z: 0}, {X: 0, Y: 8, Z: 0}, {X: 2, Y: 8, Z: 0},
	{X: 4, Y: 8, Z: 0}, {X: 6, Y: 8, Z: 0}, {X: 8, Y: 8, Z: 0}, {X: 10, Y: 8, Z: 0}, {X: 12, Y: 8, Z: 0}, {X: 0, Y: 10, Z: 0},
	{X: 2, Y: 10, Z: 0}, {X: 4, Y: 10, Z: 0}, {X: 6, Y: 10, Z: 0}, {X: 8, Y: 10, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 12, Y: 10, Z: 0},
	{X: 0, Y: 12, Z: 0}, {X: 2, Y: 12, Z: 0}, {X: 4, Y: 12, Z: 0}, {X: 6, Y: 12, Z: 0}, {X: 8, Y: 12, Z: 0}, {X: 10, Y: 12, Z: 0},
	{X: 12, Y: 12, Z: 0}, {X: 2, Y: 2, Z: 1}, {X: 4, Y: 2, Z: 1}, {X: 6, Y: 2, Z: 1}, {X: 8, Y: 2, Z: 1}, {X: 10, Y: 2, Z: 1},
	{X: 2, Y: 4, Z: 1}, {X: 4, Y: 4, Z: 1}, {X: 6, Y: 4, Z: 1}, {X: 8, Y: 4, Z: 1}, {X: 10, Y: 4, Z: 1}, {X: 2, Y: 6, Z: 1},
	{X: 4, Y: 6, Z: 1}, {X: 6, Y: 6, Z: 1}, {X: 8, Y: 6, Z: 1}, {X: 10, Y: 6, Z: 1}, {X: 2, Y: 8, Z: 1}, {X: 4, Y: 8, Z: 1},
	{X: 6, Y: 8, Z: 1}, {X: 8, Y: 8, Z: 1}, {X: 10, Y: 8, Z: 1}, {X: 2, Y: 10, Z: 1}, {X: 4, Y: 10, Z: 1}, {X: 6, Y: 10, Z: 1},
	{X: 8, Y: 10, Z: 1}, {X: 10, Y: 10, Z: 1}, {X: 4, Y: 4, Z: 2}, {X: 6, Y: 4, Z: 2}, {X: 8, Y: 4, Z: 2}, {X: 4, Y: 6, Z: 2},
	{X: 6, Y: 6, Z: 2}, {X: 8, Y: 6, Z: 2}, {X: 4, Y: 8, Z: 2}, {X: 6, Y: 8, Z: 2}, {X: 8, Y: 8, Z: 2}, {X: 5, Y: 5, Z: 3},
	{X: 7, Y: 5, Z: 3}, {X: 5, Y: 7, Z: 3}, {X: 7, Y: 7, Z: 3}, {X: 6, Y: 6, Z: 4},
}

// templeTable: three pyramids side by side, each 3x3 base, half-offset 2x2,
// single third-layer tile. The left and middle pyramids carry a fourth-layer
// cap; the right one does not, keeping the total even.
var templeTable = []board.Pos{
	{X: 2, Y: 8, Z: 0}, {X: 4, Y: 8, Z: 0}, {X: 6, Y: 8, Z: 0}, {X: 2, Y: 10, Z: 0}, {X: 4, Y: 10, Z: 0}, {X: 6, Y: 10, Z: 0},
	{X: 2, Y: 12, Z: 0}, {X: 4, Y: 12, Z: 0}, {X: 6, Y: 12, Z: 0}, {X: 3, Y: 9, Z: 1}, {X: 5, Y: 9, Z: 1}, {X: 3, Y: 11, Z: 1},
	{X: 5, Y: 11, Z: 1}, {X: 4, Y: 10, Z: 2}, {X: 4, Y: 10, Z: 3}, {X: 11, Y: 8, Z: 0}, {X: 13, Y: 8, Z: 0}, {X: 15, Y: 8, Z: 0},
	{X: 11, Y: 10, Z: 0}, {X: 13, Y: 10, Z: 0}, {X: 15, Y: 10, Z: 0}, {X: 11, Y: 12, Z: 0}, {X: 13, Y: 12, Z: 0}, {X: 15, Y: 12, Z: 0},
	{X: 12, Y: 9, Z: 1}, {X: 14, Y: 9, Z: 1}, {X: 12, Y: 11, Z: 1}, {X: 14, Y: 11, Z: 1}, {X: 13, Y: 10, Z: 2}, {X: 13, Y: 10, Z: 3},
	{X: 20, Y: 8, Z: 0}, {X: 22, Y: 8, Z: 0}, {X: 24, Y: 8, Z: 0}, {X: 20, Y: 10, Z: 0}, {X: 22, Y: 10, Z: 0}, {X: 24, Y: 10, Z: 0},
	{X: 20, Y: 12, Z: 0}, {X: 22, Y: 12, Z: 0}, {X: 24, Y: 12, Z: 0}, {X: 21, Y: 9, Z: 1}, {X: 23, Y: 9, Z: 1}, {X: 21, Y: 11, Z: 1},
	{X: 23, Y: 11, Z: 1}, {X: 22, Y: 10, Z: 2},
}

// dragonTable: central spine (two base tiles, two stacked above), two ringed
// circles per wing with half-offset middle rings and layered centers, and a
// three-high connector joining each wing to the spine.
var dragonTable = []board.Pos{
	{X: 13, Y: 10, Z: 0}, {X: 15, Y: 10, Z: 0}, {X: 14, Y: 9, Z: 1}, {X: 14, Y: 8, Z: 2}, {X: 6, Y: 6, Z: 0}, {X: 8, Y: 6, Z: 0},
	{X: 10, Y: 6, Z: 0}, {X: 6, Y: 8, Z: 0}, {X: 10, Y: 8, Z: 0}, {X: 6, Y: 10, Z: 0}, {X: 8, Y: 10, Z: 0}, {X: 10, Y: 10, Z: 0},
	{X: 7, Y: 7, Z: 1}, {X: 9, Y: 7, Z: 1}, {X: 7, Y: 9, Z: 1}, {X: 9, Y: 9, Z: 1}, {X: 8, Y: 8, Z: 2}, {X: 4, Y: 12, Z: 0},
	{X: 6, Y: 12, Z: 0}, {X: 8, Y: 12, Z: 0}, {X: 10, Y: 12, Z: 0}, {X: 4, Y: 14, Z: 0}, {X: 10, Y: 14, Z: 0}, {X: 4, Y: 16, Z: 0},
	{X: 6, Y: 16, Z: 0}, {X: 8, Y: 16, Z: 0}, {X: 10, Y: 16, Z: 0}, {X: 5, Y: 13, Z: 1}, {X: 7, Y: 13, Z: 1}, {X: 9, Y: 13, Z: 1},
	{X: 5, Y: 15, Z: 1}, {X: 9, Y: 15, Z: 1}, {X: 7, Y: 15, Z: 1}, {X: 7, Y: 14, Z: 2}, {X: 6, Y: 14, Z: 2}, {X: 8, Y: 14, Z: 2},
	{X: 7, Y: 13, Z: 2}, {X: 7, Y: 15, Z: 2}, {X: 12, Y: 9, Z: 0}, {X: 12, Y: 9, Z: 1}, {X: 12, Y: 9, Z: 2}, {X: 18, Y: 6, Z: 0},
	{X: 20, Y: 6, Z: 0}, {X: 22, Y: 6, Z: 0}, {X: 18, Y: 8, Z: 0}, {X: 22, Y: 8, Z: 0}, {X: 18, Y: 10, Z: 0}, {X: 20, Y: 10, Z: 0},
	{X: 22, Y: 10, Z: 0}, {X: 19, Y: 7, Z: 1}, {X: 21, Y: 7, Z: 1}, {X: 19, Y: 9, Z: 1}, {X: 21, Y: 9, Z: 1}, {X: 20, Y: 8, Z: 2},
	{X: 18, Y: 12, Z: 0}, {X: 20, Y: 12, Z: 0}, {X: 22, Y: 12, Z: 0}, {X: 24, Y: 12, Z: 0}, {X: 18, Y: 14, Z: 0}, {X: 24, Y: 14, Z: 0},
	{X: 18, Y: 16, Z: 0}, {X: 20, Y: 16, Z: 0}, {X: 22, Y: 16, Z: 0}, {X: 24, Y: 16, Z: 0}, {X: 19, Y: 13, Z: 1}, {X: 21, Y: 13, Z: 1},
	{X: 23, Y: 13, Z: 1}, {X: 19, Y: 15, Z: 1}, {X: 23, Y: 15, Z: 1}, {X: 21, Y: 15, Z: 1}, {X: 21, Y: 14, Z: 2}, {X: 20, Y: 14, Z: 2},
	{X: 22, Y: 14, Z: 2}, {X: 21, Y: 13, Z: 2}, {X: 21, Y: 15, Z: 2}, {X: 16, Y: 9, Z: 0}, {X: 16, Y: 9, Z: 1}, {X: 16, Y: 9, Z: 2},
}
