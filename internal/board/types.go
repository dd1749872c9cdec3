// internal/board/types.go
//
// Core type definitions for the Mahjong Solitaire board.
// Defines:
//   - Kind: a tile's character kind (index into the active tileset).
//   - Pos: 3D grid position on the double-resolution layout grid.
//   - Placement: position + kind pair produced by the layout generator.
//   - Tile: state for a single tile on the board.

package board

// Kind identifies a tile's character kind. Two tiles match when their kinds
// are equal. Kinds are indices into the active tileset (12 by default).
type Kind int

// Pos is a tile position on the layout grid.
//
// The grid is double resolution: a tile face is two units wide and two units
// tall, so horizontally adjacent tiles sit two X units apart and half-tile
// offset stacking lands on odd coordinates. Z is the stacking layer
// (0 = bottom); higher layers sit on top of lower ones.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Placement assigns a character kind to a grid position.
// The layout generator emits one Placement per tile.
type Placement struct {
	Pos  Pos
	Kind Kind
}

// Tile is a single piece on the board.
type Tile struct {
	ID      int  // Index in placement order; stable for the life of the board.
	Kind    Kind // Character kind; matching tiles share a kind.
	Pos     Pos  // Grid position; never changes after placement.
	Removed bool // True once the tile has been cleared by a match.
}
