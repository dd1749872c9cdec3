// internal/layout/generate.go
//
// Procedural tile generation for a level.
// Takes a level's coordinate table, builds a character-kind list where every
// kind appears an even number of times, shuffles it with the caller's
// randomness source, and zips it against the table in generation order.
//
// Kind distribution: for n tiles there are n/2 pairs. Each kind gets
// pairs/kindCount pairs; the remainder pairs go to the first kinds. The pair
// list is then doubled, so no kind can ever end up with an odd count.
//
// Odd coordinate tables are a configuration bug, not a player-reachable
// state, and are rejected with ErrMalformedLayout.

package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/robalobadob/mahjong/go-server/internal/board"
)

// ErrMalformedLayout is returned when a level's coordinate table violates a
// generation invariant (odd tile count, unknown level).
var ErrMalformedLayout = errors.New("malformed layout")

// Generate produces the full placement list for a level.
// Positions come from the level's static table in table order; kinds are
// assigned in matched pairs and shuffled with rng. The same rng state always
// yields the same assignment.
func Generate(l Level, rng *rand.Rand) ([]board.Placement, error) {
	positions := Positions(l)
	if positions == nil {
		return nil, fmt.Errorf("%w: unknown level %d", ErrMalformedLayout, l)
	}
	if len(positions)%2 != 0 {
		return nil, fmt.Errorf("%w: odd tile count %d for level %s", ErrMalformedLayout, len(positions), l.Name())
	}

	kinds := pairedKinds(len(positions)/2, KindCount())
	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	out := make([]board.Placement, len(positions))
	for i, pos := range positions {
		out[i] = board.Placement{Pos: pos, Kind: kinds[i]}
	}
	return out, nil
}

// pairedKinds builds a kind list of length pairs*2 where every kind count is
// even: pairs/kindCount pairs per kind, remainder pairs spread over the
// first kinds, then the whole list doubled.
func pairedKinds(pairs, kindCount int) []board.Kind {
	perKind := pairs / kindCount
	remainder := pairs % kindCount

	kinds := make([]board.Kind, 0, pairs*2)
	for k := 0; k < kindCount; k++ {
		for i := 0; i < perKind; i++ {
			kinds = append(kinds, board.Kind(k))
		}
	}
	for k := 0; k < remainder; k++ {
		kinds = append(kinds, board.Kind(k))
	}
	return append(kinds, kinds...)
}
