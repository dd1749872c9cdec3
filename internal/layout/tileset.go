// internal/layout/tileset.go
//
// Tileset management for the layout generator.
//
// Responsibilities:
//   - Load the character-kind symbols from an environment-provided file or
//     fall back to the embedded default set.
//   - Supply KindCount and Symbol lookups for the generator and the UI layer.
//
// The default set has 12 kinds (classic solitaire sets ship 12 distinct tile
// faces). A custom set may be larger or smaller; the generator only needs at
// least two kinds so every board can hold mismatching pairs.
//
// Environment variables:
//   TILESET_FILE=/path/to/tileset.txt   (one symbol per line, # comments ok)
//
// Initialization is run once (sync.Once).

package layout

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/mahjong/go-server/internal/board"
)

//go:embed default_tileset.txt
var embeddedTileset string

var (
	initOnce   sync.Once
	symbols    []string // one per kind, index = board.Kind
	initialErr error
)

// Init loads the tileset exactly once.
// Returns an error if the resulting set has fewer than two kinds.
func Init() error {
	initOnce.Do(func() {
		var list []string
		if path := os.Getenv("TILESET_FILE"); path != "" {
			var err error
			list, err = readTilesetFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embeddedTileset)
		}
		if len(list) < 2 {
			initialErr = errors.New("tileset: need at least two kinds")
			return
		}
		symbols = list
	})
	return initialErr
}

// readTilesetFile loads one symbol per line, trims whitespace, and skips
// blanks and # comments.
func readTilesetFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into symbols.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out
}

// KindCount returns the number of character kinds in the active tileset.
// Falls back to the embedded default size if Init has not run.
func KindCount() int {
	if len(symbols) == 0 {
		return len(normalizeLines(embeddedTileset))
	}
	return len(symbols)
}

// Symbol returns the display symbol for a kind, or "?" if out of range.
// If Init has not run, the embedded default set is consulted without
// touching package state (Symbol may be called from concurrent handlers).
func Symbol(k board.Kind) string {
	list := symbols
	if len(list) == 0 {
		list = normalizeLines(embeddedTileset)
	}
	if int(k) < 0 || int(k) >= len(list) {
		return "?"
	}
	return list[k]
}
