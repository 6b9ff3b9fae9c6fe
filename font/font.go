// Package font is the glyph source for the scrolling display: a 5×5 bitmap for
// every printable ASCII character, stored column by column.
package font

import (
	"fmt"
	"strings"

	"shimmer/matrix"
)

// Width is the number of columns of every character glyph.
const Width = 5

// Glyph is a read-only run of columns, leftmost first. Bit r of a column is
// set when row r (0 at the top) is lit.
type Glyph []uint8

// Lit reports whether row r of column c is lit.
func (g Glyph) Lit(c, r int) bool {
	return g[c]&(1<<uint(r)) != 0
}

// Spacing is the single blank column inserted between characters and between
// repeats of a message.
var Spacing = Glyph{0}

// Source maps a character to its glyph.
type Source interface {
	Lookup(c byte) (Glyph, bool)
}

// Table is a Source backed by a fixed array indexed by character.
type Table struct {
	glyphs [128][Width]uint8
	have   [128]bool
}

// Lookup returns a copy of the glyph for c; the table itself never changes
// through it.
func (t *Table) Lookup(c byte) (Glyph, bool) {
	if int(c) >= len(t.glyphs) || !t.have[c] {
		return nil, false
	}
	g := make(Glyph, Width)
	copy(g, t.glyphs[c][:])
	return g, true
}

// Set stores a glyph drawn as matrix.Rows strings of Width characters, where
// '#' is lit and anything else is off. It panics on malformed art.
func (t *Table) Set(c byte, rows ...string) {
	if int(c) >= len(t.glyphs) {
		panic(fmt.Sprintf("font: character %#x out of range", c))
	}
	if len(rows) != matrix.Rows {
		panic(fmt.Sprintf("font: glyph %q has %d rows, want %d", c, len(rows), matrix.Rows))
	}
	var cols [Width]uint8
	for r, line := range rows {
		if len(line) != Width {
			panic(fmt.Sprintf("font: glyph %q row %d is %q, want %d columns", c, r, line, Width))
		}
		for col := 0; col < Width; col++ {
			if line[col] == '#' {
				cols[col] |= 1 << uint(r)
			}
		}
	}
	t.glyphs[c] = cols
	t.have[c] = true
}

// Lookup returns the glyph for c from the Default table.
func Lookup(c byte) (Glyph, bool) {
	return Default.Lookup(c)
}

// Check returns an error naming every character of message that src has no
// glyph for.
func Check(src Source, message string) error {
	var missing []string
	seen := map[byte]bool{}
	for i := 0; i < len(message); i++ {
		c := message[i]
		if _, ok := src.Lookup(c); ok || seen[c] {
			continue
		}
		seen[c] = true
		missing = append(missing, fmt.Sprintf("%q at %d", c, i))
	}
	if len(missing) > 0 {
		return fmt.Errorf("font: no glyph for %s", strings.Join(missing, ", "))
	}
	return nil
}
