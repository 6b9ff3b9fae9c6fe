package font

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoversPrintableASCII(t *testing.T) {
	for c := byte(0x20); c <= 0x7e; c++ {
		g, ok := Lookup(c)
		require.Truef(t, ok, "no glyph for %q", c)
		require.Lenf(t, g, Width, "glyph %q width", c)
		for _, col := range g {
			assert.Zerof(t, col&^0x1f, "glyph %q sets a bit above row 4", c)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	_, ok := Lookup(0x7f)
	assert.False(t, ok)
	_, ok = Lookup(0xc3)
	assert.False(t, ok)
	_, ok = Lookup('\n')
	assert.False(t, ok)
}

func TestSetColumnEncoding(t *testing.T) {
	var tbl Table
	tbl.Set('x',
		"#....",
		".#...",
		"..#..",
		"...#.",
		"....#",
	)
	g, ok := tbl.Lookup('x')
	require.True(t, ok)
	assert.Equal(t, Glyph{0x01, 0x02, 0x04, 0x08, 0x10}, g)
	assert.True(t, g.Lit(2, 2))
	assert.False(t, g.Lit(2, 3))
}

func TestSetRejectsMalformedArt(t *testing.T) {
	var tbl Table
	assert.Panics(t, func() { tbl.Set('a', "#####") })
	assert.Panics(t, func() { tbl.Set('a', "####", "#####", "#####", "#####", "#####") })
}

func TestSpacingIsOneBlankColumn(t *testing.T) {
	require.Len(t, Spacing, 1)
	assert.Zero(t, Spacing[0])
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(Default, "software9119.technology"))

	err := Check(Default, "a\tb\tc\x80")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'\t' at 1`)
	assert.Contains(t, err.Error(), `'\u0080' at 5`)
	assert.Equal(t, 1, strings.Count(err.Error(), `'\t'`), "each missing character reported once")
}

func TestLookupDoesNotAliasTable(t *testing.T) {
	g, ok := Lookup('A')
	require.True(t, ok)
	want := append(Glyph(nil), g...)

	for i := range g {
		g[i] = 0xff
	}
	again, ok := Lookup('A')
	require.True(t, ok)
	assert.Equal(t, want, again)
}
