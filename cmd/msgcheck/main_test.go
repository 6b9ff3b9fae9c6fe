//go:build !tinygo

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shimmer/app"
	"shimmer/font"
	"shimmer/scroll"
)

func TestStripCompiledInMessage(t *testing.T) {
	rows, err := strip(app.Message, font.Default)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, scroll.CycleLength(len(app.Message)))
	}
	// The cycle ends with the gap before the repeat.
	for _, row := range rows {
		assert.True(t, strings.HasSuffix(row, "....."), row)
	}
}

func TestStripLayout(t *testing.T) {
	var tbl font.Table
	tbl.Set('|', "#....", "#....", "#....", "#....", "#....")

	rows, err := strip("||", &tbl)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, "#....."+"#...."+".....", row)
	}
}

func TestStripRejectsUncoveredMessage(t *testing.T) {
	_, err := strip("caf\xc3\xa9", font.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no glyph")
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "strip.txt")
	require.NoError(t, run("Hi", out, false))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Len(t, lines[0], scroll.CycleLength(2))
}
