//go:build !tinygo

// Command msgcheck verifies that a message can be scrolled with the built-in
// font and prints one full scroll cycle as ASCII art.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"shimmer/app"
	"shimmer/font"
	"shimmer/kernel"
	"shimmer/matrix"
	"shimmer/scroll"
)

func main() {
	var (
		message string
		outPath string
		quiet   bool
	)
	flag.StringVar(&message, "message", app.Message, "Message to check.")
	flag.StringVar(&outPath, "out", "", "Write the strip to this file instead of stdout.")
	flag.BoolVar(&quiet, "q", false, "Only check, do not print the strip.")
	flag.Parse()

	if err := run(message, outPath, quiet); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(message, outPath string, quiet bool) error {
	rows, err := strip(message, font.Default)
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %q: %w", outPath, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// strip runs the scroll engine over one full cycle of message and returns
// the revealed columns, one string per display row.
func strip(message string, src font.Source) ([]string, error) {
	p := kernel.NewPeripherals()
	rec := &columnRecorder{}
	p.Display.Install(rec)
	p.RNG.Install(fullRNG{})

	e, err := scroll.New(p, scroll.Config{Message: message, Threshold: 1, Font: src})
	if err != nil {
		return nil, err
	}
	for i := e.CycleLength(); i > 0; i-- {
		e.Step()
	}

	rows := make([]string, matrix.Rows)
	for r := range rows {
		var b strings.Builder
		for _, col := range rec.cols {
			if col[r] > 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows, nil
}

// columnRecorder keeps the newest column of every published image.
type columnRecorder struct {
	cols []matrix.Column
}

func (c *columnRecorder) Show(img *matrix.Image) {
	c.cols = append(c.cols, img.Col(matrix.Cols-1))
}

func (c *columnRecorder) Refresh() {}

type fullRNG struct{}

func (fullRNG) Byte() uint8 { return matrix.MaxBrightness }
