// Package scroll is the animation engine run from the clock-tick interrupt: it
// walks a message glyph by glyph, shifts one column into the display buffer per
// scroll step and jitters the brightness of every lit pixel.
package scroll

import (
	"errors"
	"fmt"

	"shimmer/font"
	"shimmer/hal"
	"shimmer/kernel"
	"shimmer/matrix"
)

const (
	// CharGap is the number of blank columns between two characters.
	CharGap = 1
	// CycleGap is the number of blank columns before the message repeats.
	CycleGap = 5
)

// Config describes the compiled-in animation.
type Config struct {
	Message string
	// Threshold is the number of clock ticks per scroll step.
	Threshold uint8
	// Font defaults to font.Default.
	Font font.Source
}

// Cursor is the position of the scroll within the message.
type Cursor struct {
	// Char indexes the message.
	Char int
	// Column indexes the glyph being revealed.
	Column int
	// Spacing counts the blank columns left before Char is revealed.
	Spacing uint8
}

// InSpacing reports whether the next step reveals a blank spacing column.
func (c Cursor) InSpacing() bool { return c.Spacing > 0 }

// Engine owns the display buffer and the scroll state. It is driven from a
// single context and is not safe for concurrent use.
type Engine struct {
	periph  *kernel.Peripherals
	message string
	glyphs  []font.Glyph

	div   Divider
	buf   matrix.Image
	cur   Cursor
	steps uint64
}

// New validates cfg and returns an engine publishing through p.
func New(p *kernel.Peripherals, cfg Config) (*Engine, error) {
	if p == nil {
		return nil, errors.New("scroll: nil peripherals")
	}
	if cfg.Message == "" {
		return nil, errors.New("scroll: empty message")
	}
	if cfg.Threshold == 0 {
		return nil, errors.New("scroll: tick threshold must be at least 1")
	}
	src := cfg.Font
	if src == nil {
		src = font.Default
	}
	if err := font.Check(src, cfg.Message); err != nil {
		return nil, fmt.Errorf("scroll: %w", err)
	}

	glyphs := make([]font.Glyph, len(cfg.Message))
	for i := 0; i < len(cfg.Message); i++ {
		glyphs[i], _ = src.Lookup(cfg.Message[i])
		if len(glyphs[i]) == 0 {
			return nil, fmt.Errorf("scroll: empty glyph for %q", cfg.Message[i])
		}
	}

	return &Engine{
		periph:  p,
		message: cfg.Message,
		glyphs:  glyphs,
		div:     Divider{Threshold: cfg.Threshold},
	}, nil
}

// Tick counts one clock tick and runs a scroll step when the divider fires.
// It reports whether a step ran.
func (e *Engine) Tick() bool {
	if !e.div.Tick() {
		return false
	}
	e.Step()
	return true
}

// Step runs one scroll step: shift, reveal the next column with jittered
// brightness, publish the buffer and advance the cursor.
func (e *Engine) Step() {
	g := e.glyph()
	bits := g[e.cur.Column]

	var col matrix.Column
	rng := e.periph.RNG.Take()
	for r := 0; r < matrix.Rows; r++ {
		if bits&(1<<uint(r)) != 0 {
			col[r] = Jitter(rng.Byte())
		}
	}
	e.periph.RNG.Put(rng)

	e.buf.Shift(col)

	e.periph.Display.With(func(m hal.Matrix) { m.Show(&e.buf) })

	e.advance(len(g))
	e.steps++
}

// glyph returns the glyph being revealed: the spacing column while the
// countdown runs, the current character otherwise.
func (e *Engine) glyph() font.Glyph {
	if e.cur.InSpacing() {
		return font.Spacing
	}
	return e.glyphs[e.cur.Char]
}

func (e *Engine) advance(width int) {
	e.cur.Column++
	if e.cur.Column < width {
		return
	}
	e.cur.Column = 0

	if e.cur.InSpacing() {
		e.cur.Spacing--
		return
	}

	e.cur.Char++
	if e.cur.Char == len(e.message) {
		e.cur.Char = 0
		e.cur.Spacing = CycleGap
		return
	}
	e.cur.Spacing = CharGap
}

// Cursor returns the scroll position.
func (e *Engine) Cursor() Cursor { return e.cur }

// Buffer returns a copy of the display buffer.
func (e *Engine) Buffer() matrix.Image { return e.buf }

// Steps returns the number of scroll steps run.
func (e *Engine) Steps() uint64 { return e.steps }

// Message returns the scrolled text.
func (e *Engine) Message() string { return e.message }

// CycleLength is the number of steps after which the cursor returns to the
// start of the message.
func (e *Engine) CycleLength() int {
	n := CycleGap + (len(e.glyphs)-1)*CharGap
	for _, g := range e.glyphs {
		n += len(g)
	}
	return n
}

// CycleLength is the number of scroll steps in one pass of an n-character
// message, including the gaps.
func CycleLength(n int) int {
	return font.Width*n + (n-1)*CharGap + CycleGap
}
