package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shimmer/font"
	"shimmer/kernel"
	"shimmer/matrix"
)

// fakeMatrix records every published image.
type fakeMatrix struct {
	shown []matrix.Image
}

func (m *fakeMatrix) Show(img *matrix.Image) { m.shown = append(m.shown, *img) }
func (m *fakeMatrix) Refresh()               {}

type fakeClock struct{}

func (fakeClock) Acknowledge() {}

// seqRNG returns bytes from a fixed sequence, wrapping around.
type seqRNG struct {
	seq []uint8
	i   int
}

func (r *seqRNG) Byte() uint8 {
	b := r.seq[r.i%len(r.seq)]
	r.i++
	return b
}

func newEngine(t *testing.T, msg string, threshold uint8, rng *seqRNG) (*Engine, *fakeMatrix, *kernel.Peripherals) {
	t.Helper()
	p := kernel.NewPeripherals()
	m := &fakeMatrix{}
	p.Display.Install(m)
	p.Clock.Install(fakeClock{})
	p.RNG.Install(rng)

	e, err := New(p, Config{Message: msg, Threshold: threshold})
	require.NoError(t, err)
	return e, m, p
}

// litColumn is the column a glyph column reveals when every draw is level.
func litColumn(bits uint8, level uint8) matrix.Column {
	var col matrix.Column
	for r := 0; r < matrix.Rows; r++ {
		if bits&(1<<uint(r)) != 0 {
			col[r] = level
		}
	}
	return col
}

func TestColumnSequenceAB(t *testing.T) {
	e, m, _ := newEngine(t, "AB", 1, &seqRNG{seq: []uint8{9}})

	a, ok := font.Lookup('A')
	require.True(t, ok)
	b, ok := font.Lookup('B')
	require.True(t, ok)

	var want []matrix.Column
	for _, bits := range a {
		want = append(want, litColumn(bits, 9))
	}
	want = append(want, matrix.Column{})
	for _, bits := range b {
		want = append(want, litColumn(bits, 9))
	}
	for i := 0; i < CycleGap; i++ {
		want = append(want, matrix.Column{})
	}
	for _, bits := range a {
		want = append(want, litColumn(bits, 9))
	}

	for i, w := range want {
		require.Truef(t, e.Tick(), "tick %d did not scroll", i)
		buf := e.Buffer()
		assert.Equalf(t, w, buf.Col(matrix.Cols-1), "revealed column at step %d", i)
	}
	require.Len(t, m.shown, len(want))
	assert.Equal(t, e.Buffer(), m.shown[len(m.shown)-1])
}

func TestCursorWrapsAfterFullCycle(t *testing.T) {
	const msg = "software9119.technology"
	e, _, _ := newEngine(t, msg, 1, &seqRNG{seq: []uint8{0, 7, 13, 255}})

	n := e.CycleLength()
	assert.Equal(t, font.Width*len(msg)+(len(msg)-1)*CharGap+CycleGap, n)
	assert.Equal(t, CycleLength(len(msg)), n)

	for i := 1; i <= n; i++ {
		e.Step()
		if i < n {
			require.NotEqualf(t, Cursor{}, e.Cursor(), "cursor back at start after %d of %d steps", i, n)
		}
	}
	assert.Equal(t, Cursor{}, e.Cursor())
	assert.Equal(t, uint64(n), e.Steps())
}

func TestSpacingCountsDownWithoutAdvancing(t *testing.T) {
	e, _, _ := newEngine(t, "Hi!", 1, &seqRNG{seq: []uint8{42}})

	sawCycleGap := false
	for i := 0; i < 3*e.CycleLength(); i++ {
		before := e.Cursor()
		e.Step()
		after := e.Cursor()

		if before.Spacing == CycleGap {
			sawCycleGap = true
		}
		if before.InSpacing() {
			assert.Equalf(t, before.Spacing-1, after.Spacing, "step %d", i)
			assert.Equalf(t, before.Char, after.Char, "character advanced during spacing at step %d", i)
			assert.Zero(t, after.Column)
		}
	}
	assert.True(t, sawCycleGap)
}

func TestCharacterGapIsSingleColumn(t *testing.T) {
	e, _, _ := newEngine(t, "AB", 1, &seqRNG{seq: []uint8{9}})

	for i := 0; i < font.Width; i++ {
		e.Step()
	}
	assert.Equal(t, Cursor{Char: 1, Column: 0, Spacing: CharGap}, e.Cursor())
	e.Step()
	assert.Equal(t, Cursor{Char: 1}, e.Cursor())
}

func TestBufferStaysInRange(t *testing.T) {
	seq := make([]uint8, 256)
	for i := range seq {
		seq[i] = uint8(i * 97)
	}
	e, m, _ := newEngine(t, "software9119.technology", 1, &seqRNG{seq: seq})

	for i := 0; i < 2*e.CycleLength(); i++ {
		e.Step()
	}
	for i, img := range m.shown {
		require.Truef(t, img.Valid(), "step %d:\n%s", i, img.String())
		for r := range img {
			for c, v := range img[r] {
				if v != 0 {
					require.GreaterOrEqualf(t, v, uint8(MinLit), "step %d pixel (%d,%d)", i, r, c)
				}
			}
		}
	}
}

func TestStepReturnsRNG(t *testing.T) {
	e, _, p := newEngine(t, "A", 1, &seqRNG{seq: []uint8{1}})
	e.Step()
	assert.True(t, p.RNG.Installed())
}

func TestTickHonoursThreshold(t *testing.T) {
	e, m, _ := newEngine(t, "A", 19, &seqRNG{seq: []uint8{1}})

	for i := 1; i <= 3*19; i++ {
		stepped := e.Tick()
		assert.Equalf(t, i%19 == 0, stepped, "tick %d", i)
	}
	assert.Len(t, m.shown, 3)
	assert.Equal(t, uint64(3), e.Steps())
}

func TestNewRejectsBadConfig(t *testing.T) {
	p := kernel.NewPeripherals()

	_, err := New(p, Config{Message: "", Threshold: 1})
	assert.Error(t, err)

	_, err = New(p, Config{Message: "A", Threshold: 0})
	assert.Error(t, err)

	_, err = New(p, Config{Message: "tab\there", Threshold: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no glyph")

	_, err = New(nil, Config{Message: "A", Threshold: 1})
	assert.Error(t, err)
}

func TestNewUsesCustomFont(t *testing.T) {
	var tbl font.Table
	tbl.Set('x', "#....", ".....", ".....", ".....", ".....")

	p := kernel.NewPeripherals()
	p.Display.Install(&fakeMatrix{})
	p.RNG.Install(&seqRNG{seq: []uint8{6}})

	e, err := New(p, Config{Message: "x", Threshold: 1, Font: &tbl})
	require.NoError(t, err)
	e.Step()
	buf := e.Buffer()
	assert.Equal(t, matrix.Column{6, 0, 0, 0, 0}, buf.Col(matrix.Cols-1))

	_, err = New(p, Config{Message: "A", Threshold: 1, Font: &tbl})
	assert.Error(t, err)
}

func TestStepWithoutDisplayIsFatal(t *testing.T) {
	var halted []kernel.PanicInfo
	kernel.SetPanicHandler(func(info kernel.PanicInfo) { halted = append(halted, info) })
	defer kernel.SetPanicHandler(nil)

	p := kernel.NewPeripherals()
	p.RNG.Install(&seqRNG{seq: []uint8{1}})
	e, err := New(p, Config{Message: "A", Threshold: 1})
	require.NoError(t, err)

	assert.Panics(t, e.Step)
	require.Len(t, halted, 1)
	assert.EqualError(t, halted[0].Value.(error), "kernel: display used before install")
	assert.True(t, p.RNG.Installed(), "rng must be back before publishing")
}
