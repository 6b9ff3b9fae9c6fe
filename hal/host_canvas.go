//go:build !tinygo

package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"shimmer/matrix"
)

// Preview geometry in logical pixels: a bordered grid of LED cells with a
// caption strip underneath.
const (
	cellSize      = 8
	cellGap       = 2
	canvasMargin  = 3
	captionHeight = 9

	gridSize     = matrix.Cols*cellSize + (matrix.Cols-1)*cellGap
	canvasWidth  = gridSize + 2*canvasMargin
	canvasHeight = gridSize + 2*canvasMargin + captionHeight
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ledOffColor     = color.RGBA{R: 0x2A, G: 0x14, B: 0x14, A: 0xFF}
	captionColor    = color.RGBA{R: 0x90, G: 0x90, B: 0xA0, A: 0xFF}
)

// canvas is the RGBA surface the preview window draws into.
type canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*canvas)(nil)

func newCanvas() *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))}
}

func (c *canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *canvas) Display() error { return nil }

func (c *canvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

// draw paints frame and caption over a cleared background.
func (c *canvas) draw(frame *matrix.Image, caption string) {
	c.fill(c.img.Bounds(), backgroundColor)
	for r := 0; r < matrix.Rows; r++ {
		for col := 0; col < matrix.Cols; col++ {
			x := canvasMargin + col*(cellSize+cellGap)
			y := canvasMargin + r*(cellSize+cellGap)
			c.fill(image.Rect(x, y, x+cellSize, y+cellSize), levelColor(frame[r][col]))
		}
	}
	if caption != "" {
		baseline := int16(canvasMargin + gridSize + captionHeight - 1)
		tinyfont.WriteLine(c, &tinyfont.Picopixel, canvasMargin, baseline, caption, captionColor)
	}
}

// levelColor maps a greyscale level onto the red of the board LEDs.
func levelColor(level uint8) color.RGBA {
	if level == 0 {
		return ledOffColor
	}
	if level > matrix.MaxBrightness {
		level = matrix.MaxBrightness
	}
	red := 0x50 + int(level)*(0xFF-0x50)/matrix.MaxBrightness
	return color.RGBA{R: uint8(red), G: uint8(red / 6), B: uint8(red / 8), A: 0xFF}
}
