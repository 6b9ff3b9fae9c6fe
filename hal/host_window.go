//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	HeadlessConfig
	Title   string
	Caption string
	Scale   int
}

// RunWindow bootstraps the firmware on h, drives its interrupts in the
// background and shows the scanned frames in a window. It blocks until the
// window closes, Escape is pressed or the interrupt runner stops.
func RunWindow(ctx context.Context, h *Host, boot func(HAL), cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 8
	}
	if cfg.Title == "" {
		cfg.Title = "shimmer"
	}

	boot(h)

	ctx, cancel := context.WithCancel(ctx)
	g := &hostGame{h: h, caption: cfg.Caption, canvas: newCanvas()}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.setErr(h.Run(ctx, cfg.HeadlessConfig))
	}()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(canvasWidth*cfg.Scale, canvasHeight*cfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)

	cancel()
	wg.Wait()
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		err = g.runErr()
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

type hostGame struct {
	h       *Host
	caption string
	canvas  *canvas
	fbImg   *ebiten.Image

	mu   sync.Mutex
	err  error
	done bool
}

func (g *hostGame) setErr(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
	g.done = true
}

func (g *hostGame) runErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.mu.Lock()
	done, err := g.done, g.err
	g.mu.Unlock()
	if done {
		if err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame, _ := g.h.Frame()
	g.canvas.draw(&frame, g.caption)

	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(canvasWidth, canvasHeight)
	}
	g.fbImg.WritePixels(g.canvas.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasWidth, canvasHeight
}
