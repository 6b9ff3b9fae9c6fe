//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/physic"
)

// HeadlessConfig controls the simulated interrupt controller.
type HeadlessConfig struct {
	Enabled     bool
	TickRate    physic.Frequency
	RefreshRate physic.Frequency
	// Ticks stops the run after N clock events (0 = run until ctx is done).
	Ticks uint64
}

const (
	// DefaultTickRate is RTC0 with prescaler 327 against the 32.768 kHz LFCLK.
	DefaultTickRate = 32768 * physic.Hertz / 328
	// DefaultRefreshRate scans about 100 greyscale frames per second.
	DefaultRefreshRate = 4500 * physic.Hertz
)

// RunHeadless bootstraps the firmware on h and drives its interrupts without
// opening a window.
func RunHeadless(ctx context.Context, h *Host, boot func(HAL), cfg HeadlessConfig) error {
	boot(h)
	return h.Run(ctx, cfg)
}

// Run drives the tick and refresh handlers from two goroutines at their
// configured rates until ctx is done, the tick budget is spent or a tick
// handler fails to acknowledge its event.
func (h *Host) Run(ctx context.Context, cfg HeadlessConfig) error {
	tickPeriod, err := period("tick", cfg.TickRate, DefaultTickRate)
	if err != nil {
		return err
	}
	refreshPeriod, err := period("refresh", cfg.RefreshRate, DefaultRefreshRate)
	if err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer stop()
		t := time.NewTicker(tickPeriod)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return ctx.Err()
			case <-t.C:
				if err := h.FireTick(); err != nil {
					return err
				}
				if cfg.Ticks > 0 && h.Ticks() >= cfg.Ticks {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		t := time.NewTicker(refreshPeriod)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				h.FireRefresh()
			}
		}
	})

	return g.Wait()
}

func period(name string, f, fallback physic.Frequency) (time.Duration, error) {
	if f == 0 {
		f = fallback
	}
	if f < 0 {
		return 0, fmt.Errorf("hal: invalid %s rate %s", name, f)
	}
	d := f.Period()
	if d <= 0 {
		return 0, fmt.Errorf("hal: %s rate %s too high", name, f)
	}
	return d, nil
}
