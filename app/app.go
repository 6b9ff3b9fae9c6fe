package app

import (
	"shimmer/font"
	"shimmer/hal"
	"shimmer/internal/buildinfo"
	"shimmer/kernel"
	"shimmer/scroll"
)

//go:generate go run ../cmd/msgcheck -q

const (
	// Message is the compiled-in text scrolled across the display.
	Message = "software9119.technology"
	// Threshold is the number of clock ticks per scroll step: about 5.3 columns
	// per second at the ~99.9 Hz RTC tick.
	Threshold = 19
)

// Config overrides the compiled-in animation. Zero fields take the defaults.
type Config struct {
	Message   string
	Threshold uint8
	Font      font.Source
}

func (c Config) withDefaults() Config {
	if c.Message == "" {
		c.Message = Message
	}
	if c.Threshold == 0 {
		c.Threshold = Threshold
	}
	if c.Font == nil {
		c.Font = font.Default
	}
	return c
}

// System is the running firmware: the peripheral registry, the scroll engine
// and the two interrupt handler bodies.
type System struct {
	periph *kernel.Peripherals
	engine *scroll.Engine
	log    hal.Logger
}

// New bootstraps the firmware on h and enables its interrupts. Setup defects
// halt through kernel.Fatal.
func New(h hal.HAL, cfg Config) *System {
	cfg = cfg.withDefaults()

	p := kernel.NewPeripherals()
	installPanicHandler(h.Logger(), p)
	p.Install(h)

	e, err := scroll.New(p, scroll.Config{
		Message:   cfg.Message,
		Threshold: cfg.Threshold,
		Font:      cfg.Font,
	})
	if err != nil {
		kernel.Fatal(err)
	}

	s := &System{periph: p, engine: e, log: h.Logger()}
	s.log.WriteLineString("shimmer " + buildinfo.Short() + ": scrolling " + quote(cfg.Message))

	h.Enable(s.Tick, s.Refresh)
	return s
}

// Run bootstraps the firmware with the compiled-in defaults and parks the
// foreground task forever.
func Run(h hal.HAL) {
	_ = New(h, Config{})
	select {}
}

// Tick is the clock-tick interrupt body. The event is acknowledged first so
// the interrupt does not re-fire.
func (s *System) Tick() {
	s.periph.Clock.With(hal.Clock.Acknowledge)
	s.engine.Tick()
}

// Refresh is the display refresh interrupt body.
func (s *System) Refresh() {
	s.periph.Display.With(hal.Matrix.Refresh)
}

// Engine returns the scroll engine driven by Tick.
func (s *System) Engine() *scroll.Engine { return s.engine }

// Peripherals returns the registry shared by both interrupt handlers.
func (s *System) Peripherals() *kernel.Peripherals { return s.periph }

func quote(s string) string {
	return "\"" + s + "\""
}
