package kernel

import "shimmer/hal"

// Peripherals is the registry of hardware handles shared between bootstrap,
// the clock-tick handler and the refresh handler.
//
// Display is used by both interrupt handlers, Clock only by the tick handler
// and RNG only by the scroll engine, which takes it out for the duration of
// one column computation.
type Peripherals struct {
	Display *Slot[hal.Matrix]
	Clock   *Slot[hal.Clock]
	RNG     *Slot[hal.RNG]
}

// NewPeripherals returns a registry with three empty slots.
func NewPeripherals() *Peripherals {
	return &Peripherals{
		Display: NewSlot[hal.Matrix]("display"),
		Clock:   NewSlot[hal.Clock]("clock"),
		RNG:     NewSlot[hal.RNG]("rng"),
	}
}

// Install populates every slot from h, one critical section per handle.
func (p *Peripherals) Install(h hal.HAL) {
	p.Display.Install(h.Matrix())
	p.Clock.Install(h.Clock())
	p.RNG.Install(h.RNG())
}
