//go:build !tinygo

package hal

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"shimmer/matrix"
)

// maxRefire bounds how often the host re-enters a tick handler that returns
// without acknowledging the clock event.
const maxRefire = 64

// HostConfig configures the host HAL.
type HostConfig struct {
	// Seed seeds the random source. Zero picks a random seed.
	Seed uint64
	// Log receives HAL log lines. Nil discards them.
	Log *zerolog.Logger
}

// Host is the desktop implementation of HAL. Interrupts are simulated by
// FireTick and FireRefresh, normally called from RunHeadless or RunWindow.
type Host struct {
	logger *hostLogger
	matrix *hostMatrix
	clock  *hostClock
	rng    *hostRNG

	mu      sync.Mutex
	tick    func()
	refresh func()
}

// New returns a host HAL with default configuration.
func New() HAL {
	return NewHost(HostConfig{})
}

// NewHost returns a host HAL.
func NewHost(cfg HostConfig) *Host {
	zl := zerolog.Nop()
	if cfg.Log != nil {
		zl = *cfg.Log
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Host{
		logger: &hostLogger{zl: zl},
		matrix: &hostMatrix{},
		clock:  &hostClock{},
		rng:    newHostRNG(seed),
	}
}

func (h *Host) Logger() Logger { return h.logger }
func (h *Host) Matrix() Matrix { return h.matrix }
func (h *Host) Clock() Clock   { return h.clock }
func (h *Host) RNG() RNG       { return h.rng }

// Enable registers the interrupt handlers.
func (h *Host) Enable(tick, refresh func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tick = tick
	h.refresh = refresh
}

func (h *Host) handlers() (tick, refresh func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tick, h.refresh
}

// FireTick raises one clock event and runs the tick handler until the event
// is acknowledged. A masked tick stays pending until the next FireTick.
func (h *Host) FireTick() error {
	tick, _ := h.handlers()
	h.clock.raise()
	if tick == nil {
		return nil
	}
	for i := 0; h.clock.Pending(); i++ {
		if i == maxRefire {
			return ErrTickNotAcknowledged
		}
		tick()
	}
	return nil
}

// FireRefresh runs the refresh handler once.
func (h *Host) FireRefresh() {
	if _, refresh := h.handlers(); refresh != nil {
		refresh()
	}
}

// Frame returns the most recently completed frame and the number of frames
// scanned so far.
func (h *Host) Frame() (matrix.Image, uint64) {
	return h.matrix.Frame()
}

// Ticks returns the number of clock events raised.
func (h *Host) Ticks() uint64 { return h.clock.ticks.Load() }

type hostLogger struct {
	zl zerolog.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.zl.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.zl.Info().Msg(string(b))
}

type hostClock struct {
	pending atomic.Bool
	ticks   atomic.Uint64
}

func (c *hostClock) raise() {
	c.ticks.Add(1)
	c.pending.Store(true)
}

func (c *hostClock) Acknowledge() { c.pending.Store(false) }

// Pending reports whether the last event is still unacknowledged.
func (c *hostClock) Pending() bool { return c.pending.Load() }

type hostRNG struct {
	r *rand.Rand
}

func newHostRNG(seed uint64) *hostRNG {
	return &hostRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *hostRNG) Byte() uint8 { return uint8(g.r.Uint32()) }
