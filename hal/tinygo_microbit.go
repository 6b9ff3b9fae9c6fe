//go:build tinygo && microbit_v2

package hal

import (
	"device/nrf"
	"machine"
	"runtime/interrupt"

	"shimmer/matrix"
)

const (
	// rtcPrescaler divides the 32.768 kHz LFCLK down to ~99.9 Hz ticks.
	rtcPrescaler = 327

	// TIMER2 runs at 1 MHz; one compare every 222 µs gives ~4.5 kHz scan
	// steps, about 100 greyscale frames per second.
	timerPrescaler = 4
	timerCompare   = 222

	// NVIC priorities: lower is more urgent. Refresh preempts the tick.
	rtcPriority   = 64
	timerPriority = 32
)

var (
	rowPins = [matrix.Rows]machine.Pin{
		machine.LED_ROW_1, machine.LED_ROW_2, machine.LED_ROW_3, machine.LED_ROW_4, machine.LED_ROW_5,
	}
	colPins = [matrix.Cols]machine.Pin{
		machine.LED_COL_1, machine.LED_COL_2, machine.LED_COL_3, machine.LED_COL_4, machine.LED_COL_5,
	}

	// Interrupt handlers must be plain functions; Enable stores the targets here.
	tickHandler    func()
	refreshHandler func()
)

type microbitHAL struct {
	logger *uartLogger
	matrix *pinMatrix
	clock  rtcClock
	rng    hwRNG
}

// New returns the micro:bit v2 HAL. Peripherals are configured but their
// interrupts stay masked until Enable.
func New() HAL {
	for _, p := range rowPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	for _, p := range colPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	// The runtime keeps the LFCLK running for its own RTC1 timebase.
	nrf.RTC0.PRESCALER.Set(rtcPrescaler)
	nrf.RTC0.INTENSET.Set(nrf.RTC_INTENSET_TICK_Msk)
	nrf.RTC0.TASKS_START.Set(1)

	nrf.TIMER2.MODE.Set(nrf.TIMER_MODE_MODE_Timer)
	nrf.TIMER2.BITMODE.Set(nrf.TIMER_BITMODE_BITMODE_32Bit)
	nrf.TIMER2.PRESCALER.Set(timerPrescaler)
	nrf.TIMER2.CC[0].Set(timerCompare)
	nrf.TIMER2.SHORTS.Set(nrf.TIMER_SHORTS_COMPARE0_CLEAR_Msk)
	nrf.TIMER2.INTENSET.Set(nrf.TIMER_INTENSET_COMPARE0_Msk)
	nrf.TIMER2.TASKS_START.Set(1)

	return &microbitHAL{
		logger: &uartLogger{},
		matrix: &pinMatrix{},
	}
}

func (h *microbitHAL) Logger() Logger { return h.logger }
func (h *microbitHAL) Matrix() Matrix { return h.matrix }
func (h *microbitHAL) Clock() Clock   { return h.clock }
func (h *microbitHAL) RNG() RNG       { return h.rng }

func (h *microbitHAL) Enable(tick, refresh func()) {
	tickHandler = tick
	refreshHandler = refresh

	rtc := interrupt.New(nrf.IRQ_RTC0, rtc0ISR)
	rtc.SetPriority(rtcPriority)

	timer := interrupt.New(nrf.IRQ_TIMER2, timer2ISR)
	timer.SetPriority(timerPriority)

	rtc.Enable()
	timer.Enable()
}

func rtc0ISR(interrupt.Interrupt) {
	if tickHandler != nil {
		tickHandler()
	}
}

func timer2ISR(interrupt.Interrupt) {
	nrf.TIMER2.EVENTS_COMPARE[0].Set(0)
	if refreshHandler != nil {
		refreshHandler()
	}
}

type rtcClock struct{}

func (rtcClock) Acknowledge() { nrf.RTC0.EVENTS_TICK.Set(0) }

type hwRNG struct{}

func (hwRNG) Byte() uint8 {
	v, _ := machine.GetRNG()
	return uint8(v)
}

// pinMatrix drives the row/column GPIOs: rows are active high, columns active
// low.
type pinMatrix struct {
	scan matrix.Scanner
	row  int
}

func (m *pinMatrix) Show(img *matrix.Image) {
	m.scan.Show(img)
}

func (m *pinMatrix) Refresh() {
	row, cols, _ := m.scan.Advance()
	if row != m.row {
		rowPins[m.row].Low()
		m.row = row
	}
	for c, lit := range cols {
		colPins[c].Set(!lit)
	}
	rowPins[row].High()
}

type uartLogger struct{}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	machine.Serial.Write(b)
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}
