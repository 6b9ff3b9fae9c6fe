package hal

import (
	"errors"

	"shimmer/matrix"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Matrix is the LED matrix display driver.
//
// Show publishes the next frame; Refresh performs one step of the multiplexed
// greyscale scan and is called from the refresh interrupt. Callers serialize
// both through the global critical section.
type Matrix interface {
	Show(img *matrix.Image)
	Refresh()
}

// Clock is the tick event source driving the animation.
//
// Acknowledge must be called once per tick interrupt before other work, or the
// interrupt fires again immediately.
type Clock interface {
	Acknowledge()
}

// RNG produces uniformly distributed random bytes.
type RNG interface {
	Byte() uint8
}

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Matrix() Matrix
	Clock() Clock
	RNG() RNG

	// Enable routes the clock tick and display refresh interrupts to the
	// given handlers and unmasks them. Refresh has the higher priority.
	Enable(tick, refresh func())
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrTickNotAcknowledged is returned by the host runners when a tick
	// handler keeps returning without acknowledging the clock event.
	ErrTickNotAcknowledged = errors.New("hal: tick event never acknowledged")
)
