//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	HeadlessConfig
	Title   string
	Caption string
	Scale   int
}

// RunWindow is unavailable without cgo; use the headless runner instead.
func RunWindow(_ context.Context, _ *Host, _ func(HAL), _ WindowConfig) error {
	return fmt.Errorf("hal: window mode requires cgo (build with CGO_ENABLED=1 or pass -headless): %w", ErrNotImplemented)
}
