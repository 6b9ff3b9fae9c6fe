//go:build !tinygo

package hal

import (
	"sync"

	"shimmer/matrix"
)

// hostMatrix scans published images exactly like the board does, and keeps
// the last completed frame for the window and the preview feed.
//
// Show and Refresh run inside the global critical section; mu only guards the
// snapshot read by goroutines outside it.
type hostMatrix struct {
	scan matrix.Scanner

	mu     sync.Mutex
	frame  matrix.Image
	frames uint64
}

func (m *hostMatrix) Show(img *matrix.Image) {
	m.scan.Show(img)
}

func (m *hostMatrix) Refresh() {
	if _, _, done := m.scan.Advance(); done {
		m.mu.Lock()
		m.frame = m.scan.Latched()
		m.frames = m.scan.Frames()
		m.mu.Unlock()
	}
}

func (m *hostMatrix) Frame() (matrix.Image, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame, m.frames
}
