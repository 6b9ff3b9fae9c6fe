//go:build tinygo

package kernel

import "runtime/interrupt"

// Free runs fn with interrupts disabled. Nesting is allowed; the previous
// interrupt state is restored on return.
func Free(fn func()) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	fn()
}
