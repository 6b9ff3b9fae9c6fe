//go:build !tinygo

package kernel

import "sync"

// cs stands in for the interrupt mask on the host: every simulated interrupt
// handler and the foreground task serialize on it.
var cs sync.Mutex

// Free runs fn inside the global critical section. Critical sections must not
// nest on the host.
func Free(fn func()) {
	cs.Lock()
	defer cs.Unlock()
	fn()
}
