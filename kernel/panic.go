package kernel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// PanicInfo describes a setup defect that halted the system.
type PanicInfo struct {
	Value any
	Stack []byte
}

var (
	panicActive  atomic.Bool
	panicMu      sync.Mutex
	panicHandler func(PanicInfo)
)

// inPanicMode reports whether Fatal has been called.
func inPanicMode() bool {
	return panicActive.Load()
}

// SetPanicHandler installs the process-wide halt handler and re-arms it.
//
// The handler runs at most once per arming, before Fatal panics. It must not
// enter a critical section held by the caller of Fatal.
func SetPanicHandler(fn func(PanicInfo)) {
	panicMu.Lock()
	defer panicMu.Unlock()
	panicHandler = fn
	panicActive.Store(false)
}

// Fatal reports an unrecoverable programming or setup defect and panics with v.
func Fatal(v any) {
	if panicActive.CompareAndSwap(false, true) {
		panicMu.Lock()
		fn := panicHandler
		panicMu.Unlock()
		if fn != nil {
			fn(PanicInfo{Value: v, Stack: captureStack()})
		}
	}
	panic(v)
}

// Fatalf is Fatal with a formatted error value.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
