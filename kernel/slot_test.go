package kernel

import (
	"runtime"
	"sync"
	"testing"

	"shimmer/hal"
	"shimmer/matrix"
)

// expectFatal runs fn and returns what the halt handler saw.
func expectFatal(t *testing.T, fn func()) PanicInfo {
	t.Helper()
	var (
		got   PanicInfo
		calls int
	)
	SetPanicHandler(func(info PanicInfo) {
		got = info
		calls++
	})
	defer SetPanicHandler(nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		fn()
	}()
	if calls != 1 {
		t.Fatalf("panic handler calls = %d, want 1", calls)
	}
	return got
}

func fatalMessage(info PanicInfo) string {
	if err, ok := info.Value.(error); ok {
		return err.Error()
	}
	return ""
}

func TestSlotInstallWith(t *testing.T) {
	s := NewSlot[int]("answer")
	if s.Installed() {
		t.Fatalf("new slot Installed() = true")
	}
	s.Install(42)

	var got int
	s.With(func(v int) { got = v })
	if got != 42 {
		t.Fatalf("With saw %d, want 42", got)
	}
	if s.Name() != "answer" {
		t.Fatalf("Name() = %q", s.Name())
	}
}

func TestSlotInstallTwiceIsFatal(t *testing.T) {
	s := NewSlot[int]("display")
	s.Install(1)

	info := expectFatal(t, func() { s.Install(2) })
	if msg := fatalMessage(info); msg != "kernel: display installed twice" {
		t.Fatalf("fatal = %q", msg)
	}

	var got int
	s.With(func(v int) { got = v })
	if got != 1 {
		t.Fatalf("second install replaced the handle: %d", got)
	}
}

func TestSlotWithBeforeInstallIsFatal(t *testing.T) {
	s := NewSlot[int]("clock")
	called := false
	info := expectFatal(t, func() { s.With(func(int) { called = true }) })
	if called {
		t.Fatalf("With ran fn on an empty slot")
	}
	if msg := fatalMessage(info); msg != "kernel: clock used before install" {
		t.Fatalf("fatal = %q", msg)
	}
	if len(info.Stack) == 0 {
		t.Fatalf("expected a stack trace on the host build")
	}
}

func TestSlotTakePut(t *testing.T) {
	s := NewSlot[string]("rng")
	s.Install("pcg")

	h := s.Take()
	if h != "pcg" {
		t.Fatalf("Take() = %q", h)
	}
	if s.Installed() {
		t.Fatalf("slot still occupied after Take")
	}

	info := expectFatal(t, func() { s.Take() })
	if msg := fatalMessage(info); msg != "kernel: rng taken while empty" {
		t.Fatalf("fatal = %q", msg)
	}

	s.Put(h)
	if !s.Installed() {
		t.Fatalf("slot empty after Put")
	}

	info = expectFatal(t, func() { s.Put("other") })
	if msg := fatalMessage(info); msg != "kernel: rng put back while occupied" {
		t.Fatalf("fatal = %q", msg)
	}
}

func TestFatalRunsHandlerOnce(t *testing.T) {
	calls := 0
	SetPanicHandler(func(PanicInfo) { calls++ })
	defer SetPanicHandler(nil)

	for i := 0; i < 3; i++ {
		func() {
			defer func() { _ = recover() }()
			Fatal("boom")
		}()
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	if !inPanicMode() {
		t.Fatalf("inPanicMode() = false after Fatal")
	}

	SetPanicHandler(func(PanicInfo) { calls++ })
	if inPanicMode() {
		t.Fatalf("SetPanicHandler did not re-arm")
	}
}

func TestFreeExcludes(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(4)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		workers = 4
		each    = 10_000
	)
	var (
		wg      sync.WaitGroup
		inside  int
		overlap bool
		count   int
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				Free(func() {
					inside++
					if inside != 1 {
						overlap = true
					}
					count++
					inside--
				})
			}
		}()
	}
	wg.Wait()

	if overlap {
		t.Fatalf("critical sections overlapped")
	}
	if count != workers*each {
		t.Fatalf("count = %d, want %d", count, workers*each)
	}
}

type nopMatrix struct{}

func (nopMatrix) Show(*matrix.Image) {}
func (nopMatrix) Refresh()           {}

type nopClock struct{}

func (nopClock) Acknowledge() {}

type nopRNG struct{}

func (nopRNG) Byte() uint8 { return 0 }

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

type nopHAL struct{}

func (nopHAL) Logger() hal.Logger    { return nopLogger{} }
func (nopHAL) Matrix() hal.Matrix    { return nopMatrix{} }
func (nopHAL) Clock() hal.Clock      { return nopClock{} }
func (nopHAL) RNG() hal.RNG          { return nopRNG{} }
func (nopHAL) Enable(func(), func()) {}

func TestPeripheralsInstall(t *testing.T) {
	p := NewPeripherals()
	for _, name := range []string{p.Display.Name(), p.Clock.Name(), p.RNG.Name()} {
		if name == "" {
			t.Fatalf("unnamed slot")
		}
	}

	p.Install(nopHAL{})
	if !p.Display.Installed() || !p.Clock.Installed() || !p.RNG.Installed() {
		t.Fatalf("Install left a slot empty")
	}

	info := expectFatal(t, func() { p.Install(nopHAL{}) })
	if msg := fatalMessage(info); msg != "kernel: display installed twice" {
		t.Fatalf("fatal = %q", msg)
	}
}
