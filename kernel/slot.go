package kernel

// Slot holds at most one peripheral handle shared between the foreground task
// and interrupt handlers. Every access happens inside the global critical
// section; misuse is a setup defect and halts via Fatal.
type Slot[T any] struct {
	name string
	h    T
	has  bool
}

// NewSlot returns an empty slot labelled name in fatal messages.
func NewSlot[T any](name string) *Slot[T] {
	return &Slot[T]{name: name}
}

// Name returns the slot label.
func (s *Slot[T]) Name() string { return s.name }

// Install stores h. The slot must be empty.
func (s *Slot[T]) Install(h T) {
	var dup bool
	Free(func() {
		if s.has {
			dup = true
			return
		}
		s.h, s.has = h, true
	})
	if dup {
		Fatalf("kernel: %s installed twice", s.name)
	}
}

// Installed reports whether the slot currently holds a handle.
func (s *Slot[T]) Installed() bool {
	var has bool
	Free(func() { has = s.has })
	return has
}

// With runs fn with exclusive access to the handle. fn runs inside the
// critical section and must be short.
func (s *Slot[T]) With(fn func(T)) {
	var missing bool
	Free(func() {
		if !s.has {
			missing = true
			return
		}
		fn(s.h)
	})
	if missing {
		Fatalf("kernel: %s used before install", s.name)
	}
}

// Take removes the handle so it can be used across several critical sections.
// The caller must Put it back before any other context needs it.
func (s *Slot[T]) Take() T {
	var (
		h  T
		ok bool
	)
	Free(func() {
		if !s.has {
			return
		}
		var zero T
		h, ok = s.h, true
		s.h, s.has = zero, false
	})
	if !ok {
		Fatalf("kernel: %s taken while empty", s.name)
	}
	return h
}

// Put returns a handle removed with Take.
func (s *Slot[T]) Put(h T) {
	var full bool
	Free(func() {
		if s.has {
			full = true
			return
		}
		s.h, s.has = h, true
	})
	if full {
		Fatalf("kernel: %s put back while occupied", s.name)
	}
}
