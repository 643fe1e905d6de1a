package engine

// InternalSignal is testbench-private state with the same write
// discipline as InputPort (stage into pending, commit promotes to
// current) but no backing DUT cell. Used for derived clocks,
// reference-model registers and cross-process coordination.
type InternalSignal struct {
	base

	guard   *goroutineGuard
	pending uint64
	dirty   bool
	current uint64
	prev    uint64
}

// NewInternalSignal creates a signal with the given initial value. guard
// is the owning Kernel's goroutine guard; Write asserts through it.
func NewInternalSignal(name string, initial uint64, guard *goroutineGuard) *InternalSignal {
	return &InternalSignal{base: base{name: name}, guard: guard, current: initial, prev: initial}
}

// Write stages v for the next commit. dirty is recomputed against the
// already-committed current value every call, so a net-zero write
// within one delta does not force another convergence iteration.
func (s *InternalSignal) Write(v uint64) {
	s.guard.check()
	s.pending = v
	s.dirty = v != s.current
}

func (s *InternalSignal) Dirty() bool { return s.dirty }

func (s *InternalSignal) Val() uint64   { return s.current }
func (s *InternalSignal) Prev() uint64  { return s.prev }
func (s *InternalSignal) Changed() bool { return s.current != s.prev }
func (s *InternalSignal) Posedge() bool { return isPosedge(s.prev, s.current) }
func (s *InternalSignal) Negedge() bool { return isNegedge(s.prev, s.current) }

// commit runs Phase 1 (COMMIT) for this signal.
func (s *InternalSignal) commit() {
	s.prev = s.current
	if s.dirty {
		s.current = s.pending
		s.dirty = false
	}
}
