package cosim

import "github.com/wiredelta/cosim/internal/engine"

// InternalSignal is testbench-private state with the same write
// discipline as InputPort but no backing DUT cell: derived clocks,
// reference-model registers, cross-process coordination.
type InternalSignal[T Word] struct {
	*engine.InternalSignal
}

// Write stages v for the next commit.
func (s *InternalSignal[T]) Write(v T) {
	s.InternalSignal.Write(engine.ToBits(v))
}

// Val returns the signal's current (post-commit) value.
func (s *InternalSignal[T]) Val() T {
	return engine.FromBits[T](s.InternalSignal.Val())
}

// Prev returns the value the signal held before its most recent commit.
func (s *InternalSignal[T]) Prev() T {
	return engine.FromBits[T](s.InternalSignal.Prev())
}
