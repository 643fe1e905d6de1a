package cosim

import "github.com/wiredelta/cosim/internal/engine"

// Kernel is the time-stratified delta-cycle scheduler. Register ports,
// signals and processes against it during setup, then call Run once.
//
// The Kernel is single-threaded and cooperative: every call into it
// (including writes through handles it returned) must come from the
// goroutine that calls Run, and is checked at runtime — see
// internal/engine's goroutineGuard.
type Kernel struct {
	*engine.Kernel
}

// New creates a Kernel with the given options applied.
func New(opts ...Option) *Kernel {
	return &Kernel{engine.New(opts...)}
}

// Input registers an InputPort bound to ptr, a DUT-owned memory cell.
// ptr must outlive the Kernel.
func Input[T Word](k *Kernel, name string, ptr *T) *InputPort[T] {
	return &InputPort[T]{k.Kernel.NewInput(name, engine.NewCell(ptr))}
}

// Output registers an OutputPort bound to ptr, a DUT-owned memory cell.
// ptr must outlive the Kernel.
func Output[T Word](k *Kernel, name string, ptr *T) *OutputPort[T] {
	return &OutputPort[T]{k.Kernel.NewOutput(name, engine.NewCell(ptr))}
}

// Signal registers an InternalSignal with the given initial value.
func Signal[T Word](k *Kernel, name string, initial T) *InternalSignal[T] {
	return &InternalSignal[T]{k.Kernel.NewSignal(name, engine.ToBits(initial))}
}

// Process registers a process that fires in the delta it is triggered
// by any Observable in sensitivity.
func (k *Kernel) Process(sensitivity []Observable, fn func()) {
	k.Kernel.NewProcess(sensitivity, false, fn)
}

// Always registers a process that fires every delta.
func (k *Kernel) Always(fn func()) {
	k.Kernel.NewProcess(nil, true, fn)
}
