package cosim

import "github.com/wiredelta/cosim/internal/engine"

// InputPort is the testbench→DUT boundary for a scalar value of type T.
// Write stages the value; it is applied to the DUT and becomes visible
// through Val only after the kernel's next commit phase.
type InputPort[T Word] struct {
	*engine.InputPort
}

// Write stages v for the next commit.
func (p *InputPort[T]) Write(v T) {
	p.InputPort.Write(engine.ToBits(v))
}

// Val returns the port's current (post-commit) value.
func (p *InputPort[T]) Val() T {
	return engine.FromBits[T](p.InputPort.Val())
}

// Prev returns the value the port held before its most recent commit.
func (p *InputPort[T]) Prev() T {
	return engine.FromBits[T](p.InputPort.Prev())
}

// OutputPort is the DUT→testbench boundary for a scalar value of type T.
// It is read-only from the testbench: Val lags the DUT's memory by up to
// one delta boundary.
type OutputPort[T Word] struct {
	*engine.OutputPort
}

// Val returns the port's most recently sampled value.
func (p *OutputPort[T]) Val() T {
	return engine.FromBits[T](p.OutputPort.Val())
}

// Prev returns the value sampled before the most recent sample.
func (p *OutputPort[T]) Prev() T {
	return engine.FromBits[T](p.OutputPort.Prev())
}
