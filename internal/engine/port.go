package engine

// InputPort wraps a DUT-owned memory cell on the testbench→DUT boundary.
// Write stages a value into pending and sets dirty; it never touches the
// cell directly. Only commit (Phase 1) promotes pending to current and
// writes through to the DUT, which is what makes two writes within one
// delta collapse to the last one (NBA semantics).
type InputPort struct {
	base

	guard   *goroutineGuard
	cell    Cell
	pending uint64
	dirty   bool
	current uint64
	prev    uint64
}

// NewInputPort wraps cell as an InputPort, taking its initial value as
// both current and prev so Changed() is false before the first commit.
// guard is the owning Kernel's goroutine guard; Write asserts through it.
func NewInputPort(name string, cell Cell, guard *goroutineGuard) *InputPort {
	v := cell.Load()
	return &InputPort{base: base{name: name}, guard: guard, cell: cell, current: v, prev: v}
}

// Write stages v for the next commit. Called from process callbacks
// during Phase 4 (REACT); never writes the DUT cell directly. dirty
// reflects whether pending differs from the already-committed current
// value, recomputed on every call — so two writes within one delta that
// net out to the current value do not force another convergence
// iteration, and an always-active process rewriting the same value
// every delta does not look like a perpetual combinational loop.
func (p *InputPort) Write(v uint64) {
	p.guard.check()
	p.pending = v
	p.dirty = v != p.current
}

// Dirty reports whether a write is staged and not yet committed.
func (p *InputPort) Dirty() bool { return p.dirty }

func (p *InputPort) Val() uint64   { return p.current }
func (p *InputPort) Prev() uint64  { return p.prev }
func (p *InputPort) Changed() bool { return p.current != p.prev }
func (p *InputPort) Posedge() bool { return isPosedge(p.prev, p.current) }
func (p *InputPort) Negedge() bool { return isNegedge(p.prev, p.current) }

// commit runs Phase 1 (COMMIT) for this port.
func (p *InputPort) commit() {
	p.prev = p.current
	if p.dirty {
		p.current = p.pending
		p.cell.Store(p.current)
		p.dirty = false
	}
}

// OutputPort wraps a DUT-owned memory cell on the DUT→testbench boundary.
// It is read-only from the testbench: the only writer of sampled is the
// kernel's Phase 3 (SAMPLE).
type OutputPort struct {
	base

	cell    Cell
	sampled uint64
	prev    uint64
}

// NewOutputPort wraps cell as an OutputPort.
func NewOutputPort(name string, cell Cell) *OutputPort {
	v := cell.Load()
	return &OutputPort{base: base{name: name}, cell: cell, sampled: v, prev: v}
}

func (p *OutputPort) Val() uint64   { return p.sampled }
func (p *OutputPort) Prev() uint64  { return p.prev }
func (p *OutputPort) Changed() bool { return p.sampled != p.prev }
func (p *OutputPort) Posedge() bool { return isPosedge(p.prev, p.sampled) }
func (p *OutputPort) Negedge() bool { return isNegedge(p.prev, p.sampled) }

// sample runs Phase 3 (SAMPLE) for this port: the only point at which DUT
// output enters the testbench observation window.
func (p *OutputPort) sample() {
	p.prev = p.sampled
	p.sampled = p.cell.Load()
}
