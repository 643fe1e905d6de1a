package engine

// Observable is the capability set shared by InputPort, OutputPort and
// InternalSignal: anything that can change value and trigger processes.
// A process may be sensitive to a mix of testbench-driven, DUT-produced
// and testbench-derived signals, so the kernel triggers from this one
// interface regardless of which concrete kind backs it.
// Val and Prev are deliberately not part of this interface: the generic
// port/signal wrappers in the root package redeclare them with a typed
// return (T instead of uint64), which would otherwise shadow — not
// satisfy — a uint64-returning method of the same name and break
// Observable satisfaction for every generic wrapper type.
type Observable interface {
	Changed() bool
	Posedge() bool
	Negedge() bool

	addDependent(pid int)
	dependents() []int
}

// base holds the dependent-process list shared by every concrete
// Observable. The list is append-only for the lifetime of a run: once a
// process is linked to an Observable it stays linked.
type base struct {
	name string
	deps []int
}

func (b *base) addDependent(pid int) {
	b.deps = append(b.deps, pid)
}

func (b *base) dependents() []int {
	return b.deps
}

// Name returns the diagnostic name the Observable was registered with.
func (b *base) Name() string {
	return b.name
}

func isPosedge(prev, cur uint64) bool { return prev == 0 && cur != 0 }
func isNegedge(prev, cur uint64) bool { return prev != 0 && cur == 0 }
