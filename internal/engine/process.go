package engine

// process is a registered reactive callback: either sensitivity-driven
// (fires when triggered by a dependency this delta) or always-active
// (fires every delta).
type process struct {
	fn           func()
	alwaysActive bool
	triggered    bool
}

// Registry is the append-only process list plus the parallel per-process
// trigger flags used by Phase 4 (REACT). Sensitivity itself is stored in
// reverse, on the Observable side (its dependents list), so distributing
// triggers costs O(changed observables × fanout) rather than
// O(processes × sensitivity list).
type Registry struct {
	procs []*process
}

// NewRegistry creates an empty process registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a new process and returns its id, used by Observables to
// record it as a dependent.
func (r *Registry) Add(alwaysActive bool, fn func()) int {
	r.procs = append(r.procs, &process{fn: fn, alwaysActive: alwaysActive})
	return len(r.procs) - 1
}

// Trigger marks process pid as due to fire this delta.
func (r *Registry) Trigger(pid int) {
	r.procs[pid].triggered = true
}

// Reset zeroes every process's trigger flag, at the start of Phase 4.
func (r *Registry) Reset() {
	for _, p := range r.procs {
		p.triggered = false
	}
}

// React invokes every process whose trigger flag is set or which is
// always-active, in registration order.
func (r *Registry) React() {
	for _, p := range r.procs {
		if p.triggered || p.alwaysActive {
			p.fn()
		}
	}
}
