package engine

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/wiredelta/cosim/internal/diag"
)

// Kernel is the time-stratified delta-cycle scheduler. It exclusively
// owns every Observable and timed action registered against it; user
// code holds only non-owning handles bounded by the Kernel's lifetime.
//
// All phases, callbacks, timed actions and DUT calls run on one
// goroutine: see guard.go. No locks are used and none are needed.
type Kernel struct {
	guard goroutineGuard

	inputs  []*InputPort
	outputs []*OutputPort
	signals []*InternalSignal
	all     []Observable

	registry *Registry
	queue    *TimedQueue

	convergenceBound int
	logger           *slog.Logger

	started bool
	now     uint64
}

// New creates a Kernel with the given options applied.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		registry:         NewRegistry(),
		queue:            NewTimedQueue(),
		convergenceBound: defaultConvergenceBound,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kernel) checkSetup() {
	k.guard.check()
	if k.started {
		panic("engine: registration after Run has started")
	}
}

// Now returns the kernel's current simulation time.
func (k *Kernel) Now() uint64 {
	return k.now
}

// NewInput registers an InputPort bound to cell.
func (k *Kernel) NewInput(name string, cell Cell) *InputPort {
	k.checkSetup()
	p := NewInputPort(name, cell, &k.guard)
	k.inputs = append(k.inputs, p)
	k.all = append(k.all, p)
	return p
}

// NewOutput registers an OutputPort bound to cell.
func (k *Kernel) NewOutput(name string, cell Cell) *OutputPort {
	k.checkSetup()
	p := NewOutputPort(name, cell)
	k.outputs = append(k.outputs, p)
	k.all = append(k.all, p)
	return p
}

// NewSignal registers an InternalSignal with the given initial value.
func (k *Kernel) NewSignal(name string, initial uint64) *InternalSignal {
	k.checkSetup()
	s := NewInternalSignal(name, initial, &k.guard)
	k.signals = append(k.signals, s)
	k.all = append(k.all, s)
	return s
}

// NewProcess registers a process sensitive to the given Observables, and
// returns its id. If alwaysActive is true the process fires every delta,
// whatever its sensitivity list holds.
func (k *Kernel) NewProcess(sensitivity []Observable, alwaysActive bool, fn func()) int {
	k.checkSetup()
	pid := k.registry.Add(alwaysActive, fn)
	for _, o := range sensitivity {
		o.addDependent(pid)
	}
	return pid
}

// ScheduleAfter schedules action to fire at Now()+delay.
func (k *Kernel) ScheduleAfter(delay uint64, action func()) {
	k.guard.check()
	k.queue.ScheduleAt(k.now+delay, action)
}

// ScheduleAt schedules action to fire at t. t < Now() is coerced to
// Now(), per the pinned Open Question decision (see DESIGN.md).
func (k *Kernel) ScheduleAt(t uint64, action func()) {
	k.guard.check()
	if t < k.now {
		t = k.now
	}
	k.queue.ScheduleAt(t, action)
}

// Run drives the time-arbitration outer loop (§4.4) until the DUT raises
// its finish flag, the timeout is reached, or both event queues are
// empty. It is the one entry point allowed to call dut.Eval and advance
// simulation time.
func (k *Kernel) Run(dut Model, sink Sink, timeout uint64) (RunResult, error) {
	k.guard.bind()
	k.started = true
	k.now = 0

	sink.Dump(0)

	for {
		if dut.Finished() {
			diag.Finished(k.logger, k.now)
			dut.Final()
			return RunResult{Status: StatusFinished, Time: k.now}, nil
		}

		tTB, haveTB := k.queue.NextTime()
		haveDUT := dut.EventsPending()
		var tDUT uint64
		if haveDUT {
			tDUT = dut.NextTimeSlot()
		}

		t, ok := nextTime(tTB, haveTB, tDUT, haveDUT)
		if !ok {
			diag.Quiescent(k.logger, k.now)
			dut.Final()
			return RunResult{Status: StatusQuiescent, Time: k.now}, nil
		}
		if t > timeout {
			diag.Timeout(k.logger, k.now)
			dut.Final()
			return RunResult{Status: StatusTimedOut, Time: k.now}, nil
		}

		k.now = t
		k.queue.DrainAt(t) // testbench-first on tied timestamps

		if err := k.runDelta(dut); err != nil {
			dut.Final()
			return RunResult{Status: StatusLoop, Time: k.now}, errors.Wrap(err, "delta cycle")
		}

		diag.TimeStep(k.logger, k.now)
		sink.Dump(k.now)

		if k.now == timeout {
			diag.Timeout(k.logger, k.now)
			dut.Final()
			return RunResult{Status: StatusTimedOut, Time: k.now}, nil
		}
	}
}

// runDelta runs the 5-phase inner loop of §4.3 to convergence at the
// kernel's current simulation time.
func (k *Kernel) runDelta(dut Model) error {
	for iteration := 1; ; iteration++ {
		if iteration > k.convergenceBound {
			err := &CombinationalLoopError{Time: k.now, Iterations: iteration - 1, Dirty: k.dirtyNames()}
			diag.Loop(k.logger, k.now, err.Iterations, err.Dirty)
			return err
		}

		// Phase 1 — COMMIT
		inputCommitted := false
		for _, p := range k.inputs {
			if p.Dirty() {
				inputCommitted = true
			}
			p.commit()
		}
		internalChanged := false
		for _, s := range k.signals {
			if s.Dirty() {
				internalChanged = true
			}
			s.commit()
		}

		// Phase 2 — EVAL
		dutDue := dut.EventsPending() && dut.NextTimeSlot() <= k.now
		if inputCommitted || internalChanged || dutDue || iteration == 1 {
			dut.Eval()
		}

		// Phase 3 — SAMPLE
		for _, p := range k.outputs {
			p.sample()
		}

		// Phase 4 — REACT
		k.registry.Reset()
		for _, o := range k.all {
			if o.Changed() {
				for _, pid := range o.dependents() {
					k.registry.Trigger(pid)
				}
			}
		}
		k.registry.React()
		diag.Delta(k.logger, k.now, iteration)

		// Phase 5 — CONVERGE
		if !k.anyDirty() {
			return nil
		}
	}
}

func (k *Kernel) anyDirty() bool {
	for _, p := range k.inputs {
		if p.Dirty() {
			return true
		}
	}
	for _, s := range k.signals {
		if s.Dirty() {
			return true
		}
	}
	return false
}

func (k *Kernel) dirtyNames() []string {
	var names []string
	for _, p := range k.inputs {
		if p.Dirty() {
			names = append(names, p.Name())
		}
	}
	for _, s := range k.signals {
		if s.Dirty() {
			names = append(names, s.Name())
		}
	}
	return names
}

// nextTime picks min(tTB, tDUT) over the times that are actually present.
func nextTime(tTB uint64, haveTB bool, tDUT uint64, haveDUT bool) (uint64, bool) {
	switch {
	case haveTB && haveDUT:
		if tTB <= tDUT {
			return tTB, true
		}
		return tDUT, true
	case haveTB:
		return tTB, true
	case haveDUT:
		return tDUT, true
	default:
		return 0, false
	}
}
