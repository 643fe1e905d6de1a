package engine

// Model is the capability set the kernel requires from the DUT: a small,
// fixed surface that treats the DUT as an opaque object with its own
// internal event queue.
type Model interface {
	// Eval evaluates one round of internal DUT activity at the current
	// simulation time.
	Eval()
	// EventsPending reports whether the DUT has time-based internal
	// events queued.
	EventsPending() bool
	// NextTimeSlot returns the earliest internal event time. Valid only
	// when EventsPending is true.
	NextTimeSlot() uint64
	// Final runs terminate-side cleanup after the run completes.
	Final()
	// Finished reports the DUT-raised finish flag.
	Finished() bool
}

// Sink is the waveform sink contract: one Dump per converged time step,
// plus an initial Dump(0).
type Sink interface {
	Dump(t uint64)
}
