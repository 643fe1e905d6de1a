package cosim

import "github.com/wiredelta/cosim/internal/engine"

// Observable is the capability set shared by InputPort, OutputPort and
// InternalSignal: anything that can change value and trigger processes.
// It is satisfied automatically by every port/signal type in this
// package; user code never implements it directly.
type Observable = engine.Observable

// Word is the set of scalar types a port or signal may carry.
type Word = engine.Word

// Model is the capability set the kernel requires from the DUT.
type Model = engine.Model

// Sink is the waveform sink contract: one Dump per converged time step,
// plus an initial Dump(0).
type Sink = engine.Sink

// Status reports how a Run terminated.
type Status = engine.Status

const (
	StatusQuiescent = engine.StatusQuiescent
	StatusTimedOut  = engine.StatusTimedOut
	StatusFinished  = engine.StatusFinished
	StatusLoop      = engine.StatusLoop
)

// RunResult reports how a Run ended and the simulation time it ended at.
type RunResult = engine.RunResult

// CombinationalLoopError reports a delta cycle that failed to reach a
// fixed point within the configured convergence bound.
type CombinationalLoopError = engine.CombinationalLoopError
