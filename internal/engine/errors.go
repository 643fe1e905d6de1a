package engine

import "fmt"

// CombinationalLoopError reports a delta cycle that failed to reach a
// fixed point within the configured convergence bound.
type CombinationalLoopError struct {
	Time       uint64
	Iterations int
	Dirty      []string
}

func (e *CombinationalLoopError) Error() string {
	return fmt.Sprintf("combinational loop at t=%d after %d delta iterations (dirty: %v)", e.Time, e.Iterations, e.Dirty)
}
