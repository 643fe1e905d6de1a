// Package cosimtest provides fake Model and Sink implementations for
// exercising a Kernel end to end without an external DUT compilation
// toolchain, plus builders for the scenarios used to test the kernel's
// properties.
package cosimtest

// FakeModel is a minimal in-memory Model: Eval runs an injectable
// function, and DUT-internal events are armed/cleared explicitly rather
// than computed by a real hardware model.
type FakeModel struct {
	// EvalFunc is invoked by Eval. May be nil.
	EvalFunc func()

	finished    bool
	finalCalled bool

	hasPending  bool
	pendingTime uint64
}

// NewFakeModel creates a FakeModel with no pending events and EvalFunc
// unset.
func NewFakeModel() *FakeModel {
	return &FakeModel{}
}

func (m *FakeModel) Eval() {
	if m.EvalFunc != nil {
		m.EvalFunc()
	}
}

func (m *FakeModel) EventsPending() bool  { return m.hasPending }
func (m *FakeModel) NextTimeSlot() uint64 { return m.pendingTime }
func (m *FakeModel) Final()               { m.finalCalled = true }
func (m *FakeModel) Finished() bool       { return m.finished }

// SetFinished sets the DUT-raised finish flag the kernel polls.
func (m *FakeModel) SetFinished(v bool) { m.finished = v }

// FinalCalled reports whether Final has been called.
func (m *FakeModel) FinalCalled() bool { return m.finalCalled }

// ScheduleInternalEvent arms EventsPending/NextTimeSlot to report a
// pending DUT-internal event at t.
func (m *FakeModel) ScheduleInternalEvent(t uint64) {
	m.pendingTime = t
	m.hasPending = true
}

// ClearInternalEvent disarms the pending DUT-internal event.
func (m *FakeModel) ClearInternalEvent() {
	m.hasPending = false
}

// RecordingSink is a Sink that records every Dump call, in order, for
// asserting time-monotonicity (Testable Property 3).
type RecordingSink struct {
	Dumps []uint64
}

func (s *RecordingSink) Dump(t uint64) {
	s.Dumps = append(s.Dumps, t)
}
