package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	evalFunc    func()
	finished    bool
	hasPending  bool
	pendingTime uint64
	finalCalled bool
}

func (m *stubModel) Eval() {
	if m.evalFunc != nil {
		m.evalFunc()
	}
}
func (m *stubModel) EventsPending() bool  { return m.hasPending }
func (m *stubModel) NextTimeSlot() uint64 { return m.pendingTime }
func (m *stubModel) Final()               { m.finalCalled = true }
func (m *stubModel) Finished() bool       { return m.finished }

type stubSink struct {
	dumps []uint64
}

func (s *stubSink) Dump(t uint64) { s.dumps = append(s.dumps, t) }

func TestRunQuiescentWithNoEvents(t *testing.T) {
	k := New()
	dut := &stubModel{}
	sink := &stubSink{}

	res, err := k.Run(dut, sink, 100)
	require.NoError(t, err)
	assert.Equal(t, StatusQuiescent, res.Status)
	assert.Equal(t, uint64(0), res.Time)
	assert.Equal(t, []uint64{0}, sink.dumps)
	assert.True(t, dut.finalCalled)
}

func TestRunTimeMonotonicityAndTimeout(t *testing.T) {
	k := New()
	dut := &stubModel{}
	sink := &stubSink{}

	var tick func()
	tick = func() {
		k.ScheduleAfter(5, tick)
	}
	k.ScheduleAfter(5, tick)

	res, err := k.Run(dut, sink, 20)
	require.NoError(t, err)
	assert.Equal(t, StatusTimedOut, res.Status)
	assert.Equal(t, uint64(20), res.Time)
	assert.Equal(t, []uint64{0, 5, 10, 15, 20}, sink.dumps)
}

func TestRunDutFinish(t *testing.T) {
	k := New()
	dut := &stubModel{}
	sink := &stubSink{}

	var tick func()
	tick = func() {
		k.ScheduleAfter(5, tick)
	}
	k.ScheduleAfter(5, tick)
	dut.evalFunc = func() {
		if k.Now() >= 15 {
			dut.finished = true
		}
	}

	res, err := k.Run(dut, sink, 1000)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, res.Status)
	assert.Equal(t, uint64(15), res.Time)
}

func TestRunCombinationalLoopDiagnosis(t *testing.T) {
	k := New(WithConvergenceBound(50))
	a := k.NewSignal("a", 0)
	b := k.NewSignal("b", 0)

	k.NewProcess([]Observable{a}, false, func() { b.Write(boolToBits(a.Val() == 0)) })
	k.NewProcess([]Observable{b}, false, func() { a.Write(boolToBits(b.Val() == 0)) })

	k.ScheduleAt(0, func() {
		a.Write(1)
		b.Write(1)
	})

	dut := &stubModel{}
	sink := &stubSink{}

	res, err := k.Run(dut, sink, 1000)
	require.Error(t, err)
	assert.Equal(t, StatusLoop, res.Status)

	var loopErr *CombinationalLoopError
	require.ErrorAs(t, unwrapLoopError(err), &loopErr)
	assert.Equal(t, 50, loopErr.Iterations)
	assert.ElementsMatch(t, []string{"a", "b"}, loopErr.Dirty)
}

func TestPhaseOrderingCommitBeforeEval(t *testing.T) {
	var inputMem uint64
	var outputMem uint64

	k := New()
	in := k.NewInput("in", NewCell(&inputMem))
	out := k.NewOutput("out", NewCell(&outputMem))

	dut := &stubModel{evalFunc: func() {
		// the DUT must see the committed value, never a stale one.
		outputMem = inputMem * 2
	}}
	sink := &stubSink{}

	k.ScheduleAt(0, func() { in.Write(21) })

	_, err := k.Run(dut, sink, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), out.Val())
}

func boolToBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func unwrapLoopError(err error) error {
	type causer interface{ Cause() error }
	for {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		err = c.Cause()
	}
}
