package cosimtest

import "github.com/wiredelta/cosim"

// ClockCounterModel is an 8-bit counter DUT incrementing on posedge clk,
// for scenario S1.
type ClockCounterModel struct {
	*FakeModel
	clkPtr   *bool
	countPtr *uint8
	prevClk  bool
}

// NewClockCounterModel wraps clkPtr/countPtr as a posedge-triggered
// counter.
func NewClockCounterModel(clkPtr *bool, countPtr *uint8) *ClockCounterModel {
	m := &ClockCounterModel{FakeModel: NewFakeModel(), clkPtr: clkPtr, countPtr: countPtr, prevClk: *clkPtr}
	m.EvalFunc = m.eval
	return m
}

func (m *ClockCounterModel) eval() {
	cur := *m.clkPtr
	if !m.prevClk && cur {
		*m.countPtr++
	}
	m.prevClk = cur
}

// NewClockCounter builds the S1 fixture: clk starts high (mirroring a
// setup-time toggle that precedes the run loop), then self-reschedules
// every 5 time units, giving posedges at 10, 20, 30, ... .
func NewClockCounter() (k *cosim.Kernel, model *ClockCounterModel, clk *cosim.InputPort[bool], count *cosim.OutputPort[uint8]) {
	clkMem := true
	var countMem uint8

	k = cosim.New()
	clk = cosim.Input(k, "clk", &clkMem)
	count = cosim.Output(k, "count", &countMem)
	model = NewClockCounterModel(&clkMem, &countMem)

	var toggle func()
	toggle = func() {
		clk.Write(!clk.Val())
		k.ScheduleAfter(5, toggle)
	}
	k.ScheduleAfter(5, toggle)

	return k, model, clk, count
}

// NewCombinationalLoop builds the S3 fixture: two InternalSignals cross-
// wired as inverters and kicked off with a simultaneous write to both,
// which never settles — every delta flips both signals back to the
// state they held two iterations ago.
func NewCombinationalLoop() (k *cosim.Kernel, a, b *cosim.InternalSignal[bool]) {
	k = cosim.New()
	a = cosim.Signal(k, "a", false)
	b = cosim.Signal(k, "b", false)

	k.Process([]cosim.Observable{a}, func() { b.Write(!a.Val()) })
	k.Process([]cosim.Observable{b}, func() { a.Write(!b.Val()) })

	k.ScheduleAt(0, func() {
		a.Write(true)
		b.Write(true)
	})

	return k, a, b
}

// HandshakeModel is a ready/valid pass-through DUT that asserts ready
// unconditionally, for scenario S4.
type HandshakeModel struct {
	*FakeModel
}

// NewHandshakeModel wraps readyPtr, asserting it immediately.
func NewHandshakeModel(readyPtr *bool) *HandshakeModel {
	*readyPtr = true
	return &HandshakeModel{FakeModel: NewFakeModel()}
}

// HandshakeFixture is the S4 fixture's handles: a driver that pushes
// the requested number of data beats on successive posedges while valid, and a monitor
// that records data accepted while valid && ready.
type HandshakeFixture struct {
	Kernel   *cosim.Kernel
	Model    *HandshakeModel
	Clk      *cosim.InputPort[bool]
	Valid    *cosim.InputPort[bool]
	Data     *cosim.InputPort[uint8]
	Ready    *cosim.OutputPort[bool]
	Accepted *[]uint8
}

// NewHandshake builds the S4 fixture.
func NewHandshake(beats uint8) *HandshakeFixture {
	clkMem := true
	var validMem, readyMem bool
	var dataMem uint8

	k := cosim.New()
	clk := cosim.Input(k, "clk", &clkMem)
	valid := cosim.Input(k, "valid", &validMem)
	data := cosim.Input(k, "data", &dataMem)
	ready := cosim.Output(k, "ready", &readyMem)
	model := NewHandshakeModel(&readyMem)

	var toggle func()
	toggle = func() {
		clk.Write(!clk.Val())
		k.ScheduleAfter(5, toggle)
	}
	k.ScheduleAfter(5, toggle)

	accepted := make([]uint8, 0, beats)
	next := uint8(0)

	k.Process([]cosim.Observable{clk}, func() {
		if !clk.Posedge() {
			return
		}
		if next < beats {
			valid.Write(true)
			data.Write(next)
			next++
		} else {
			valid.Write(false)
		}
	})

	k.Process([]cosim.Observable{clk}, func() {
		if clk.Posedge() && valid.Val() && ready.Val() {
			accepted = append(accepted, data.Val())
		}
	})

	return &HandshakeFixture{Kernel: k, Model: model, Clk: clk, Valid: valid, Data: data, Ready: ready, Accepted: &accepted}
}

// EventModel raises eventOutPtr exactly once, the first time Eval runs
// after its internal event is armed, for scenario S5.
type EventModel struct {
	*FakeModel

	eventOutPtr *bool
	fired       bool
}

// NewEventModel wraps eventOutPtr, arming a DUT-internal event at t.
func NewEventModel(eventOutPtr *bool, t uint64) *EventModel {
	m := &EventModel{FakeModel: NewFakeModel(), eventOutPtr: eventOutPtr}
	m.ScheduleInternalEvent(t)
	m.EvalFunc = func() {
		if m.fired {
			return
		}
		*m.eventOutPtr = true
		m.fired = true
		m.ClearInternalEvent()
	}
	return m
}

// NewDutEvent builds the S5 fixture: a DUT that raises event_out at t
// with no testbench-side stimulus at all.
func NewDutEvent(t uint64) (k *cosim.Kernel, model *EventModel, eventOut *cosim.OutputPort[bool]) {
	var eventOutMem bool
	k = cosim.New()
	eventOut = cosim.Output(k, "event_out", &eventOutMem)
	model = NewEventModel(&eventOutMem, t)
	return k, model, eventOut
}
