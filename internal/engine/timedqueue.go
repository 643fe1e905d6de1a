package engine

import "container/heap"

// TimedEvent pairs a simulation time with the action to run when the
// testbench clock reaches it.
type TimedEvent struct {
	fireTime uint64
	seq      uint64 // breaks ties between events sharing fireTime, FIFO
	action   func()
}

type timedEventHeap []*TimedEvent

func (h timedEventHeap) Len() int { return len(h) }
func (h timedEventHeap) Less(i, j int) bool {
	if h[i].fireTime != h[j].fireTime {
		return h[i].fireTime < h[j].fireTime
	}
	return h[i].seq < h[j].seq
}
func (h timedEventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timedEventHeap) Push(x any) {
	*h = append(*h, x.(*TimedEvent))
}

func (h *timedEventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return ev
}

// TimedQueue is the min-heap of pending testbench timed events, keyed by
// fire time and broken by insertion order.
type TimedQueue struct {
	h   timedEventHeap
	seq uint64
}

// NewTimedQueue creates an empty timed-event queue.
func NewTimedQueue() *TimedQueue {
	q := &TimedQueue{}
	heap.Init(&q.h)
	return q
}

// ScheduleAt inserts action to fire at time t.
func (q *TimedQueue) ScheduleAt(t uint64, action func()) {
	heap.Push(&q.h, &TimedEvent{fireTime: t, seq: q.seq, action: action})
	q.seq++
}

// NextTime returns the fire time of the earliest pending event and true,
// or (0, false) if the queue is empty.
func (q *TimedQueue) NextTime() (uint64, bool) {
	if q.h.Len() == 0 {
		return 0, false
	}
	return q.h[0].fireTime, true
}

// DrainAt pops and runs every event with fireTime == t, in FIFO order.
// Events are all popped before any action runs, so an action that
// reschedules itself for fireTime == t is not picked up by this call —
// it lands in the next outer-loop iteration that reaches time t, keeping
// the action that is currently firing strictly separate from the one it
// just queued.
func (q *TimedQueue) DrainAt(t uint64) {
	var due []*TimedEvent
	for q.h.Len() > 0 && q.h[0].fireTime == t {
		due = append(due, heap.Pop(&q.h).(*TimedEvent))
	}
	for _, ev := range due {
		ev.action()
	}
}
