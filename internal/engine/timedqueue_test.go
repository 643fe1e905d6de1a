package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimedQueueOrdering(t *testing.T) {
	q := NewTimedQueue()

	var order []string
	q.ScheduleAt(10, func() { order = append(order, "b") })
	q.ScheduleAt(5, func() { order = append(order, "a") })
	q.ScheduleAt(10, func() { order = append(order, "c") })

	next, ok := q.NextTime()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), next)

	q.DrainAt(5)
	assert.Equal(t, []string{"a"}, order)

	next, ok = q.NextTime()
	assert.True(t, ok)
	assert.Equal(t, uint64(10), next)

	q.DrainAt(10)
	// ties at the same fire time drain in insertion (FIFO) order.
	assert.Equal(t, []string{"a", "b", "c"}, order)

	_, ok = q.NextTime()
	assert.False(t, ok)
}

func TestTimedQueueSelfReschedule(t *testing.T) {
	q := NewTimedQueue()

	var fires []uint64
	var action func()
	at := uint64(0)
	action = func() {
		fires = append(fires, at)
		q.ScheduleAt(at, func() { /* scheduled for "now", not picked up this DrainAt */ })
	}
	q.ScheduleAt(0, action)

	q.DrainAt(0)
	assert.Equal(t, []uint64{0}, fires)

	// the event the action pushed for the same time is still pending,
	// proving it was not picked up by the DrainAt call that spawned it.
	next, ok := q.NextTime()
	assert.True(t, ok)
	assert.Equal(t, uint64(0), next)
}
