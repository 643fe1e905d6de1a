package engine

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineGuardInactiveBeforeBind(t *testing.T) {
	var g goroutineGuard
	// check must be a no-op before bind, regardless of goroutine, so
	// handles can be wired up freely during setup.
	done := make(chan struct{})
	go func() {
		defer close(done)
		g.check()
	}()
	<-done
}

func TestGoroutineGuardSameGoroutineOK(t *testing.T) {
	var g goroutineGuard
	g.bind()
	assert.NotPanics(t, func() { g.check() })
}

func TestGoroutineGuardCrossGoroutinePanics(t *testing.T) {
	var g goroutineGuard
	g.bind()

	var wg sync.WaitGroup
	var recovered any
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { recovered = recover() }()
		g.check()
	}()
	wg.Wait()

	if assert.NotNil(t, recovered) {
		msg, ok := recovered.(string)
		assert.True(t, ok)
		assert.True(t, strings.Contains(msg, "accessed from goroutine"))
	}
}

// TestWriteFromWrongGoroutinePanics exercises the full path the review
// called out: a Write call issued from a goroutine other than the one
// running Run must panic through the guard, not silently race.
func TestWriteFromWrongGoroutinePanics(t *testing.T) {
	k := New()
	var mem uint64
	in := k.NewInput("in", NewCell(&mem))

	var wg sync.WaitGroup
	var recovered any

	dut := &stubModel{evalFunc: func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { recovered = recover() }()
			in.Write(1)
		}()
		wg.Wait()
	}}
	sink := &stubSink{}

	k.ScheduleAt(0, func() {})
	_, _ = k.Run(dut, sink, 0)

	if assert.NotNil(t, recovered) {
		msg, ok := recovered.(string)
		assert.True(t, ok)
		assert.True(t, strings.Contains(msg, "accessed from goroutine"))
	}
}
