package engine

import (
	"fmt"

	"github.com/petermattis/goid"
)

// goroutineGuard enforces the single-threaded-cooperative scheduling
// model: once a Kernel starts running, every call into it must come from
// the same goroutine that called Run. There are no locks in this kernel
// by design (see the concurrency model), so a cross-goroutine call is a
// programmer error, not a race to be tolerated — it is reported as a
// panic rather than silently risking a corrupted delta.
type goroutineGuard struct {
	owner  int64
	active bool
}

func (g *goroutineGuard) bind() {
	g.owner = goid.Get()
	g.active = true
}

func (g *goroutineGuard) check() {
	if !g.active {
		return
	}
	if gid := goid.Get(); gid != g.owner {
		panic(fmt.Sprintf("engine: kernel accessed from goroutine %d, owned by goroutine %d", gid, g.owner))
	}
}
