// Package stdlock is the critical-section backend for hosted Go programs.
//
// The exclusion mechanism is one process-global lock, so a critical section
// excludes every other goroutine's critical section, on any core. Nesting
// is supported: the goroutine holding the section may acquire it again, and
// the inner sections are no-ops under the outer one. The restore state
// carries a single flag, "this acquire was outermost", so the backend
// requires a bool-capable restore-state width (the default).
//
// Select the backend by importing the package for its side effect:
//
//	import _ "github.com/kolkov/critsection/backends/stdlock"
//
// Releasing the outermost section from a goroutine that does not hold it is
// detected and panics; other pairing violations are not checked.
package stdlock

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/critsection/critical"
	"github.com/kolkov/critsection/internal/goid"
)

type lockImpl struct{}

var (
	mu sync.Mutex

	// owner is the goroutine ID holding the section, 0 when free. Atomic
	// because non-holders read it while probing for reentrancy.
	owner atomic.Int64

	// depth counts unmatched acquires by the owner. Only the holder
	// touches it, under mu.
	depth int
)

func init() {
	critical.SetImpl(lockImpl{})
}

func (lockImpl) Acquire() critical.RawRestoreState {
	gid := goid.Get()
	if owner.Load() == gid {
		// Reentrant acquire by the holder: already excluded.
		depth++
		return critical.RawFromBool(false)
	}

	mu.Lock()
	owner.Store(gid)
	depth = 1
	return critical.RawFromBool(true)
}

func (lockImpl) Release(state critical.RawRestoreState) {
	if !critical.BoolFromRaw(state) {
		// Inner release; the enclosing section stays held.
		depth--
		return
	}

	if owner.Load() != goid.Get() {
		panic("stdlock: critical section released by a goroutine that does not hold it")
	}
	depth = 0
	owner.Store(0)
	mu.Unlock()
}
