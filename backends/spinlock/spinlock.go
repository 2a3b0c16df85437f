// Package spinlock is a busy-wait critical-section backend.
//
// Acquire spins on an atomic compare-and-swap until the lock is free,
// yielding the processor periodically so a holder that was descheduled can
// run. The exclusion scope is process-global: one critical section at a
// time across all goroutines.
//
// The backend keeps no per-acquire state, so it works at every
// restore-state width, including none. It does not support nesting: a
// nested Acquire spins on the lock the caller itself holds and deadlocks.
// Code that needs reentrancy should use the stdlock backend instead.
//
// Select the backend by importing the package for its side effect:
//
//	import _ "github.com/kolkov/critsection/backends/spinlock"
package spinlock

import (
	"runtime"
	"sync/atomic"

	"github.com/kolkov/critsection/critical"
)

// yieldAfter bounds how long a waiter burns the processor before handing
// it over. Uncontended acquires never reach it.
const yieldAfter = 64

type spinImpl struct{}

var locked atomic.Uint32

func init() {
	critical.SetImpl(spinImpl{})
}

func (spinImpl) Acquire() critical.RawRestoreState {
	spins := 0
	for !locked.CompareAndSwap(0, 1) {
		spins++
		if spins >= yieldAfter {
			runtime.Gosched()
			spins = 0
		}
	}
	var state critical.RawRestoreState
	return state
}

func (spinImpl) Release(state critical.RawRestoreState) {
	_ = state
	locked.Store(0)
}
