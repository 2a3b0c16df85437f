// Package critical is the public protocol surface.
//
// See doc.go for detailed documentation and examples.
package critical

import "github.com/kolkov/critsection/internal/binding"

// Acquire enters a critical section and returns the state needed to leave
// it again.
//
// After Acquire returns, no other execution context excluded by the bound
// backend can be inside a critical section concurrently. Acquire may be
// called from inside an already-active critical section if and only if the
// bound backend supports nesting.
//
// The returned RestoreState must be passed, exactly once, to the Release
// matching this Acquire, and to nothing else. Most callers should use
// With or Do instead of the manual pair.
//
//go:nosplit
func Acquire() RestoreState {
	return RestoreState{raw: binding.Acquire()}
}

// Release leaves a critical section, restoring the condition that existed
// immediately before the matching Acquire.
//
// state must be the exact value that Acquire returned. Nested sections must
// release in reverse order of acquisition. Neither rule is checked at
// runtime by the protocol layer; violating them is a contract violation
// with backend-defined consequences.
//
// After the outermost Release, the system is back in its pre-Acquire
// interruptible state; after a nested Release, the enclosing section
// remains held.
//
//go:nosplit
func Release(state RestoreState) {
	binding.Release(state.raw)
}

// With runs body inside a critical section and returns its result.
//
// The section is acquired before body starts and released on every exit
// path: normal return, and unwinding if body panics. This is the
// recommended entry point because it makes an unmatched Acquire/Release
// pair impossible.
func With[T any](body func() T) T {
	state := Acquire()
	defer Release(state)
	return body()
}

// Do runs body inside a critical section.
//
// It is With for bodies with no result; the protocol and guarantees are
// identical.
func Do(body func()) {
	state := Acquire()
	defer Release(state)
	body()
}
