// Package binding holds the process-wide bound implementation for the
// critical-section protocol.
//
// Exactly one backend supplies the acquire/release mechanism for a given
// build. The slot moves from unbound to bound exactly once, during package
// initialization, and never changes again for the life of the process:
//
//	{unbound} --Bind--> {bound}
//
// A second Bind panics. Acquire or Release on an unbound slot panics. Both
// panics fire before or at the first protocol call, never silently; the
// critcheck tool catches the same misconfigurations statically at build
// time (see cmd/critcheck).
//
// Concurrency: Bind must run during package initialization (an init
// function of the backend package). Go guarantees all init functions
// complete before main starts, which gives every subsequent Acquire/Release
// a happens-before edge on the bound functions without any atomics on the
// hot path.
package binding

// AcquireFunc enters the backend's exclusion mechanism and returns the raw
// restore state for the matching release.
type AcquireFunc func() RawRestoreState

// ReleaseFunc restores the condition that existed immediately before the
// matching acquire, using the raw restore state that acquire produced.
type ReleaseFunc func(RawRestoreState)

// Bound implementation slot. Written once by Bind, read on every protocol
// call. No mutex: init-time write, post-init reads.
var (
	implName  string
	acquireFn AcquireFunc
	releaseFn ReleaseFunc
)

// Bind nominates the sole backend for this build.
//
// name identifies the backend in diagnostics (conventionally its Go type,
// e.g. "stdlock.lockImpl"). Bind panics if a backend is already bound or if
// either function is nil.
func Bind(name string, acquire AcquireFunc, release ReleaseFunc) {
	if acquireFn != nil || releaseFn != nil {
		panic("critsection: backend " + name + " registered, but backend " +
			implName + " is already bound; exactly one backend may be linked per build")
	}
	if acquire == nil || release == nil {
		panic("critsection: Bind(" + name + ") with nil acquire or release function")
	}
	implName = name
	acquireFn = acquire
	releaseFn = release
}

// Acquire forwards to the bound backend's acquire mechanism.
//
//go:nosplit
func Acquire() RawRestoreState {
	if acquireFn == nil {
		panic("critsection: no backend bound; blank-import a backend package " +
			"(e.g. github.com/kolkov/critsection/backends/stdlock) or call critical.SetImpl from an init function")
	}
	return acquireFn()
}

// Release forwards to the bound backend's release mechanism.
//
//go:nosplit
func Release(state RawRestoreState) {
	if releaseFn == nil {
		panic("critsection: no backend bound; blank-import a backend package " +
			"(e.g. github.com/kolkov/critsection/backends/stdlock) or call critical.SetImpl from an init function")
	}
	releaseFn(state)
}

// IsBound reports whether a backend has been bound.
func IsBound() bool {
	return acquireFn != nil
}

// Name returns the bound backend's diagnostic name, or "" if unbound.
func Name() string {
	return implName
}

// unbind clears the slot. Tests only: the production state machine has no
// transition out of {bound}.
func unbind() {
	implName = ""
	acquireFn = nil
	releaseFn = nil
}
